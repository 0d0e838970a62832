package main

import (
	"github.com/shengkai/banff-booker/internal/cli"
)

func main() {
	cli.Execute()
}
