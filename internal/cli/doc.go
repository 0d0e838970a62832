// Package cli implements the command-line interface for banff-booker.
//
// The cli package provides the Cobra-based CLI: the root command runs the
// full booking flow (login wait, queue wait, search, selection, reservation
// confirmation, payment pause) and the attempts subcommand reports the
// journal of past search attempts in text or JSON.
package cli
