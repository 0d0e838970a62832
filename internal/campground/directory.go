package campground

// directory contains the reservable frontcountry campgrounds in Banff
// National Park, keyed by normalized name. Slugs are the path segments
// used by reservation.pc.gc.ca and occasionally change between seasons;
// a config url_slug always overrides this table.
var directory = map[string]*Info{
	// Banff townsite area
	"tunnel mountain village i": {
		Name:    "Tunnel Mountain Village I",
		URLSlug: "TunnelMountainVillageI",
		Area:    "Banff townsite",
	},
	"tunnel mountain village ii": {
		Name:    "Tunnel Mountain Village II",
		URLSlug: "TunnelMountainVillageII",
		Area:    "Banff townsite",
	},
	"tunnel mountain trailer court": {
		Name:    "Tunnel Mountain Trailer Court",
		URLSlug: "TunnelMountainTrailerCourt",
		Area:    "Banff townsite",
	},
	"two jack main": {
		Name:    "Two Jack Main",
		URLSlug: "TwoJackMain",
		Area:    "Minnewanka Loop",
	},
	"two jack lakeside": {
		Name:    "Two Jack Lakeside",
		URLSlug: "TwoJackLakeside",
		Area:    "Minnewanka Loop",
	},

	// Bow Valley Parkway
	"johnston canyon": {
		Name:    "Johnston Canyon",
		URLSlug: "JohnstonCanyon",
		Area:    "Bow Valley Parkway",
	},
	"castle mountain": {
		Name:    "Castle Mountain",
		URLSlug: "CastleMountain",
		Area:    "Bow Valley Parkway",
	},
	"protection mountain": {
		Name:    "Protection Mountain",
		URLSlug: "ProtectionMountain",
		Area:    "Bow Valley Parkway",
	},

	// Lake Louise area
	"lake louise tent": {
		Name:    "Lake Louise Tent",
		URLSlug: "LakeLouiseTent",
		Area:    "Lake Louise",
	},
	"lake louise hard-sided": {
		Name:    "Lake Louise Hard-Sided",
		URLSlug: "LakeLouiseHardSided",
		Area:    "Lake Louise",
	},

	// Icefields Parkway
	"mosquito creek": {
		Name:    "Mosquito Creek",
		URLSlug: "MosquitoCreek",
		Area:    "Icefields Parkway",
	},
	"waterfowl lakes": {
		Name:    "Waterfowl Lakes",
		URLSlug: "WaterfowlLakes",
		Area:    "Icefields Parkway",
	},
	"rampart creek": {
		Name:    "Rampart Creek",
		URLSlug: "RampartCreek",
		Area:    "Icefields Parkway",
	},
}
