package model

// StopWords are tokens that never become terms: administrative filler,
// ordinals and numerals, generic area markers, and words that produced
// false associations in earlier runs.
var StopWords = []string{
	// postal and administrative filler
	"H/V", "BOX", "PRIVATE", "BAG", "C/O", "P/A", "W/S", "S/CAMP", "MNR",
	"AND", "POSBUS", "ROOM", "P/SAK", "PRIVAATSAK", "UNKNOWN", "OFFICE",
	"FLAT", "FLATS", "UNIT", "VIA", "THE", "UIT",

	// ordinals and numerals
	"2ND", "3RD", "4TH", "5TH", "6TH", "7TH", "8TH", "9TH",
	"ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",

	// generic place words
	"COURT", "PARK", "CITY", "NEW", "GLEN", "HILL", "VILLAGE", "HOTEL",
	"SUN", "BEACH", "UPPER", "LOWER", "HEIGHTS", "RIDGE", "GRAND", "CAPE",
	"BAY", "MAIN", "TOWN", "HILLSIDE", "EST", "ESTATE",

	// area markers, alone or numbered
	"SITE", "SECTION", "PHASE", "ZONE", "EXT", "LOC", "BLOCK",
	"ZONE-1", "ZONE-3", "ZONE-4", "ZONE-5", "ZONE6", "ZONE-6", "ZONE-7",
	"ZONE-8", "ZONE9", "ZONE-9", "ZONE09", "ZONE-10", "SITE-5",
	"EXT4", "EXT6", "EXT8", "EXT12", "EXT-13", "PHASE3", "PHASE-9",

	// names and buildings that leaked into term lists
	"SIR", "PRINCE", "PRINCESS", "HANS", "CHARLES", "OAKS", "MILITARY",
	"HOSPITAL", "EDWARD", "HOSTEL", "PELICAN", "CRESENT", "NEPTUNE",
	"CASTLE", "DURA", "EVERITE", "MARTHINUS", "SCHALKWYK", "WINNIE",
	"MANDELA", "PROTEA",
}

// AfrikaansStreetEndings mark street names such as VOORTREKKERSTRAAT.
var AfrikaansStreetEndings = []string{
	"STRAAT", "STR", "LAAN", "WEG", "PAD", "RYLAAN",
}
