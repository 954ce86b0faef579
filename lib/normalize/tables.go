package normalize

import "time"

// Region is one of the Greek administrative regions events are filed
// under. Values are stored in Greek, matching the consuming site.
type Region string

const (
	RegionAttica           Region = "Αττική"
	RegionCentralMacedonia Region = "Κεντρική Μακεδονία"
	RegionWesternGreece    Region = "Δυτική Ελλάδα"
	RegionCrete            Region = "Κρήτη"
	RegionSouthAegean      Region = "Νότιο Αιγαίο"
	RegionIonianIslands    Region = "Ιόνια Νησιά"
	RegionEpirus           Region = "Ήπειρος"
	RegionThessaly         Region = "Θεσσαλία"
)

type Category string

const (
	CategoryMusic      Category = "Music"
	CategoryTheater    Category = "Theater"
	CategorySports     Category = "Sports"
	CategoryExhibition Category = "Exhibition"
	CategoryFestival   Category = "Festival"
	CategoryDance      Category = "Dance"
	CategoryCultural   Category = "Cultural"
)

type RegionRule struct {
	Keyword string
	Region  Region
}

// RegionTable maps location keywords (Latin and Greek script) to
// regions. Order matters: the first keyword contained in the
// lowercased location wins.
func RegionTable() []RegionRule {
	return []RegionRule{
		{"athens", RegionAttica},
		{"αθήνα", RegionAttica},
		{"attica", RegionAttica},
		{"thessaloniki", RegionCentralMacedonia},
		{"θεσσαλονίκη", RegionCentralMacedonia},
		{"macedonia", RegionCentralMacedonia},
		{"patras", RegionWesternGreece},
		{"πάτρα", RegionWesternGreece},
		{"heraklion", RegionCrete},
		{"ηράκλειο", RegionCrete},
		{"crete", RegionCrete},
		{"κρήτη", RegionCrete},
		{"rhodes", RegionSouthAegean},
		{"ρόδος", RegionSouthAegean},
		{"santorini", RegionSouthAegean},
		{"σαντορίνη", RegionSouthAegean},
		{"mykonos", RegionSouthAegean},
		{"μύκονος", RegionSouthAegean},
		{"corfu", RegionIonianIslands},
		{"κέρκυρα", RegionIonianIslands},
		{"ioannina", RegionEpirus},
		{"ιωάννινα", RegionEpirus},
		{"larissa", RegionThessaly},
		{"λάρισα", RegionThessaly},
		{"volos", RegionThessaly},
		{"βόλος", RegionThessaly},
	}
}

type CategoryRule struct {
	Keyword  string
	Category Category
	// some keywords only make sense inside an explicit category/tag
	// field and would misfire on arbitrary URL paths
	FieldOnly bool
}

// CategoryTable is checked against the explicit category field first,
// then (FieldOnly entries excluded) against the event URL.
func CategoryTable() []CategoryRule {
	return []CategoryRule{
		{"music", CategoryMusic, false},
		{"μουσική", CategoryMusic, true},
		{"concert", CategoryMusic, false},
		{"theater", CategoryTheater, false},
		{"theatre", CategoryTheater, false},
		{"θέατρο", CategoryTheater, true},
		{"sport", CategorySports, false},
		{"αθλητισμός", CategorySports, true},
		{"exhibition", CategoryExhibition, false},
		{"έκθεση", CategoryExhibition, true},
		{"festival", CategoryFestival, true},
		{"φεστιβάλ", CategoryFestival, true},
		{"dance", CategoryDance, true},
		{"χορός", CategoryDance, true},
	}
}

type MonthRule struct {
	Name  string
	Month time.Month
}

// MonthTable holds English and Greek month-name prefixes, checked as
// substrings of the lowercased date text.
func MonthTable() []MonthRule {
	return []MonthRule{
		{"jan", time.January}, {"feb", time.February}, {"mar", time.March},
		{"apr", time.April}, {"may", time.May}, {"jun", time.June},
		{"jul", time.July}, {"aug", time.August}, {"sep", time.September},
		{"oct", time.October}, {"nov", time.November}, {"dec", time.December},
		{"ιαν", time.January}, {"φεβ", time.February}, {"μαρ", time.March},
		{"απρ", time.April}, {"μαΐ", time.May}, {"ιουν", time.June},
		{"ιουλ", time.July}, {"αυγ", time.August}, {"σεπ", time.September},
		{"οκτ", time.October}, {"νοε", time.November}, {"δεκ", time.December},
	}
}
