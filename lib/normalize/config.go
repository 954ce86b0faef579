package normalize

// Config carries every tunable the pipeline consumes. The values are
// plain parameters; nothing in this package reads the environment.
type Config struct {
	// upper bound (in runes) on title/description text, ellipsis included
	MaxTextLength int `json:"max_text_length"`
	// locations are bounded separately, without an ellipsis
	MaxLocationLength int    `json:"max_location_length"`
	DefaultTitle      string `json:"default_title"`
	DefaultRegion     Region `json:"default_region"`
	// assigned when no category keyword matches field, url or tags
	DefaultCategory Category `json:"default_category"`
	DefaultCapacity int      `json:"default_capacity"`
	// how far ahead of processing time a dateless event lands
	FallbackDateHorizonDays int `json:"fallback_date_horizon_days"`

	// ordered lookup tables; first match wins, so more specific
	// keywords must come before the ones they contain
	Regions    []RegionRule   `json:"-"`
	Categories []CategoryRule `json:"-"`
	Months     []MonthRule    `json:"-"`
}

func DefaultConfig() Config {
	return Config{
		MaxTextLength:           500,
		MaxLocationLength:       200,
		DefaultTitle:            "Untitled Event",
		DefaultRegion:           RegionAttica,
		DefaultCategory:         CategoryCultural,
		DefaultCapacity:         100,
		FallbackDateHorizonDays: 30,
		Regions:                 RegionTable(),
		Categories:              CategoryTable(),
		Months:                  MonthTable(),
	}
}
