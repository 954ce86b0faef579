package normalize

// CanonicalEvent is the single schema every scraped source converges
// on. Every field is always populated (possibly by a documented
// default); downstream code never deals with missing values.
type CanonicalEvent struct {
	// stable across runs for the same source+url pair
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	// calendar date, YYYY-MM-DD, always parseable
	Date        string   `json:"date"`
	Region      Region   `json:"region"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	MaxCapacity int      `json:"maxCapacity"`
	Location    string   `json:"location"`
	// the natural unique key; empty means the event can never be
	// deduplicated and is treated as always-new
	URL    string `json:"url"`
	Image  string `json:"image,omitempty"`
	Source string `json:"source"`
}

// CanonicalDeal is the normalized shape of a scraped deal listing.
type CanonicalDeal struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	// 0 when the source shows no discount
	DiscountPercent float64 `json:"discountPercent"`
	URL             string  `json:"url"`
	Source          string  `json:"source"`
}
