package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"greekevents-backend/lib/timezone"
)

// Normalizer holds the injected tables and defaults. All extractor
// methods are total: malformed input maps to the field's default,
// never to an error.
type Normalizer struct {
	config Config
	now    func() time.Time
}

func New(config Config) Normalizer {
	return Normalizer{
		config: config,
		now:    timezone.Now,
	}
}

// WithClock substitutes the wall clock used for fallback dates.
func (n Normalizer) WithClock(now func() time.Time) Normalizer {
	n.now = now
	return n
}

func (n Normalizer) Config() Config {
	return n.config
}

// ExtractRegion matches location text against the ordered region
// table; the first contained keyword wins, no match falls back to the
// default region.
func (n Normalizer) ExtractRegion(location string) Region {
	if location == "" {
		return n.config.DefaultRegion
	}
	lower := strings.ToLower(location)
	for _, rule := range n.config.Regions {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Region
		}
	}
	return n.config.DefaultRegion
}

// ExtractCategory checks, in order, the explicit category field, the
// tags list and the event URL. The explicit field always takes
// precedence over URL inference; FieldOnly keywords never match URLs.
func (n Normalizer) ExtractCategory(raw RawRecord) Category {
	if c, ok := n.matchCategory(raw.GetString("category"), false); ok {
		return c
	}
	for _, tag := range raw.GetStringList("tags") {
		if c, ok := n.matchCategory(tag, false); ok {
			return c
		}
	}
	if c, ok := n.matchCategory(raw.GetString("url"), true); ok {
		return c
	}
	return n.config.DefaultCategory
}

func (n Normalizer) matchCategory(text string, urlContext bool) (Category, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, rule := range n.config.Categories {
		if urlContext && rule.FieldOnly {
			continue
		}
		if strings.Contains(lower, rule.Keyword) {
			return rule.Category, true
		}
	}
	return "", false
}

var (
	numberRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)
	yearRegex   = regexp.MustCompile(`20\d{2}`)
	dayRegex    = regexp.MustCompile(`\b(\d{1,2})\b`)
)

var freeMarkers = []string{"free", "δωρεάν", "ελεύθερη"}

// ExtractPrice pulls a non-negative price out of arbitrary price text.
// Free admission markers beat any number that happens to be present.
func (n Normalizer) ExtractPrice(text string) float64 {
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	for _, marker := range freeMarkers {
		if strings.Contains(lower, marker) {
			return 0
		}
	}
	token := numberRegex.FindString(lower)
	if token == "" {
		return 0
	}
	price, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return price
}

// ExtractDate resolves raw date text to a YYYY-MM-DD string. A
// four-digit year anchors the result; month falls back to January and
// day to the 1st when they can't be recovered. Without a year the
// event lands a configured number of days past processing time. The
// output is always well-formed but callers must not assume precision.
func (n Normalizer) ExtractDate(text string) string {
	year := yearRegex.FindString(text)
	if year == "" {
		fallback := n.now().AddDate(0, 0, n.config.FallbackDateHorizonDays)
		return fallback.Format("2006-01-02")
	}

	lower := strings.ToLower(text)
	month := time.January
	for _, rule := range n.config.Months {
		if strings.Contains(lower, rule.Name) {
			month = rule.Month
			break
		}
	}

	day := 1
	if m := dayRegex.FindStringSubmatch(text); m != nil {
		parsed, err := strconv.Atoi(m[1])
		if err == nil && parsed >= 1 && parsed <= 31 {
			day = parsed
		}
	}

	return fmt.Sprintf("%s-%02d-%02d", year, int(month), day)
}

// ExtractImage returns the first usable image URL from the images
// list. Entries are either plain URL strings or objects carrying a
// src-like key; site logos and icons are skipped.
func (n Normalizer) ExtractImage(raw RawRecord) string {
	for _, item := range raw.GetList("images") {
		var src string
		switch v := item.(type) {
		case string:
			src = v
		case map[string]any:
			obj := RawRecord(v)
			src = obj.GetString("src")
			if src == "" {
				src = obj.GetString("url")
			}
		}
		if src == "" {
			continue
		}
		lower := strings.ToLower(src)
		if strings.Contains(lower, "logo") || strings.Contains(lower, "icon") {
			continue
		}
		return src
	}
	return ""
}
