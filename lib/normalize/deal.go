package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"greekevents-backend/lib/textutil"
)

var percentRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

// ExtractDiscount reads a percentage out of discount text such as
// "-30%" or "Έκπτωση 25 %". Text without a percent figure yields 0.
func (n Normalizer) ExtractDiscount(text string) float64 {
	m := percentRegex.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil || pct < 0 || pct > 100 {
		return 0
	}
	return pct
}

// NormalizeDeal converts one raw deal record to its canonical form,
// with the same cleaning and price rules as events.
func (n Normalizer) NormalizeDeal(raw RawRecord, source string) CanonicalDeal {
	title := textutil.CleanText(raw.GetString("title"), n.config.MaxTextLength)
	if title == "" {
		title = n.config.DefaultTitle
	}
	description := textutil.CleanText(raw.GetString("description"), n.config.MaxTextLength)
	if description == "" {
		description = title
	}

	url := strings.TrimSpace(raw.GetString("url"))
	deal := CanonicalDeal{
		Title:           title,
		Description:     description,
		Price:           n.ExtractPrice(raw.GetString("price")),
		DiscountPercent: n.ExtractDiscount(raw.GetString("discount")),
		URL:             url,
		Source:          source,
	}
	if url != "" {
		deal.ID = StableID(source, url)
	}
	return deal
}
