package llm

import "strings"

// Price is USD per million tokens.
type Price struct {
	Input  float64
	Output float64
}

// Cost prices one request's usage.
func (p Price) Cost(u Usage) float64 {
	return (float64(u.Input)*p.Input + float64(u.Output)*p.Output) / 1e6
}

// prices covers the models the tutor defaults to or aliases. Keys are
// prefixes so dated snapshots (claude-haiku-4-5-20251001) and gateway
// prefixes (google/gemini-2.5-flash) resolve to the same row.
var prices = []struct {
	prefix string
	price  Price
}{
	{"claude-haiku-4-5", Price{1, 5}},
	{"claude-sonnet-4-5", Price{3, 15}},
	{"gpt-4o-mini", Price{0.15, 0.6}},
	{"gemini-2.5-flash-lite", Price{0.1, 0.4}},
	{"gemini-2.5-flash", Price{0.3, 2.5}},
	{"gemini-2.5-pro", Price{1.25, 10}},
}

// PriceFor looks up model, ignoring any "vendor/" gateway prefix. The
// longest matching prefix wins.
func PriceFor(model string) (Price, bool) {
	if _, after, ok := strings.Cut(model, "/"); ok {
		model = after
	}
	best := -1
	var found Price
	for _, row := range prices {
		if strings.HasPrefix(model, row.prefix) && len(row.prefix) > best {
			best = len(row.prefix)
			found = row.price
		}
	}
	return found, best >= 0
}
