package output

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReportLocale selects how the localized formatters (console, html, pdf) render amounts.
type ReportLocale struct {
	Tag    string // BCP 47, e.g. "de-DE"; empty means en-US
	Symbol string // currency prefix; empty means "$"
}

// Localizer builds the Localizer described by r.
func (r ReportLocale) Localizer() *Localizer {
	l := NewLocalizer(r.Tag)
	if r.Symbol != "" {
		l = l.WithSymbol(r.Symbol)
	}
	return l
}

// Localizer renders amounts with the digit grouping and decimal separator of a locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
	symbol  string
}

// NewLocalizer builds a Localizer for a BCP 47 tag such as "en-US" or "de". An unparseable
// or empty tag falls back to American English.
func NewLocalizer(locale string) *Localizer {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.AmericanEnglish
	}
	return &Localizer{tag: tag, printer: message.NewPrinter(tag), symbol: "$"}
}

// WithSymbol returns a copy that prefixes currency amounts with symbol.
func (l *Localizer) WithSymbol(symbol string) *Localizer {
	c := *l
	c.symbol = symbol
	return &c
}

// Tag returns the resolved language tag.
func (l *Localizer) Tag() language.Tag { return l.tag }

// Currency formats v with two decimals and grouping, e.g. "$94,111.23" for en.
func (l *Localizer) Currency(v float64) string {
	return l.signed(v, "%.2f")
}

// Units formats v rounded to whole units with grouping (yearly schedule cells).
func (l *Localizer) Units(v float64) string {
	return l.signed(math.Round(v), "%.0f")
}

// signed puts the minus sign ahead of the symbol: "-$12.50".
func (l *Localizer) signed(v float64, verb string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v < 0 {
		return "-" + l.symbol + l.printer.Sprintf(verb, -v)
	}
	return l.symbol + l.printer.Sprintf(verb, v)
}

// Percent formats a percentage value with two decimals.
func (l *Localizer) Percent(v float64) string {
	return l.printer.Sprintf("%.2f", v) + "%"
}
