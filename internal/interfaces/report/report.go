// Package report renders projection tables as markdown and HTML.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"bondprojector/internal/domain/entity/bonds"
	"bondprojector/internal/domain/entity/projection"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const tableTemplate = `## Projected returns

Starting with {{ money .Inputs.StartCash }} ({{ .Inputs.StartBonds }} bonds).
Values in parentheses apply the early buyout penalty.

| Bond | Rate | Period | Capitalization | First payout |{{ range .Horizons }} {{ . }}y |{{ end }}
|---|--:|--:|---|--:|{{ range .Horizons }}--:|{{ end }}
{{- range $row := .Rows }}
| {{ .Name }} | {{ percent .Rate }} | {{ .Period }}y | {{ .CapitalizationPeriod }} | {{ amount .FirstPayout }} |{{ range $.Horizons }} {{ cell $row . }} |{{ end }}
{{- end }}
`

var ErrUnknownCurrency = errors.New("unknown currency")

// Renderer formats amounts in a single currency.
type Renderer struct {
	currency string
	tmpl     *template.Template
	md       goldmark.Markdown
}

// New returns a renderer for an ISO 4217 currency code known to go-money.
func New(currency string) (*Renderer, error) {
	code := strings.ToUpper(currency)
	if money.GetCurrency(code) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
	}
	r := &Renderer{
		currency: code,
		md:       goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
	r.tmpl = template.Must(template.New("table").Funcs(template.FuncMap{
		"money":   func(cash int64) string { return r.Amount(float64(cash)) },
		"amount":  r.Amount,
		"percent": Percent,
		"cell":    r.cell,
	}).Parse(tableTemplate))
	return r, nil
}

// Amount rounds v half away from zero to the currency's minor unit and formats it.
func (r *Renderer) Amount(v float64) string {
	m := money.New(0, r.currency)
	fraction := int32(m.Currency().Fraction)
	minor := decimal.NewFromFloat(v).Round(fraction).Shift(fraction).IntPart()
	return money.New(minor, r.currency).Display()
}

// Percent renders a fractional rate such as 0.0575 as "5.75%".
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).String() + "%"
}

func (r *Renderer) cell(row projection.Row, years int) string {
	v, ok := row.Year(years)
	if !ok {
		return ""
	}
	if v.Value == v.Buyout {
		return r.Amount(v.Value)
	}
	return fmt.Sprintf("%s (%s)", r.Amount(v.Value), r.Amount(v.Buyout))
}

// Markdown renders the table as a GitHub flavoured markdown document.
func (r *Renderer) Markdown(table projection.Table) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, table); err != nil {
		return "", fmt.Errorf("render projection table: %w", err)
	}
	return buf.String(), nil
}

// HTML renders the table as a standalone HTML page.
func (r *Renderer) HTML(table projection.Table) ([]byte, error) {
	md, err := r.Markdown(table)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := r.md.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Bond projections</title></head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// Catalog renders the bond list as markdown.
func (r *Renderer) Catalog(list []bonds.Bond) string {
	var b strings.Builder
	b.WriteString("| Bond | Rate | Period | Buyout cost | Capitalization |\n|---|--:|--:|--:|---|\n")
	for _, bond := range list {
		fmt.Fprintf(&b, "| %s | %s | %dy | %s | %s |\n",
			bond.Name, Percent(bond.Rate), bond.Period, r.Amount(bond.BuyoutCost), bond.CapitalizationPeriod)
	}
	return b.String()
}
