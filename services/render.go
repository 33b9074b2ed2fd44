package services

import "fmt"

// RenderData is the one projection of a quote that every output
// format consumes. The preview endpoint serializes it, the print page
// templates it and the PDF assembler walks it; none of them computes
// pricing or column order on its own.
type RenderData struct {
	Title    string        `json:"title"`
	Date     string        `json:"date"`
	Logo     string        `json:"logo,omitempty"`
	Customer Customer      `json:"customer"`
	Sales    SalesInfo     `json:"salesInfo"`
	Columns  []Column      `json:"columns"`
	Rows     []RenderRow   `json:"rows"`
	Totals   QuoteTotals   `json:"totals"`
	Settings QuoteSettings `json:"settings"`
}

// RenderRow is one line item resolved against the display schema.
// Image and Diagram carry the raw references; only cells whose column
// is present in Columns should be rendered.
type RenderRow struct {
	ItemID        string        `json:"itemId"`
	Image         string        `json:"image,omitempty"`
	Name          string        `json:"name"`
	Model         string        `json:"model"`
	Details       []DetailField `json:"details"`
	Diagram       string        `json:"diagram,omitempty"`
	UnitPrice     float64       `json:"unitPrice"`
	Quantity      int           `json:"quantity"`
	LineTotal     float64       `json:"lineTotal"`
	UnitPriceText string        `json:"unitPriceText"`
	LineTotalText string        `json:"lineTotalText"`
}

// BuildRenderData projects the current state into the shared renderer
// model. It is recomputed from scratch on every call; nothing here is
// cached, so the preview can never go stale.
func BuildRenderData(state AppState) RenderData {
	cols := BuildColumns(state.DisplayConfig)
	totals := CalcQuoteTotals(state.QuoteItems, state.Settings)

	rows := make([]RenderRow, 0, len(state.QuoteItems))
	for _, item := range state.QuoteItems {
		price := EffectivePrice(item)
		lineTotal := price * float64(item.Quantity)
		rows = append(rows, RenderRow{
			ItemID:        item.ID,
			Image:         item.Image,
			Name:          item.Name,
			Model:         item.Model,
			Details:       DetailFields(state.DisplayConfig, item.Product),
			Diagram:       item.InstallationDiagram,
			UnitPrice:     price,
			Quantity:      item.Quantity,
			LineTotal:     lineTotal,
			UnitPriceText: FormatCNY(price),
			LineTotalText: FormatCNY(lineTotal),
		})
	}

	return RenderData{
		Title:    state.QuoteDetails.Name,
		Date:     state.QuoteDetails.Date,
		Logo:     state.QuoteDetails.Logo,
		Customer: state.Customer,
		Sales:    state.SalesInfo,
		Columns:  cols,
		Rows:     rows,
		Totals:   totals,
		Settings: state.Settings,
	}
}

// TotalsLine is one formatted line of the totals block.
type TotalsLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Bold  bool   `json:"bold"`
}

// TotalsLines returns the totals block in its fixed order: subtotal,
// discount, VAT (only when enabled), grand total.
func TotalsLines(totals QuoteTotals, settings QuoteSettings) []TotalsLine {
	lines := []TotalsLine{
		{Label: "Subtotal:", Value: FormatCNY(totals.Subtotal)},
		{Label: fmt.Sprintf("Discount (%d%%):", settings.Discount), Value: "-" + FormatCNY(totals.DiscountAmount)},
	}
	if settings.IncludeVat {
		lines = append(lines, TotalsLine{Label: "VAT (13%):", Value: FormatCNY(totals.VatAmount)})
	}
	lines = append(lines, TotalsLine{Label: "Grand Total:", Value: FormatCNY(totals.GrandTotal), Bold: true})
	return lines
}
