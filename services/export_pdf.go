package services

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF assembles the exportable quote document: header
// with name/date/logo, two-column contact block, the items table with
// the projected column schema, the totals block and the terms block.
// Every image the document references is resolved before the table is
// assembled; unresolvable images become empty cells. A failure of the
// document assembly itself aborts with no partial output.
func GenerateQuotePDF(ctx context.Context, data RenderData) ([]byte, error) {
	logo, images := resolveExportImages(ctx, data)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data, logo)
	addContactBlock(m, data)
	addItemsTableHeader(m, data.Columns)
	for i, r := range data.Rows {
		addItemsTableRow(m, data.Columns, r, images[i])
	}
	addTotalsBlock(m, data)
	addTermsBlock(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote document: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the quote name, date and an optional logo.
func addQuoteHeader(m core.Maroto, data RenderData, logo *resolvedImage) {
	titleCol := col.New(9).Add(
		text.New(data.Title, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
			Size:  9,
			Top:   9,
			Align: align.Left,
			Color: &props.Color{Red: 80, Green: 80, Blue: 80},
		}),
	)

	logoCol := col.New(3)
	if logo != nil {
		logoCol.Add(image.NewFromBytes(logo.data, logo.ext, props.Rect{
			Center:  true,
			Percent: 90,
		}))
	}

	m.AddRows(
		row.New(16).Add(titleCol, logoCol),
		row.New(4),
	)
}

// addContactBlock adds the customer and sales-rep columns side by side.
func addContactBlock(m core.Maroto, data RenderData) {
	heading := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}
	line := func(top float64, s string) core.Component {
		return text.New(s, props.Text{
			Size:  9,
			Top:   top,
			Align: align.Left,
			Color: &props.Color{Red: 60, Green: 60, Blue: 60},
		})
	}

	m.AddRows(
		row.New(26).Add(
			col.New(6).Add(
				text.New("Customer", heading),
				line(6, fmt.Sprintf("Name: %s", data.Customer.Name)),
				line(11, fmt.Sprintf("Phone: %s", data.Customer.Phone)),
				line(16, fmt.Sprintf("Address: %s", data.Customer.Address)),
			),
			col.New(6).Add(
				text.New("Sales Representative", heading),
				line(6, fmt.Sprintf("Name: %s", data.Sales.Name)),
				line(11, fmt.Sprintf("Phone: %s", data.Sales.Phone)),
			),
		),
		row.New(4),
	)
}

// columnWidth maps a schema column to its grid width. The detail block
// absorbs whatever the optional columns leave over so each row always
// fills the 12-unit grid.
func columnWidth(cols []Column, key ColumnKey) int {
	fixed := map[ColumnKey]int{
		ColImage:     1,
		ColItem:      3,
		ColDiagram:   1,
		ColUnitPrice: 2,
		ColQuantity:  1,
		ColLineTotal: 2,
	}
	if key != ColDetails {
		return fixed[key]
	}
	used := 0
	for _, c := range cols {
		if c.Key != ColDetails {
			used += fixed[c.Key]
		}
	}
	return 12 - used
}

func textAlign(a string) align.Type {
	switch a {
	case "right":
		return align.Right
	case "center":
		return align.Center
	default:
		return align.Left
	}
}

// addItemsTableHeader renders the header row straight from the
// projected column schema; labels and order come from BuildColumns.
func addItemsTableHeader(m core.Maroto, cols []Column) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}

	var headerCols []core.Col
	for _, c := range cols {
		headerCols = append(headerCols, col.New(columnWidth(cols, c.Key)).Add(
			text.New(c.Label, props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: textAlign(c.Align),
				Color: &props.Color{Red: 255, Green: 255, Blue: 255},
			}),
		).WithStyle(&headerCell))
	}

	m.AddRows(row.New(8).Add(headerCols...))
}

// addItemsTableRow renders one line item. Cells appear exactly in the
// schema's order; image cells with no resolved bytes stay empty.
func addItemsTableRow(m core.Maroto, cols []Column, r RenderRow, imgs rowImages) {
	rowHeight := 8.0
	if len(r.Details) > 1 {
		rowHeight = 4*float64(len(r.Details)) + 4
	}
	if imgs.image != nil || imgs.diagram != nil {
		if rowHeight < 14 {
			rowHeight = 14
		}
	}

	bodyText := props.Text{Size: 8, Align: align.Left}

	var rowCols []core.Col
	for _, c := range cols {
		width := columnWidth(cols, c.Key)
		switch c.Key {
		case ColImage:
			rowCols = append(rowCols, imageCell(width, imgs.image))
		case ColDiagram:
			rowCols = append(rowCols, imageCell(width, imgs.diagram))
		case ColItem:
			rowCols = append(rowCols, col.New(width).Add(
				text.New(r.Name, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}),
				text.New(r.Model, props.Text{
					Size:  7,
					Top:   4,
					Align: align.Left,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			))
		case ColDetails:
			detailCol := col.New(width)
			for i, d := range r.Details {
				detailCol.Add(text.New(fmt.Sprintf("%s: %s", d.Label, d.Value), props.Text{
					Size:  7,
					Top:   float64(i) * 4,
					Align: align.Left,
					Color: &props.Color{Red: 89, Green: 89, Blue: 89},
				}))
			}
			rowCols = append(rowCols, detailCol)
		case ColUnitPrice:
			rowCols = append(rowCols, col.New(width).Add(
				text.New(r.UnitPriceText, props.Text{Size: 8, Align: align.Right}),
			))
		case ColQuantity:
			rowCols = append(rowCols, col.New(width).Add(
				text.New(fmt.Sprintf("%d", r.Quantity), props.Text{Size: 8, Align: align.Center}),
			))
		case ColLineTotal:
			rowCols = append(rowCols, col.New(width).Add(
				text.New(r.LineTotalText, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
			))
		default:
			rowCols = append(rowCols, col.New(width).Add(text.New("", bodyText)))
		}
	}

	m.AddRows(row.New(rowHeight).Add(rowCols...))
}

func imageCell(width int, img *resolvedImage) core.Col {
	c := col.New(width)
	if img != nil {
		c.Add(image.NewFromBytes(img.data, img.ext, props.Rect{
			Center:  true,
			Percent: 85,
		}))
	}
	return c
}

// addTotalsBlock renders subtotal, discount, VAT (when enabled) and
// grand total, right-aligned under the table.
func addTotalsBlock(m core.Maroto, data RenderData) {
	m.AddRows(row.New(4))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	for _, line := range TotalsLines(data.Totals, data.Settings) {
		style := fontstyle.Normal
		if line.Bold {
			style = fontstyle.Bold
		}
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(
					text.New(line.Label, props.Text{Size: 9, Style: style, Align: align.Right}),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(line.Value, props.Text{Size: 9, Style: style, Align: align.Right}),
				).WithStyle(summaryCell),
			),
		)
	}
}

// addTermsBlock renders the free-text terms, or a dash when empty.
func addTermsBlock(m core.Maroto, data RenderData) {
	terms := data.Settings.Terms
	if terms == "" {
		terms = "—"
	}

	m.AddRows(
		row.New(8),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Terms & Notes", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
		row.New(12).Add(
			col.New(12).Add(
				text.New(terms, props.Text{Size: 9, Align: align.Left, Color: &props.Color{Red: 60, Green: 60, Blue: 60}}),
			),
		),
	)
}
