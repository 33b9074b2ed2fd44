package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateCatalogExcel writes the product catalog to an .xlsx workbook
// so it can round-trip through the importer.
func GenerateCatalogExcel(products []Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Catalog"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Header labels match the importer's field keys so an exported
	// workbook auto-maps cleanly on the way back in.
	headers := []string{
		"name", "model", "description", "unitPrice",
		"dimensions", "powerConsumption", "energyEfficiency",
		"origin", "specialFeature", "warranty",
	}
	widths := []float64{28, 18, 36, 12, 22, 18, 14, 14, 26, 24}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	for i, h := range headers {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, colName, colName, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", colName, err)
		}
		cell := fmt.Sprintf("%s1", colName)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header row: %w", err)
	}

	for r, p := range products {
		values := []any{
			p.Name, p.Model, p.Description, p.UnitPrice,
			p.Dimensions, p.PowerConsumption, p.EnergyEfficiency,
			p.Origin, p.SpecialFeature, p.Warranty,
		}
		rowNum := r + 2
		for c, v := range values {
			colName, _ := excelize.ColumnNumberToName(c + 1)
			cell := fmt.Sprintf("%s%d", colName, rowNum)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), cellStyle); err != nil {
			return nil, fmt.Errorf("style row %d: %w", rowNum, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// thinBorders returns a thin border on all four sides.
func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}
