package services

// Display projection: the single source of truth for which columns a
// rendered quote has and in which order. Every renderer (live preview,
// print page, PDF document) consumes the result of BuildColumns and
// DetailFields; none derives column order on its own.

// ColumnKey identifies one output column.
type ColumnKey string

const (
	ColImage     ColumnKey = "image"
	ColItem      ColumnKey = "item"
	ColDetails   ColumnKey = "details"
	ColDiagram   ColumnKey = "diagram"
	ColUnitPrice ColumnKey = "unitPrice"
	ColQuantity  ColumnKey = "quantity"
	ColLineTotal ColumnKey = "lineTotal"
)

// Align values match what the renderers expect ("left", "center", "right").
type Column struct {
	Key   ColumnKey `json:"key"`
	Label string    `json:"label"`
	Align string    `json:"align"`
}

// BuildColumns derives the ordered column schema from the display
// toggles. The base schema is fixed: item identity, detail block, unit
// price, quantity, line subtotal. The image column, when enabled, is
// prepended. The diagram column, when enabled, goes immediately after
// the detail block; its position is found by key, not by index, so it
// lands correctly whether or not the image column is present.
func BuildColumns(cfg DisplayConfig) []Column {
	cols := []Column{
		{Key: ColItem, Label: "Product / Model", Align: "left"},
		{Key: ColDetails, Label: "Details", Align: "left"},
		{Key: ColUnitPrice, Label: "Unit Price", Align: "right"},
		{Key: ColQuantity, Label: "Qty", Align: "center"},
		{Key: ColLineTotal, Label: "Subtotal", Align: "right"},
	}

	if cfg.ProductImage {
		cols = append([]Column{{Key: ColImage, Label: "Image", Align: "center"}}, cols...)
	}

	if cfg.InstallationDiagram {
		diagram := Column{Key: ColDiagram, Label: "Installation", Align: "center"}
		for i, c := range cols {
			if c.Key == ColDetails {
				cols = append(cols[:i+1], append([]Column{diagram}, cols[i+1:]...)...)
				break
			}
		}
	}

	return cols
}

// DetailField is one resolved sub-field of the detail block.
type DetailField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// DetailFields resolves the detail block for one item in the canonical
// order: dimensions, power, efficiency, origin, feature, warranty.
// A sub-field appears only when its toggle is on and the item carries
// a non-empty value; empty values are omitted even when toggled on.
func DetailFields(cfg DisplayConfig, item Product) []DetailField {
	specs := []struct {
		enabled bool
		key     string
		label   string
		value   string
	}{
		{cfg.Dimensions, "dimensions", "Size", item.Dimensions},
		{cfg.PowerConsumption, "powerConsumption", "Power", item.PowerConsumption},
		{cfg.EnergyEfficiency, "energyEfficiency", "Energy", item.EnergyEfficiency},
		{cfg.Origin, "origin", "Origin", item.Origin},
		{cfg.SpecialFeature, "specialFeature", "Feature", item.SpecialFeature},
		{cfg.Warranty, "warranty", "Warranty", item.Warranty},
	}

	var fields []DetailField
	for _, s := range specs {
		if s.enabled && s.value != "" {
			fields = append(fields, DetailField{Key: s.key, Label: s.label, Value: s.value})
		}
	}
	return fields
}
