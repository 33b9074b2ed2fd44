package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Catalog import runs in stages: parse the raw text, propose a
// header-to-field mapping for the user to adjust, then coerce and
// filter rows into catalog entries on commit.

// IgnoreField marks a column the import should skip.
const IgnoreField = "ignore"

// productFieldKeys lists the mappable Product fields, in the order
// they are offered for mapping.
var productFieldKeys = []string{
	"name",
	"model",
	"description",
	"image",
	"unitPrice",
	"dimensions",
	"powerConsumption",
	"energyEfficiency",
	"origin",
	"specialFeature",
	"warranty",
	"installationDiagram",
}

// ProductFieldKeys returns the catalog fields a column can map to.
func ProductFieldKeys() []string {
	keys := make([]string, len(productFieldKeys))
	copy(keys, productFieldKeys)
	return keys
}

// ParseDelimited splits raw CSV text into headers and data rows.
// The split is deliberately naive: every non-empty line is a row,
// fields are comma-separated, and a surrounding double-quote pair is
// stripped from a field. Embedded commas or quotes inside fields are
// not supported; that is a documented limitation of the format this
// importer accepts, not something it tries to repair.
func ParseDelimited(raw string) ([]string, [][]string, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	headers := splitNaive(lines[0])
	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, splitNaive(line))
	}
	return headers, rows, nil
}

func splitNaive(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
			p = p[1 : len(p)-1]
		}
		parts[i] = p
	}
	return parts
}

// AutoMapHeaders proposes a mapping from each header to a catalog
// field whose name matches case-insensitively, or IgnoreField when
// none does. The proposal is what the client shows for user override;
// nothing here is final until commit.
func AutoMapHeaders(headers []string) map[string]string {
	mappings := make(map[string]string, len(headers))
	for _, h := range headers {
		mappings[h] = IgnoreField
		for _, key := range productFieldKeys {
			if strings.EqualFold(strings.TrimSpace(h), key) {
				mappings[h] = key
				break
			}
		}
	}
	return mappings
}

// BuildProducts coerces data rows into catalog entries using the
// (possibly user-adjusted) mappings and filters out rows without both
// a name and a model. Rejected rows are dropped silently; the caller
// reports only the accepted count. Every accepted entry gets a fresh
// id regardless of what the input contains.
func BuildProducts(headers []string, rows [][]string, mappings map[string]string) []Product {
	var accepted []Product
	for _, row := range rows {
		var p Product
		for i, h := range headers {
			field, ok := mappings[h]
			if !ok || field == IgnoreField || i >= len(row) {
				continue
			}
			setProductField(&p, field, row[i])
		}
		if p.Name == "" || p.Model == "" {
			continue
		}
		p.ID = NewProductID()
		accepted = append(accepted, p)
	}
	return accepted
}

// NewProductID returns a fresh catalog id.
func NewProductID() string {
	return "prod-" + uuid.NewString()
}

func setProductField(p *Product, field, raw string) {
	switch field {
	case "name":
		p.Name = raw
	case "model":
		p.Model = raw
	case "description":
		p.Description = raw
	case "image":
		p.Image = raw
	case "unitPrice":
		price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			price = 0
		}
		p.UnitPrice = price
	case "dimensions":
		p.Dimensions = raw
	case "powerConsumption":
		p.PowerConsumption = raw
	case "energyEfficiency":
		p.EnergyEfficiency = raw
	case "origin":
		p.Origin = raw
	case "specialFeature":
		p.SpecialFeature = raw
	case "warranty":
		p.Warranty = raw
	case "installationDiagram":
		p.InstallationDiagram = raw
	}
}
