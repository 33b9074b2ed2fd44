package services

// Line-item mutations. All operate on a copy-in/copy-out slice so the
// caller decides when the new list becomes current state.

// AddQuoteItem adds a snapshot of product to items. If the product id
// is already present the existing line's quantity is incremented
// instead of adding a duplicate line.
func AddQuoteItem(items []QuoteItem, product Product) []QuoteItem {
	for i, item := range items {
		if item.ID == product.ID {
			items[i].Quantity++
			return items
		}
	}
	return append(items, QuoteItem{Product: product, Quantity: 1})
}

// SetQuantity sets the quantity of the line keyed by id. Quantities
// below 1 are clamped to 1.
func SetQuantity(items []QuoteItem, id string, qty int) []QuoteItem {
	if qty < 1 {
		qty = 1
	}
	for i, item := range items {
		if item.ID == id {
			items[i].Quantity = qty
			break
		}
	}
	return items
}

// SetQuotePrice sets or clears the negotiated price on the line keyed
// by id. A nil price, or a price equal to the snapshot unit price,
// clears the override so "no override" has a single representation.
func SetQuotePrice(items []QuoteItem, id string, price *float64) []QuoteItem {
	for i, item := range items {
		if item.ID != id {
			continue
		}
		if price == nil || *price == item.UnitPrice {
			items[i].QuotePrice = nil
		} else {
			p := *price
			items[i].QuotePrice = &p
		}
		break
	}
	return items
}

// RemoveQuoteItem removes the line keyed by id, preserving the order
// of the remaining lines.
func RemoveQuoteItem(items []QuoteItem, id string) []QuoteItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// NormalizeOverrides collapses overrides equal to the base unit price.
// Used after loading persisted drafts so stale saves cannot carry the
// redundant shape back in.
func NormalizeOverrides(items []QuoteItem) []QuoteItem {
	for i, item := range items {
		if item.QuotePrice != nil && *item.QuotePrice == item.UnitPrice {
			items[i].QuotePrice = nil
		}
	}
	return items
}

// ClampStep keeps the wizard cursor inside 1..WizardStepCount.
func ClampStep(step int) int {
	if step < 1 {
		return 1
	}
	if step > WizardStepCount {
		return WizardStepCount
	}
	return step
}
