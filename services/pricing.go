// Pricing calculations for quote line items. All functions are pure;
// rounding happens only at formatting time, never here.
package services

// EffectivePrice returns the negotiated price when one is set,
// otherwise the snapshot unit price.
func EffectivePrice(item QuoteItem) float64 {
	if item.QuotePrice != nil {
		return *item.QuotePrice
	}
	return item.UnitPrice
}

// Subtotal sums effective price times quantity over all items.
func Subtotal(items []QuoteItem) float64 {
	var sum float64
	for _, item := range items {
		sum += EffectivePrice(item) * float64(item.Quantity)
	}
	return sum
}

// DiscountAmount applies the whole-quote percentage discount.
func DiscountAmount(subtotal float64, settings QuoteSettings) float64 {
	return subtotal * float64(settings.Discount) / 100
}

// VatAmount applies VAT to the post-discount base when enabled.
func VatAmount(afterDiscount float64, settings QuoteSettings) float64 {
	if !settings.IncludeVat {
		return 0
	}
	return afterDiscount * VatRate
}

// QuoteTotals is the fixed four-line totals block shared by every
// renderer: subtotal, discount, VAT, grand total.
type QuoteTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	AfterDiscount  float64 `json:"afterDiscount"`
	VatAmount      float64 `json:"vatAmount"`
	GrandTotal     float64 `json:"grandTotal"`
}

// CalcQuoteTotals computes the totals in the fixed order: discount
// before tax, tax on the discounted base.
func CalcQuoteTotals(items []QuoteItem, settings QuoteSettings) QuoteTotals {
	var t QuoteTotals
	t.Subtotal = Subtotal(items)
	t.DiscountAmount = DiscountAmount(t.Subtotal, settings)
	t.AfterDiscount = t.Subtotal - t.DiscountAmount
	t.VatAmount = VatAmount(t.AfterDiscount, settings)
	t.GrandTotal = t.AfterDiscount + t.VatAmount
	return t
}
