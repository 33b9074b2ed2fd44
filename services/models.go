// Package services holds the quote engine: pricing, display projection,
// renderer data, import mapping and persisted-state repair.
package services

import "time"

// VatRate is the fixed VAT rate applied when a quote opts into tax.
const VatRate = 0.13

// Product is a catalog entry. Identity is the id, assigned at creation
// and never reused. Everything past UnitPrice is an optional display
// attribute and may be empty.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	UnitPrice   float64 `json:"unitPrice"`

	Dimensions          string `json:"dimensions,omitempty"`
	PowerConsumption    string `json:"powerConsumption,omitempty"`
	EnergyEfficiency    string `json:"energyEfficiency,omitempty"`
	Origin              string `json:"origin,omitempty"`
	SpecialFeature      string `json:"specialFeature,omitempty"`
	Warranty            string `json:"warranty,omitempty"`
	InstallationDiagram string `json:"installationDiagram,omitempty"`
}

// QuoteItem is a snapshot of a Product taken when it was added to a
// quote, plus quantity and an optional negotiated price. Later catalog
// edits never reach existing quote items. A QuotePrice equal to the
// snapshot's UnitPrice is normalized away to nil.
type QuoteItem struct {
	Product
	Quantity   int      `json:"quantity"`
	QuotePrice *float64 `json:"quotePrice,omitempty"`
}

// QuoteSettings holds the whole-quote pricing knobs.
type QuoteSettings struct {
	Discount   int    `json:"discount"` // percent, 0..100
	IncludeVat bool   `json:"includeVat"`
	Terms      string `json:"terms"`
}

// DisplayConfig toggles the optional attribute classes shown by every
// renderer. Ordering is not stored here; see BuildColumns.
type DisplayConfig struct {
	ProductImage        bool `json:"productImage"`
	Dimensions          bool `json:"dimensions"`
	PowerConsumption    bool `json:"powerConsumption"`
	EnergyEfficiency    bool `json:"energyEfficiency"`
	Origin              bool `json:"origin"`
	SpecialFeature      bool `json:"specialFeature"`
	Warranty            bool `json:"warranty"`
	InstallationDiagram bool `json:"installationDiagram"`
}

type QuoteDetails struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Logo string `json:"logo"` // data URI or remote URL, may be empty
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SalesInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// WizardStepCount is the number of steps in the quote flow.
const WizardStepCount = 4

// AppState is the full in-progress quote. Item order is insertion
// order and is preserved through save/load.
type AppState struct {
	CurrentStep   int           `json:"currentStep"`
	QuoteDetails  QuoteDetails  `json:"quoteDetails"`
	Customer      Customer      `json:"customer"`
	SalesInfo     SalesInfo     `json:"salesInfo"`
	QuoteItems    []QuoteItem   `json:"quoteItems"`
	Settings      QuoteSettings `json:"settings"`
	DisplayConfig DisplayConfig `json:"displayConfig"`
}

// Draft is a named, timestamped snapshot of one quote.
type Draft struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	LastSaved string   `json:"lastSaved"`
	State     AppState `json:"state"`
}

func DefaultSettings() QuoteSettings {
	return QuoteSettings{Discount: 5, IncludeVat: true, Terms: ""}
}

func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		ProductImage:     true,
		PowerConsumption: true,
		EnergyEfficiency: true,
		SpecialFeature:   true,
	}
}

func DefaultQuoteDetails(now time.Time) QuoteDetails {
	return QuoteDetails{
		Name: "Quote-" + now.Format("2006-01-02"),
		Date: now.Format("2006-01-02"),
	}
}

func DefaultCustomer() Customer { return Customer{} }

func DefaultSalesInfo() SalesInfo { return SalesInfo{} }

// NewAppState returns the state a freshly started quote begins with.
func NewAppState(now time.Time) AppState {
	return AppState{
		CurrentStep:   1,
		QuoteDetails:  DefaultQuoteDetails(now),
		Customer:      DefaultCustomer(),
		SalesInfo:     DefaultSalesInfo(),
		QuoteItems:    []QuoteItem{},
		Settings:      DefaultSettings(),
		DisplayConfig: DefaultDisplayConfig(),
	}
}
