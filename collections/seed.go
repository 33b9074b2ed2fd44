package collections

import (
	"quotecreation/services"
)

// SeedProducts is the built-in catalog used on first run and whenever
// the persisted catalog region cannot be read as a sequence.
func SeedProducts() []services.Product {
	return []services.Product{
		{
			ID:                  "WN14800CN",
			Name:                "iQ700 Washing Machine",
			Model:               "WN14800CN",
			Description:         "Auto stain removal, smart sanitization",
			Image:               "https://picsum.photos/seed/washingmachine1/100/100",
			UnitPrice:           5299,
			Dimensions:          "84.8 x 59.8 x 59.0 cm",
			PowerConsumption:    "0.92 kWh/cycle",
			EnergyEfficiency:    "Class A",
			Origin:              "China",
			SpecialFeature:      "autoStain removal",
			Warranty:            "2 years full, 10 years motor",
			InstallationDiagram: "https://picsum.photos/seed/diagram1/100/100",
		},
		{
			ID:                  "SN25M831TI",
			Name:                "iQ500 Dishwasher",
			Model:               "SN25M831TI",
			Description:         "Intensive sanitization, flexible racks",
			Image:               "https://picsum.photos/seed/dishwasher/100/100",
			UnitPrice:           4899,
			Dimensions:          "84.5 x 60.0 x 60.0 cm",
			PowerConsumption:    "0.83 kWh/cycle",
			EnergyEfficiency:    "Class A",
			Origin:              "Germany",
			SpecialFeature:      "VarioFlex racks",
			Warranty:            "2 years full",
			InstallationDiagram: "https://picsum.photos/seed/diagram2/100/100",
		},
	}
}
