package service

import (
	"github.com/shopspring/decimal"

	"kitesurf/internal/model"
)

// DefaultPackages is the school's standard lesson offer.
func DefaultPackages() []model.Package {
	return []model.Package{
		{
			Name:          "Privéles",
			Description:   "Privéles 2,5 uur – één persoon per les",
			Price:         decimal.NewFromInt(175),
			DurationHours: 2.5,
			MaxPersons:    1,
			NumSessions:   1,
		},
		{
			Name:          "Losse Duo Kiteles",
			Description:   "Losse Duo Kiteles 3,5 uur – maximaal 2 personen per les",
			Price:         decimal.NewFromInt(135),
			DurationHours: 3.5,
			MaxPersons:    2,
			NumSessions:   1,
		},
		{
			Name:          "Kitesurf Duo lespakket 3 lessen",
			Description:   "Kitesurf Duo lespakket 3 lessen 10,5 uur – maximaal 2 personen per les, 3 dagdelen",
			Price:         decimal.NewFromInt(375),
			DurationHours: 3.5,
			MaxPersons:    2,
			NumSessions:   3,
		},
		{
			Name:          "Kitesurf Duo lespakket 5 lessen",
			Description:   "Kitesurf Duo lespakket 5 lessen 17,5 uur – maximaal 2 personen per les, 5 dagdelen",
			Price:         decimal.NewFromInt(675),
			DurationHours: 3.5,
			MaxPersons:    2,
			NumSessions:   5,
		},
	}
}

// DefaultLocations lists the beaches lessons are given at.
func DefaultLocations() []model.Location {
	return []model.Location{
		{Name: "Zandvoort", Address: "Boulevard Paulus Loot, Zandvoort"},
		{Name: "Scheveningen", Address: "Strandweg, Scheveningen"},
		{Name: "IJmuiden", Address: "Kennemerstrand, IJmuiden"},
	}
}
