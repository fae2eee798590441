package model

import "github.com/shopspring/decimal"

// Package is a bookable lesson package. Catalog data is read-only for users.
type Package struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Description   string          `json:"description" gorm:"type:text"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null;index"`
	DurationHours float64         `json:"duration_hours" gorm:"not null"`
	MaxPersons    int             `json:"max_persons" gorm:"not null"`
	NumSessions   int             `json:"num_sessions" gorm:"not null"`
}

// AllowsDuo reports whether a second participant may join.
func (p *Package) AllowsDuo() bool {
	return p.MaxPersons >= 2
}

// Location is a spot where lessons are given.
type Location struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Address string `json:"address" gorm:"size:255"`
}
