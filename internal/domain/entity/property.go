package entity

import (
	"time"
)

// Property carries two identifier spaces: ID is assigned by the off-chain
// store (max existing id + 1), LedgerID is the id the contract assigned when
// the property was listed on-chain. They are not guaranteed to coincide, so
// LedgerID is nullable and callers must not assume ID works on the ledger.
type Property struct {
	ID           int64     `json:"id" firestore:"id"`
	LedgerID     *int64    `json:"ledgerId,omitempty" firestore:"ledgerId,omitempty"`
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description" firestore:"description"`
	Location     string    `json:"location" firestore:"location"`
	Price        float64   `json:"price" firestore:"price"`
	RoomCount    int       `json:"roomCount" firestore:"roomCount"`
	SquareMeters int       `json:"squareMeters" firestore:"squareMeters"`
	Images       []string  `json:"images" firestore:"images"`
	Documents    string    `json:"documents" firestore:"documents"`
	Owner        string    `json:"owner" firestore:"owner"`
	IsApproved   bool      `json:"isApproved" firestore:"isApproved"`
	IsSold       bool      `json:"isSold" firestore:"isSold"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

// ContractID returns the identifier to use for on-chain calls.
func (p *Property) ContractID() int64 {
	if p.LedgerID != nil {
		return *p.LedgerID
	}
	return p.ID
}

// Cities is the fixed city enumeration used for listings and filtering.
var Cities = []string{
	"Алматы",
	"Астана",
	"Шымкент",
	"Караганды",
	"Актобе",
	"Тараз",
	"Павлодар",
	"Усть-Каменогорск",
	"Семей",
	"Атырау",
	"Костанай",
	"Кызылорда",
	"Уральск",
	"Актау",
	"Петропавловск",
	"Талдыкорган",
	"Кокшетау",
	"Туркестан",
}

// IsKnownCity reports whether location is part of the fixed enumeration.
func IsKnownCity(location string) bool {
	for _, c := range Cities {
		if c == location {
			return true
		}
	}
	return false
}
