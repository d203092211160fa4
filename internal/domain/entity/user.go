package entity

import (
	"time"
)

// User is keyed by wallet address. The address is the only stable identity;
// name and KYC document may be absent until the first profile update.
type User struct {
	Address      string    `json:"address" firestore:"address"`
	Name         string    `json:"name" firestore:"name"`
	IsVerified   bool      `json:"isVerified" firestore:"isVerified"`
	KYCDocument  string    `json:"kycDocument" firestore:"kycDocument"`
	HasSignedECP bool      `json:"hasSignedECP" firestore:"hasSignedECP"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}
