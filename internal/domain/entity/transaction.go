package entity

import (
	"time"
)

// Transaction is created exactly once per completed purchase and is
// immutable afterwards.
type Transaction struct {
	ID              int64     `json:"id" firestore:"id"`
	PropertyID      int64     `json:"propertyId" firestore:"propertyId"`
	Seller          string    `json:"seller" firestore:"seller"`
	Buyer           string    `json:"buyer" firestore:"buyer"`
	Price           float64   `json:"price" firestore:"price"`
	TransactionHash string    `json:"transactionHash,omitempty" firestore:"transactionHash,omitempty"`
	Timestamp       time.Time `json:"timestamp" firestore:"timestamp"`
}
