package reconcile

import (
	"math/big"
	"time"

	"github.com/ErniyazCode/kazproperty/internal/client/ledger"
	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
)

// Ledger amounts are denominated in the contract's smallest unit; displayed
// prices divide by 10^18.
var weiPerUnit = new(big.Float).SetFloat64(1e18)

const (
	fallbackDescription = "Нет описания"
	fallbackImage       = "https://images.unsplash.com/photo-1560518883-ce09059eeffa?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1073&q=80"
)

// WeiToDecimal converts a smallest-unit amount to a display price.
func WeiToDecimal(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	value, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerUnit).Float64()
	return value
}

// DecimalToWei converts a display price to a smallest-unit amount.
func DecimalToWei(amount float64) *big.Int {
	wei, _ := new(big.Float).Mul(new(big.Float).SetFloat64(amount), weiPerUnit).Int(nil)
	return wei
}

// propertyFromLedger normalizes a contract property record into the common
// shape. The ledger id lands in both ID and LedgerID: a ledger-sourced record
// has no store id of its own.
func propertyFromLedger(p *ledger.Property) entity.Property {
	id := p.Id.Int64()

	description := p.Description
	if description == "" {
		description = fallbackDescription
	}
	images := p.Images
	if len(images) == 0 {
		images = []string{fallbackImage}
	}

	return entity.Property{
		ID:           id,
		LedgerID:     &id,
		Title:        p.Title,
		Description:  description,
		Location:     p.Location,
		Price:        WeiToDecimal(p.Price),
		RoomCount:    int(p.RoomCount.Int64()),
		SquareMeters: int(p.SquareMeters.Int64()),
		Images:       images,
		Documents:    p.Documents,
		Owner:        p.Owner.Hex(),
		IsApproved:   p.IsApproved,
		IsSold:       p.IsSold,
	}
}

func userFromLedger(address string, u *ledger.User) entity.User {
	return entity.User{
		Address:      address,
		Name:         u.Name,
		IsVerified:   u.IsVerified,
		KYCDocument:  u.KycDocument,
		HasSignedECP: u.HasSignedECP,
	}
}

func transactionFromLedger(t *ledger.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:         t.Id.Int64(),
		PropertyID: t.PropertyId.Int64(),
		Seller:     t.Seller.Hex(),
		Buyer:      t.Buyer.Hex(),
		Price:      WeiToDecimal(t.Price),
		Timestamp:  time.Unix(t.Timestamp.Int64(), 0),
	}
}
