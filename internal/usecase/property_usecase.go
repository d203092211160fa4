package usecase

import (
	"context"
	"time"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/internal/domain/repository"
	"github.com/ErniyazCode/kazproperty/pkg/errors"
	"github.com/ErniyazCode/kazproperty/pkg/logger"
)

type PropertyUseCase struct {
	propertyRepo    repository.PropertyRepository
	transactionRepo repository.TransactionRepository
}

func NewPropertyUseCase(propertyRepo repository.PropertyRepository, transactionRepo repository.TransactionRepository) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo:    propertyRepo,
		transactionRepo: transactionRepo,
	}
}

type CreatePropertyInput struct {
	Title        string
	Description  string
	Location     string
	Price        float64
	RoomCount    int
	SquareMeters int
	Images       []string
	Documents    string
	Owner        string
	LedgerID     *int64
}

func (uc *PropertyUseCase) List(ctx context.Context) ([]*entity.Property, error) {
	properties, err := uc.propertyRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to list properties", err)
	}
	return properties, nil
}

func (uc *PropertyUseCase) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	return uc.propertyRepo.GetByID(ctx, id)
}

func (uc *PropertyUseCase) Create(ctx context.Context, input CreatePropertyInput) (*entity.Property, error) {
	if !entity.IsKnownCity(input.Location) {
		return nil, errors.BadRequest("Unknown location", nil)
	}

	id, err := uc.propertyRepo.NextID(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to allocate property id", err)
	}

	property := &entity.Property{
		ID:           id,
		LedgerID:     input.LedgerID,
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Price:        input.Price,
		RoomCount:    input.RoomCount,
		SquareMeters: input.SquareMeters,
		Images:       input.Images,
		Documents:    input.Documents,
		Owner:        input.Owner,
		IsApproved:   false,
		IsSold:       false,
		CreatedAt:    time.Now(),
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, errors.Internal("Failed to create property", err)
	}

	logger.Info("Property created: id=%d owner=%s", property.ID, property.Owner)
	return property, nil
}

// Approve flips isApproved to true. One-way, admin only.
func (uc *PropertyUseCase) Approve(ctx context.Context, id int64) error {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	property.IsApproved = true
	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return errors.Internal("Failed to approve property", err)
	}
	return nil
}

// Sell marks the property sold and records the purchase transaction. A
// property can be sold at most once.
func (uc *PropertyUseCase) Sell(ctx context.Context, id int64, buyer, transactionHash string) (*entity.Transaction, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.IsSold {
		return nil, errors.Conflict("Property already sold")
	}

	property.IsSold = true
	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, errors.Internal("Failed to mark property as sold", err)
	}

	transactionID, err := uc.transactionRepo.NextID(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to allocate transaction id", err)
	}

	transaction := &entity.Transaction{
		ID:              transactionID,
		PropertyID:      property.ID,
		Seller:          property.Owner,
		Buyer:           buyer,
		Price:           property.Price,
		TransactionHash: transactionHash,
		Timestamp:       time.Now(),
	}
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, errors.Internal("Failed to record transaction", err)
	}

	logger.Info("Property sold: id=%d buyer=%s tx=%s", property.ID, buyer, transactionHash)
	return transaction, nil
}

func (uc *PropertyUseCase) ListTransactions(ctx context.Context, propertyID int64) ([]*entity.Transaction, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Internal("Failed to list transactions", err)
	}
	return transactions, nil
}
