package repository

import (
	"context"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	ListByProperty(ctx context.Context, propertyID int64) ([]*entity.Transaction, error)
	NextID(ctx context.Context) (int64, error)
}
