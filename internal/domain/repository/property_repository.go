package repository

import (
	"context"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id int64) (*entity.Property, error)
	List(ctx context.Context) ([]*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	NextID(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
