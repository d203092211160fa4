package repository

import (
	"context"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
}
