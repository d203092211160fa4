package repository

import (
	"context"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
)

// UserRepository matches addresses case-insensitively; implementations
// normalize the address before lookups and writes.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByAddress(ctx context.Context, address string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Count(ctx context.Context) (int64, error)
}
