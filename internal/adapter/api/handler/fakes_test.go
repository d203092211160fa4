package handler

import (
	"context"
	"strings"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/pkg/errors"
)

type memoryUserRepo struct {
	users map[string]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*entity.User{}}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	copied := *user
	r.users[strings.ToLower(user.Address)] = &copied
	return nil
}

func (r *memoryUserRepo) GetByAddress(ctx context.Context, address string) (*entity.User, error) {
	user, ok := r.users[strings.ToLower(address)]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *entity.User) error {
	copied := *user
	r.users[strings.ToLower(user.Address)] = &copied
	return nil
}

func (r *memoryUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memoryPropertyRepo struct {
	properties map[int64]*entity.Property
}

func newMemoryPropertyRepo() *memoryPropertyRepo {
	return &memoryPropertyRepo{properties: map[int64]*entity.Property{}}
}

func (r *memoryPropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	copied := *property
	r.properties[property.ID] = &copied
	return nil
}

func (r *memoryPropertyRepo) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	property, ok := r.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	copied := *property
	return &copied, nil
}

func (r *memoryPropertyRepo) List(ctx context.Context) ([]*entity.Property, error) {
	properties := make([]*entity.Property, 0, len(r.properties))
	for _, property := range r.properties {
		copied := *property
		properties = append(properties, &copied)
	}
	return properties, nil
}

func (r *memoryPropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	copied := *property
	r.properties[property.ID] = &copied
	return nil
}

func (r *memoryPropertyRepo) NextID(ctx context.Context) (int64, error) {
	var max int64
	for id := range r.properties {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (r *memoryPropertyRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.properties)), nil
}

type memoryTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *memoryTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	copied := *transaction
	r.transactions = append(r.transactions, &copied)
	return nil
}

func (r *memoryTransactionRepo) ListByProperty(ctx context.Context, propertyID int64) ([]*entity.Transaction, error) {
	matched := make([]*entity.Transaction, 0)
	for _, transaction := range r.transactions {
		if transaction.PropertyID == propertyID {
			copied := *transaction
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (r *memoryTransactionRepo) NextID(ctx context.Context) (int64, error) {
	var max int64
	for _, transaction := range r.transactions {
		if transaction.ID > max {
			max = transaction.ID
		}
	}
	return max + 1, nil
}

type memoryAdminRepo struct {
	admins map[string]*entity.Admin
}

func newMemoryAdminRepo() *memoryAdminRepo {
	return &memoryAdminRepo{admins: map[string]*entity.Admin{}}
}

func (r *memoryAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	copied := *admin
	r.admins[admin.Username] = &copied
	return nil
}

func (r *memoryAdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	admin, ok := r.admins[username]
	if !ok {
		return nil, errors.NotFound("Admin", nil)
	}
	copied := *admin
	return &copied, nil
}
