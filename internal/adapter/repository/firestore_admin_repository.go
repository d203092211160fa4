package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/internal/domain/repository"
	"github.com/ErniyazCode/kazproperty/pkg/errors"
)

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}
	_, err := r.client.Collection("admins").Doc(admin.Username).Set(ctx, admin)
	return err
}

func (r *firestoreAdminRepository) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	doc, err := r.client.Collection("admins").Doc(username).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, err
	}

	var admin entity.Admin
	if err := doc.DataTo(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}
