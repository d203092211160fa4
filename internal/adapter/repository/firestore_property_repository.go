package repository

import (
	"context"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/internal/domain/repository"
	"github.com/ErniyazCode/kazproperty/pkg/errors"
)

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.CreatedAt.IsZero() {
		property.CreatedAt = time.Now()
	}
	docID := strconv.FormatInt(property.ID, 10)
	_, err := r.client.Collection("properties").Doc(docID).Set(ctx, property)
	return err
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	doc, err := r.client.Collection("properties").Doc(strconv.FormatInt(id, 10)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, err
	}

	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, err
	}

	return &property, nil
}

func (r *firestorePropertyRepository) List(ctx context.Context) ([]*entity.Property, error) {
	iter := r.client.Collection("properties").OrderBy("id", firestore.Asc).Documents(ctx)
	var properties []*entity.Property

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return nil, err
		}
		properties = append(properties, &property)
	}

	return properties, nil
}

func (r *firestorePropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	docID := strconv.FormatInt(property.ID, 10)
	_, err := r.client.Collection("properties").Doc(docID).Set(ctx, property)
	return err
}

// NextID assigns ids the way the store always has: highest existing id + 1.
// This id space is independent from the ledger's property ids.
func (r *firestorePropertyRepository) NextID(ctx context.Context) (int64, error) {
	iter := r.client.Collection("properties").OrderBy("id", firestore.Desc).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	var last entity.Property
	if err := doc.DataTo(&last); err != nil {
		return 0, err
	}
	return last.ID + 1, nil
}

func (r *firestorePropertyRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("properties").Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}
