package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/internal/domain/repository"
)

type firestoreTransactionRepository struct {
	client *firestore.Client
}

func NewFirestoreTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &firestoreTransactionRepository{
		client: client,
	}
}

func (r *firestoreTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.Timestamp.IsZero() {
		transaction.Timestamp = time.Now()
	}
	_, err := r.client.Collection("transactions").Doc(uuid.New().String()).Set(ctx, transaction)
	return err
}

func (r *firestoreTransactionRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*entity.Transaction, error) {
	query := r.client.Collection("transactions").Where("propertyId", "==", propertyID)
	iter := query.Documents(ctx)
	var transactions []*entity.Transaction

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var transaction entity.Transaction
		if err := doc.DataTo(&transaction); err != nil {
			return nil, err
		}
		transactions = append(transactions, &transaction)
	}

	return transactions, nil
}

func (r *firestoreTransactionRepository) NextID(ctx context.Context) (int64, error) {
	iter := r.client.Collection("transactions").OrderBy("id", firestore.Desc).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	var last entity.Transaction
	if err := doc.DataTo(&last); err != nil {
		return 0, err
	}
	return last.ID + 1, nil
}
