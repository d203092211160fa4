package reconcile

import (
	"context"
	"math/big"

	"github.com/ErniyazCode/kazproperty/internal/client/ledger"
	"github.com/ErniyazCode/kazproperty/internal/client/store"
	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
)

// Store is the off-chain REST store surface the reconciler consumes. The
// concrete implementation is store.Client.
type Store interface {
	ListProperties(ctx context.Context) ([]entity.Property, error)
	GetProperty(ctx context.Context, id int64) (*entity.Property, error)
	CreateProperty(ctx context.Context, input store.NewProperty) (*entity.Property, error)
	ApproveProperty(ctx context.Context, id int64) error
	SellProperty(ctx context.Context, id int64, buyer, transactionHash string) (*entity.Transaction, error)
	PropertyTransactions(ctx context.Context, id int64) ([]entity.Transaction, error)

	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, address string) (*entity.User, error)
	CreateUser(ctx context.Context, address, name string) (*entity.User, error)
	UpdateKYC(ctx context.Context, address, kycDocument string) (*entity.User, error)
	VerifyUser(ctx context.Context, address string) error
	SignECP(ctx context.Context, address string) (*entity.User, error)

	AdminLogin(ctx context.Context, username, password string) (*store.AdminSession, error)
	SetAdminToken(token string)
}

// Ledger is the contract facade surface the reconciler consumes. The concrete
// implementation is ledger.Client. Reads work without an active account;
// writes require one.
type Ledger interface {
	Connected() bool
	Account() (string, bool)

	User(ctx context.Context, address string) (*ledger.User, error)
	Property(ctx context.Context, id int64) (*ledger.Property, error)
	PropertyCount(ctx context.Context) (int64, error)
	PropertyTransactions(ctx context.Context, propertyID int64) ([]int64, error)
	Transaction(ctx context.Context, id int64) (*ledger.Transaction, error)

	RegisterUser(ctx context.Context, name, kycDocument string) (string, error)
	VerifyUser(ctx context.Context, address string) (string, error)
	SignECP(ctx context.Context) (string, error)
	ListProperty(ctx context.Context, title, description, location string, priceWei *big.Int, roomCount, squareMeters int64, images []string, documents string) (string, error)
	ApproveProperty(ctx context.Context, propertyID int64) (string, error)
	BuyProperty(ctx context.Context, propertyID int64, priceWei *big.Int) (string, error)
}
