package reconcile

import (
	"context"
	"errors"
	"time"

	"github.com/ErniyazCode/kazproperty/internal/client/store"
	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/pkg/logger"
)

// ErrNoWallet is returned by writes that need an active ledger account when
// none is connected.
var ErrNoWallet = errors.New("reconcile: no active wallet account")

// Enumerating ledger properties stops after this many records.
const maxLedgerScan = 20

// Reconciler resolves entity state across the off-chain store, the ledger
// contract, and fixed mock data.
//
// Reads try the store first, then the ledger, then mock data; the first
// source yielding a non-empty success wins and later sources are not
// consulted. Writes go to both targets independently: the store write is
// attempted first and its failure only logged, the ledger write is attempted
// whenever an account is connected and its outcome is the caller-facing
// result. With no ledger connection at all the store outcome is the result.
// Nothing is retried.
type Reconciler struct {
	store      Store
	ledger     Ledger
	candidates []string
	session    *store.AdminSession
}

type Option func(*Reconciler)

// WithCandidateAddresses overrides the address list used to enumerate users
// on the ledger.
func WithCandidateAddresses(addresses []string) Option {
	return func(r *Reconciler) {
		r.candidates = addresses
	}
}

// New builds a Reconciler. ledger may be nil when no provider is available;
// reads then skip straight from the store to mock data and ledger writes are
// never attempted.
func New(storeClient Store, ledgerClient Ledger, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:      storeClient,
		ledger:     ledgerClient,
		candidates: DefaultCandidateAddresses,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reconciler) hasLedger() bool {
	return r.ledger != nil
}

func (r *Reconciler) walletConnected() bool {
	return r.ledger != nil && r.ledger.Connected()
}

// Properties lists all properties via the fallback chain.
func (r *Reconciler) Properties(ctx context.Context) Result[[]entity.Property] {
	steps := []step[[]entity.Property]{
		{source: SourceStore, run: func(ctx context.Context) ([]entity.Property, bool, error) {
			properties, err := r.store.ListProperties(ctx)
			return properties, len(properties) > 0, err
		}},
	}
	if r.hasLedger() {
		steps = append(steps, step[[]entity.Property]{source: SourceLedger, run: r.ledgerProperties})
	}
	steps = append(steps, step[[]entity.Property]{source: SourceMock, run: func(ctx context.Context) ([]entity.Property, bool, error) {
		return MockProperties(), true, nil
	}})
	return resolve(ctx, "properties", steps)
}

func (r *Reconciler) ledgerProperties(ctx context.Context) ([]entity.Property, bool, error) {
	count, err := r.ledger.PropertyCount(ctx)
	if err != nil {
		return nil, false, err
	}
	if count > maxLedgerScan {
		count = maxLedgerScan
	}

	properties := make([]entity.Property, 0, count)
	for id := int64(1); id <= count; id++ {
		property, err := r.ledger.Property(ctx, id)
		if err != nil {
			logger.Debug("Skipping ledger property %d: %v", id, err)
			continue
		}
		properties = append(properties, propertyFromLedger(property))
	}
	return properties, len(properties) > 0, nil
}

// Property resolves a single property by its store id. The ledger step uses
// the same id directly; a ledger id mapping only exists once a store record
// is in hand.
func (r *Reconciler) Property(ctx context.Context, id int64) Result[entity.Property] {
	steps := []step[entity.Property]{
		{source: SourceStore, run: func(ctx context.Context) (entity.Property, bool, error) {
			property, err := r.store.GetProperty(ctx, id)
			if errors.Is(err, store.ErrNotFound) {
				return entity.Property{}, false, nil
			}
			if err != nil {
				return entity.Property{}, false, err
			}
			return *property, true, nil
		}},
	}
	if r.hasLedger() {
		steps = append(steps, step[entity.Property]{source: SourceLedger, run: func(ctx context.Context) (entity.Property, bool, error) {
			property, err := r.ledger.Property(ctx, id)
			if err != nil {
				return entity.Property{}, false, err
			}
			if property.Id == nil || property.Id.Sign() == 0 {
				return entity.Property{}, false, nil
			}
			return propertyFromLedger(property), true, nil
		}})
	}
	steps = append(steps, step[entity.Property]{source: SourceMock, run: func(ctx context.Context) (entity.Property, bool, error) {
		return MockProperty(id), true, nil
	}})
	return resolve(ctx, "property", steps)
}

// Users lists users via the fallback chain. Ledger enumeration walks the
// fixed candidate address list.
func (r *Reconciler) Users(ctx context.Context) Result[[]entity.User] {
	steps := []step[[]entity.User]{
		{source: SourceStore, run: func(ctx context.Context) ([]entity.User, bool, error) {
			users, err := r.store.ListUsers(ctx)
			return users, len(users) > 0, err
		}},
	}
	if r.hasLedger() {
		steps = append(steps, step[[]entity.User]{source: SourceLedger, run: func(ctx context.Context) ([]entity.User, bool, error) {
			users := make([]entity.User, 0, len(r.candidates))
			for _, address := range r.candidates {
				user, err := r.ledger.User(ctx, address)
				if err != nil {
					logger.Debug("Skipping ledger user %s: %v", address, err)
					continue
				}
				if user.Name == "" {
					continue
				}
				users = append(users, userFromLedger(address, user))
			}
			return users, len(users) > 0, nil
		}})
	}
	steps = append(steps, step[[]entity.User]{source: SourceMock, run: func(ctx context.Context) ([]entity.User, bool, error) {
		return MockUsers(), true, nil
	}})
	return resolve(ctx, "users", steps)
}

// User resolves a single user by wallet address.
func (r *Reconciler) User(ctx context.Context, address string) Result[entity.User] {
	steps := []step[entity.User]{
		{source: SourceStore, run: func(ctx context.Context) (entity.User, bool, error) {
			user, err := r.store.GetUser(ctx, address)
			if errors.Is(err, store.ErrNotFound) {
				return entity.User{}, false, nil
			}
			if err != nil {
				return entity.User{}, false, err
			}
			return *user, true, nil
		}},
	}
	if r.hasLedger() {
		steps = append(steps, step[entity.User]{source: SourceLedger, run: func(ctx context.Context) (entity.User, bool, error) {
			user, err := r.ledger.User(ctx, address)
			if err != nil {
				return entity.User{}, false, err
			}
			if user.Name == "" {
				return entity.User{}, false, nil
			}
			return userFromLedger(address, user), true, nil
		}})
	}
	steps = append(steps, step[entity.User]{source: SourceMock, run: func(ctx context.Context) (entity.User, bool, error) {
		user, found := mockUserByAddress(address)
		return user, found, nil
	}})
	return resolve(ctx, "user", steps)
}

// PropertyTransactions lists the purchase history of a property. There is no
// mock transaction data; with both sources failing the result carries the
// last error.
func (r *Reconciler) PropertyTransactions(ctx context.Context, property *entity.Property) Result[[]entity.Transaction] {
	steps := []step[[]entity.Transaction]{
		{source: SourceStore, run: func(ctx context.Context) ([]entity.Transaction, bool, error) {
			transactions, err := r.store.PropertyTransactions(ctx, property.ID)
			if errors.Is(err, store.ErrNotFound) {
				return nil, false, nil
			}
			return transactions, len(transactions) > 0, err
		}},
	}
	if r.hasLedger() {
		steps = append(steps, step[[]entity.Transaction]{source: SourceLedger, run: func(ctx context.Context) ([]entity.Transaction, bool, error) {
			ids, err := r.ledger.PropertyTransactions(ctx, property.ContractID())
			if err != nil {
				return nil, false, err
			}
			transactions := make([]entity.Transaction, 0, len(ids))
			for _, id := range ids {
				transaction, err := r.ledger.Transaction(ctx, id)
				if err != nil {
					logger.Debug("Skipping ledger transaction %d: %v", id, err)
					continue
				}
				transactions = append(transactions, transactionFromLedger(transaction))
			}
			return transactions, len(transactions) > 0, nil
		}})
	}
	return resolve(ctx, "transactions", steps)
}

// CreateProperty writes a new listing to the store and, with a connected
// account, lists it on the ledger. The returned property is the optimistic
// end state; no re-fetch happens.
func (r *Reconciler) CreateProperty(ctx context.Context, input store.NewProperty) (*entity.Property, error) {
	created, storeErr := r.store.CreateProperty(ctx, input)
	if storeErr != nil {
		logger.Warn("Store create failed, continuing with ledger: %v", storeErr)
	}

	if r.walletConnected() {
		_, err := r.ledger.ListProperty(ctx,
			input.Title,
			input.Description,
			input.Location,
			DecimalToWei(input.Price),
			int64(input.RoomCount),
			int64(input.SquareMeters),
			input.Images,
			input.Documents,
		)
		if err != nil {
			return nil, err
		}
	} else if storeErr != nil {
		return nil, storeErr
	}

	if created != nil {
		return created, nil
	}
	owner := input.Owner
	if account, ok := r.accountOrEmpty(); ok && owner == "" {
		owner = account
	}
	return &entity.Property{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Price:        input.Price,
		RoomCount:    input.RoomCount,
		SquareMeters: input.SquareMeters,
		Images:       input.Images,
		Documents:    input.Documents,
		Owner:        owner,
		CreatedAt:    time.Now(),
	}, nil
}

// ApproveProperty flips the administrative gate on both targets. On success
// the passed record is updated in place as the optimistic local state.
func (r *Reconciler) ApproveProperty(ctx context.Context, property *entity.Property) error {
	storeErr := r.store.ApproveProperty(ctx, property.ID)
	if storeErr != nil {
		logger.Warn("Store approve failed, continuing with ledger: %v", storeErr)
	}

	if r.walletConnected() {
		if _, err := r.ledger.ApproveProperty(ctx, property.ContractID()); err != nil {
			return err
		}
	} else if storeErr != nil {
		return storeErr
	}

	property.IsApproved = true
	return nil
}

// VerifyUser marks a user verified on both targets.
func (r *Reconciler) VerifyUser(ctx context.Context, user *entity.User) error {
	storeErr := r.store.VerifyUser(ctx, user.Address)
	if storeErr != nil {
		logger.Warn("Store verify failed, continuing with ledger: %v", storeErr)
	}

	if r.walletConnected() {
		if _, err := r.ledger.VerifyUser(ctx, user.Address); err != nil {
			return err
		}
	} else if storeErr != nil {
		return storeErr
	}

	user.IsVerified = true
	return nil
}

// SignECP records the signature acknowledgment for the active account on
// both targets. Requires a connected wallet: the contract derives the signer
// from the sending account.
func (r *Reconciler) SignECP(ctx context.Context, user *entity.User) error {
	if !r.walletConnected() {
		return ErrNoWallet
	}

	if _, err := r.store.SignECP(ctx, user.Address); err != nil {
		logger.Warn("Store ECP update failed, continuing with ledger: %v", err)
	}

	if _, err := r.ledger.SignECP(ctx); err != nil {
		return err
	}

	user.HasSignedECP = true
	return nil
}

// BuyProperty purchases a property. The ledger transfer is the user-facing
// step and runs first with the price attached as value; the store record is
// updated afterwards and its failure only logged.
func (r *Reconciler) BuyProperty(ctx context.Context, property *entity.Property) (*entity.Transaction, error) {
	account, ok := r.accountOrEmpty()
	if !ok {
		return nil, ErrNoWallet
	}

	txHash, err := r.ledger.BuyProperty(ctx, property.ContractID(), DecimalToWei(property.Price))
	if err != nil {
		return nil, err
	}

	transaction, storeErr := r.store.SellProperty(ctx, property.ID, account, txHash)
	if storeErr != nil {
		logger.Warn("Store sell update failed after ledger purchase: %v", storeErr)
	}

	property.IsSold = true
	if transaction != nil {
		return transaction, nil
	}
	return &entity.Transaction{
		PropertyID:      property.ID,
		Seller:          property.Owner,
		Buyer:           account,
		Price:           property.Price,
		TransactionHash: txHash,
		Timestamp:       time.Now(),
	}, nil
}

// SaveProfile creates or updates the user record for address. With no ledger
// connection the store is the primary path and its errors surface; with one,
// the ledger registration governs the outcome and store failures are only
// logged.
func (r *Reconciler) SaveProfile(ctx context.Context, address, name, kycDocument string) (*entity.User, error) {
	saved, storeErr := r.store.CreateUser(ctx, address, name)
	if storeErr == nil && kycDocument != "" {
		saved, storeErr = r.store.UpdateKYC(ctx, address, kycDocument)
	}

	if r.walletConnected() {
		if storeErr != nil {
			logger.Warn("Store profile update failed, continuing with ledger: %v", storeErr)
		}
		if _, err := r.ledger.RegisterUser(ctx, name, kycDocument); err != nil {
			return nil, err
		}
	} else if storeErr != nil {
		return nil, storeErr
	}

	if saved != nil {
		return saved, nil
	}
	return &entity.User{
		Address:     address,
		Name:        name,
		KYCDocument: kycDocument,
		CreatedAt:   time.Now(),
	}, nil
}

func (r *Reconciler) accountOrEmpty() (string, bool) {
	if r.ledger == nil {
		return "", false
	}
	return r.ledger.Account()
}
