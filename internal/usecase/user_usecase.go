package usecase

import (
	"context"
	"time"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/internal/domain/repository"
	"github.com/ErniyazCode/kazproperty/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to list users", err)
	}
	return users, nil
}

func (uc *UserUseCase) GetByAddress(ctx context.Context, address string) (*entity.User, error) {
	return uc.userRepo.GetByAddress(ctx, address)
}

// Register creates a user record for a wallet address. Registering an
// existing address returns the existing record unchanged.
func (uc *UserUseCase) Register(ctx context.Context, address, name string) (*entity.User, error) {
	existing, err := uc.userRepo.GetByAddress(ctx, address)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user := &entity.User{
		Address:      address,
		Name:         name,
		IsVerified:   false,
		KYCDocument:  "",
		HasSignedECP: false,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user", err)
	}
	return user, nil
}

// UpdateKYC stores the uploaded document URL, creating the user record with
// a placeholder name when none exists yet.
func (uc *UserUseCase) UpdateKYC(ctx context.Context, address, kycDocument string) (*entity.User, error) {
	user, err := uc.userRepo.GetByAddress(ctx, address)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		user = &entity.User{
			Address:     address,
			Name:        placeholderName(address),
			KYCDocument: kycDocument,
			CreatedAt:   time.Now(),
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Internal("Failed to create user", err)
		}
		return user, nil
	}

	user.KYCDocument = kycDocument
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update KYC document", err)
	}
	return user, nil
}

// Verify flips isVerified to true. There is no operation to undo it.
func (uc *UserUseCase) Verify(ctx context.Context, address string) error {
	user, err := uc.userRepo.GetByAddress(ctx, address)
	if err != nil {
		return err
	}

	user.IsVerified = true
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return errors.Internal("Failed to verify user", err)
	}
	return nil
}

// SignECP flips hasSignedECP to true, creating the user record when none
// exists. One-way, like Verify.
func (uc *UserUseCase) SignECP(ctx context.Context, address string) (*entity.User, error) {
	user, err := uc.userRepo.GetByAddress(ctx, address)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		user = &entity.User{
			Address:      address,
			Name:         placeholderName(address),
			HasSignedECP: true,
			CreatedAt:    time.Now(),
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Internal("Failed to create user", err)
		}
		return user, nil
	}

	user.HasSignedECP = true
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to sign ECP", err)
	}
	return user, nil
}

func placeholderName(address string) string {
	if len(address) > 6 {
		return "User " + address[:6]
	}
	return "User " + address
}
