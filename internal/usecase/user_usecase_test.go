package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/pkg/errors"
)

const testAddress = "0xE224597F4D54bA16E38308468280Ef0E7a2F76cA"

func TestRegisterIsIdempotent(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	first, err := uc.Register(ctx, testAddress, "Александр")
	require.NoError(t, err)

	second, err := uc.Register(ctx, testAddress, "Другое имя")
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	count, _ := repo.Count(ctx)
	assert.Equal(t, int64(1), count)
}

func TestAddressMatchedCaseInsensitively(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, testAddress, "Александр")
	require.NoError(t, err)

	found, err := uc.GetByAddress(ctx, "0xe224597f4d54ba16e38308468280ef0e7a2f76ca")
	require.NoError(t, err)
	assert.Equal(t, "Александр", found.Name)
}

func TestUpdateKYCCreatesUserWithPlaceholderName(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := NewUserUseCase(repo)

	user, err := uc.UpdateKYC(context.Background(), testAddress, "https://gateway.pinata.cloud/ipfs/QmDoc")
	require.NoError(t, err)

	assert.Equal(t, "User 0xE224", user.Name)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmDoc", user.KYCDocument)
}

func TestVerifyIsOneWay(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, testAddress, "Александр")
	require.NoError(t, err)

	require.NoError(t, uc.Verify(ctx, testAddress))
	user, err := uc.GetByAddress(ctx, testAddress)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)

	// Subsequent profile updates must not reset the flag.
	_, err = uc.UpdateKYC(ctx, testAddress, "https://example.com/doc.pdf")
	require.NoError(t, err)
	user, err = uc.GetByAddress(ctx, testAddress)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
}

func TestVerifyUnknownUserFails(t *testing.T) {
	uc := NewUserUseCase(newMemoryUserRepo())

	err := uc.Verify(context.Background(), testAddress)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSignECPCreatesUserWhenMissing(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := NewUserUseCase(repo)

	user, err := uc.SignECP(context.Background(), testAddress)
	require.NoError(t, err)
	assert.True(t, user.HasSignedECP)
	assert.Equal(t, "User 0xE224", user.Name)
}

func TestSignECPStaysSet(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.SignECP(ctx, testAddress)
	require.NoError(t, err)
	_, err = uc.SignECP(ctx, testAddress)
	require.NoError(t, err)

	user, err := uc.GetByAddress(ctx, testAddress)
	require.NoError(t, err)
	assert.True(t, user.HasSignedECP)
}

func TestListUsers(t *testing.T) {
	repo := newMemoryUserRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.User{Address: testAddress, Name: "A"}))

	uc := NewUserUseCase(repo)
	users, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
