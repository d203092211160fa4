package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/internal/domain/repository"
	"github.com/ErniyazCode/kazproperty/pkg/errors"
	"github.com/ErniyazCode/kazproperty/pkg/logger"
)

type AdminUseCase struct {
	adminRepo repository.AdminRepository
	jwtSecret string
	jwtExpiry int64
}

func NewAdminUseCase(adminRepo repository.AdminRepository, jwtSecret string, jwtExpiry int64) *AdminUseCase {
	return &AdminUseCase{
		adminRepo: adminRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

type AdminSession struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     *entity.Admin `json:"admin"`
}

// Login checks the credential pair and issues a signed session token with
// expiry. Admin-gated endpoints require this token.
func (uc *AdminUseCase) Login(ctx context.Context, username, password string) (*AdminSession, error) {
	admin, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("Invalid credentials", nil)
		}
		return nil, err
	}
	if admin.Password != password {
		logger.Warn("Invalid admin credentials: %s", username)
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	expiresAt := time.Now().Add(time.Duration(uc.jwtExpiry) * time.Second)
	claims := jwt.MapClaims{
		"sub":  admin.Username,
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, errors.Internal("Failed to issue session token", err)
	}

	logger.Info("Admin login successful: %s", username)
	return &AdminSession{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     admin,
	}, nil
}
