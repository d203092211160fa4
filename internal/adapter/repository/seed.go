package repository

import (
	"context"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/internal/domain/repository"
	"github.com/ErniyazCode/kazproperty/pkg/errors"
	"github.com/ErniyazCode/kazproperty/pkg/logger"
)

// Seed populates the store with the default admin and sample data when the
// collections are empty. Safe to run on every startup.
func Seed(ctx context.Context, adminRepo repository.AdminRepository, propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) error {
	if _, err := adminRepo.GetByUsername(ctx, "admin"); err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return err
		}
		defaultAdmin := &entity.Admin{
			Username: "admin",
			Password: "admin",
			Name:     "Administrator",
			Email:    "admin@example.com",
			Role:     "Admin",
		}
		if err := adminRepo.Create(ctx, defaultAdmin); err != nil {
			return err
		}
		logger.Info("Default admin created")
	}

	propertyCount, err := propertyRepo.Count(ctx)
	if err != nil {
		return err
	}
	if propertyCount == 0 {
		logger.Info("Adding sample properties to database...")
		for _, p := range sampleProperties() {
			if err := propertyRepo.Create(ctx, p); err != nil {
				return err
			}
		}
	}

	userCount, err := userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if userCount == 0 {
		logger.Info("Adding sample users to database...")
		for _, u := range sampleUsers() {
			if err := userRepo.Create(ctx, u); err != nil {
				return err
			}
		}
	}

	return nil
}

func sampleProperties() []*entity.Property {
	return []*entity.Property{
		{
			ID:           1,
			Title:        "3-комнатная квартира в ЖК \"Премиум\"",
			Description:  "Шикарная квартира в центре города с видом на парк. Полностью меблированная, с новым ремонтом.",
			Location:     "Алматы",
			Price:        5.2,
			RoomCount:    3,
			SquareMeters: 85,
			Images:       []string{"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=1170&q=80"},
			Owner:        "0xE224597F4D54bA16E38308468280Ef0E7a2F76cA",
			IsApproved:   true,
			IsSold:       false,
		},
		{
			ID:           2,
			Title:        "2-комнатная квартира с видом на горы",
			Description:  "Современная квартира с панорамными окнами и видом на горы.",
			Location:     "Астана",
			Price:        3.8,
			RoomCount:    2,
			SquareMeters: 65,
			Images:       []string{"https://images.unsplash.com/photo-1565182999561-f4f795d8710d?auto=format&fit=crop&w=1170&q=80"},
			Owner:        "0x1234567890123456789012345678901234567890",
			IsApproved:   true,
			IsSold:       false,
		},
		{
			ID:           3,
			Title:        "Студия в центре города",
			Description:  "Уютная студия в центре города с современным ремонтом.",
			Location:     "Шымкент",
			Price:        2.5,
			RoomCount:    1,
			SquareMeters: 45,
			Images:       []string{"https://images.unsplash.com/photo-1560184897-ae75f418493e?auto=format&fit=crop&w=1170&q=80"},
			Owner:        "0xAbCdEf1234567890AbCdEf1234567890AbCdEf12",
			IsApproved:   false,
			IsSold:       false,
		},
	}
}

func sampleUsers() []*entity.User {
	return []*entity.User{
		{
			Address:      "0xE224597F4D54bA16E38308468280Ef0E7a2F76cA",
			Name:         "Александр Петров",
			IsVerified:   true,
			KYCDocument:  "https://gateway.pinata.cloud/ipfs/QmNjk1zzw2mkkBNk7qcXp9vL4JeBBC3RpZu5LMsmF7DdeN",
			HasSignedECP: true,
		},
		{
			Address:      "0x1234567890123456789012345678901234567890",
			Name:         "Елена Иванова",
			IsVerified:   true,
			KYCDocument:  "https://ipfs.io/ipfs/QmZ4j1xQ3rwZsEKXhFwqxBnDJGfAq1Tb4DMHnYZd3kBM5a",
			HasSignedECP: true,
		},
		{
			Address:      "0xAbCdEf1234567890AbCdEf1234567890AbCdEf12",
			Name:         "Михаил Сидоров",
			IsVerified:   false,
			KYCDocument:  "",
			HasSignedECP: false,
		},
	}
}
