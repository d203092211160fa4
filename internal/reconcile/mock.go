package reconcile

import (
	"strings"
	"time"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
)

// DefaultCandidateAddresses is the fixed address list used to enumerate users
// on the ledger, which exposes no user enumeration of its own. A known
// limitation, not true enumeration.
var DefaultCandidateAddresses = []string{
	"0xE224597F4D54bA16E38308468280Ef0E7a2F76cA",
	"0x1234567890123456789012345678901234567890",
	"0xAbCdEf1234567890AbCdEf1234567890AbCdEf12",
}

// MockProperties is the last-resort property data set, returned when both the
// store and the ledger yield nothing. Never written back.
func MockProperties() []entity.Property {
	now := time.Now()
	return []entity.Property{
		{
			ID:           1,
			Title:        "3-комнатная квартира в ЖК \"Премиум\"",
			Description:  "Шикарная квартира в центре города с видом на парк. Полностью меблированная, с новым ремонтом. В квартире 3 просторные комнаты, большая кухня, 2 санузла. Во дворе детская площадка, паркинг.",
			Location:     "Алматы",
			Price:        5.2,
			RoomCount:    3,
			SquareMeters: 85,
			Images:       []string{"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=1170&q=80"},
			Owner:        "0xE224597F4D54bA16E38308468280Ef0E7a2F76cA",
			IsApproved:   true,
			CreatedAt:    now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:           2,
			Title:        "2-комнатная квартира с видом на горы",
			Location:     "Астана",
			Price:        3.8,
			RoomCount:    2,
			SquareMeters: 65,
			Images:       []string{"https://images.unsplash.com/photo-1565182999561-f4f795d8710d?auto=format&fit=crop&w=1170&q=80"},
			Owner:        "0x1234567890123456789012345678901234567890",
			IsApproved:   true,
			CreatedAt:    now.Add(-7 * 24 * time.Hour),
		},
		{
			ID:           3,
			Title:        "Студия в центре города",
			Location:     "Шымкент",
			Price:        2.5,
			RoomCount:    1,
			SquareMeters: 45,
			Images:       []string{"https://images.unsplash.com/photo-1560184897-ae75f418493e?auto=format&fit=crop&w=1170&q=80"},
			Owner:        "0xAbCdEf1234567890AbCdEf1234567890AbCdEf12",
			IsApproved:   false,
			CreatedAt:    now.Add(-1 * 24 * time.Hour),
		},
		{
			ID:           4,
			Title:        "Пентхаус с террасой",
			Location:     "Алматы",
			Price:        8.1,
			RoomCount:    4,
			SquareMeters: 150,
			Images:       []string{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?auto=format&fit=crop&w=1170&q=80"},
			Owner:        "0xE224597F4D54bA16E38308468280Ef0E7a2F76cA",
			IsApproved:   true,
			IsSold:       true,
			CreatedAt:    now.Add(-10 * 24 * time.Hour),
		},
		{
			ID:           5,
			Title:        "Уютная квартира возле набережной",
			Location:     "Актау",
			Price:        3.2,
			RoomCount:    2,
			SquareMeters: 60,
			Images:       []string{"https://images.unsplash.com/photo-1493809842364-78817add7ffb?auto=format&fit=crop&w=1170&q=80"},
			Owner:        "0x1234567890123456789012345678901234567890",
			IsApproved:   true,
			CreatedAt:    now.Add(-4 * 24 * time.Hour),
		},
		{
			ID:           6,
			Title:        "1-комнатная квартира в новостройке",
			Location:     "Караганды",
			Price:        1.8,
			RoomCount:    1,
			SquareMeters: 40,
			Images:       []string{"https://images.unsplash.com/photo-1533779283484-8ad4940aa3a8?auto=format&fit=crop&w=1170&q=80"},
			Owner:        "0xAbCdEf1234567890AbCdEf1234567890AbCdEf12",
			IsApproved:   true,
			CreatedAt:    now.Add(-2 * 24 * time.Hour),
		},
	}
}

// MockProperty is the single-property placeholder shown when a detail read
// fails on both sources. It carries the requested id.
func MockProperty(id int64) entity.Property {
	property := MockProperties()[0]
	property.ID = id
	property.Owner = "0x1234567890123456789012345678901234567890"
	property.Documents = "https://ipfs.io/ipfs/QmZ4j1xQ3rwZsEKXhFwqxBnDJGfAq1Tb4DMHnYZd3kBM5a"
	return property
}

// MockUsers is the last-resort user data set.
func MockUsers() []entity.User {
	now := time.Now()
	return []entity.User{
		{
			Address:     "0xE224597F4D54bA16E38308468280Ef0E7a2F76cA",
			Name:        "Александр Петров",
			KYCDocument: "https://gateway.pinata.cloud/ipfs/QmNjk1zzw2mkkBNk7qcXp9vL4JeBBC3RpZu5LMsmF7DdeN",
			CreatedAt:   now.Add(-2 * 24 * time.Hour),
		},
		{
			Address:     "0x1234567890123456789012345678901234567890",
			Name:        "Елена Иванова",
			IsVerified:  true,
			KYCDocument: "https://gateway.pinata.cloud/ipfs/QmZ4j1xQ3rwZsEKXhFwqxBnDJGfAq1Tb4DMHnYZd3kBM5a",
			CreatedAt:   now.Add(-5 * 24 * time.Hour),
		},
		{
			Address:   "0xAbCdEf1234567890AbCdEf1234567890AbCdEf12",
			Name:      "Михаил Сидоров",
			CreatedAt: now.Add(-1 * 24 * time.Hour),
		},
	}
}

func mockUserByAddress(address string) (entity.User, bool) {
	for _, user := range MockUsers() {
		if strings.EqualFold(user.Address, address) {
			return user, true
		}
	}
	return entity.User{}, false
}
