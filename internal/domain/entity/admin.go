package entity

import (
	"time"
)

type Admin struct {
	Username  string    `json:"username" firestore:"username"`
	Password  string    `json:"-" firestore:"password"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
