package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type User struct {
	ID           uint64      `json:"id"`
	Fio          string      `json:"fio"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         string      `json:"role"`
	OfficeID     null.Uint64 `json:"office_id"`
	CreatedAt    time.Time   `json:"created_at"`
}
