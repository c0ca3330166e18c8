package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Office struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Description null.String `json:"description"`
	CreatedBy   uint64      `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
