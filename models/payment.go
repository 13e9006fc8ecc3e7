package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an append-only log entry of a balance top-up by an admin.
type Payment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"index;not null" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
