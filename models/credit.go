package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit is an outstanding veresiye debt. PaidAmount only grows, clamped so it
// never exceeds Amount.
type Credit struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"index;not null" json:"user_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"paid_amount"`
	DueDate    time.Time       `gorm:"not null" json:"due_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (c *Credit) Remaining() decimal.Decimal {
	return c.Amount.Sub(c.PaidAmount)
}

func (c *Credit) Settled() bool {
	return c.PaidAmount.GreaterThanOrEqual(c.Amount)
}
