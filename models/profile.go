package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type Profile struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	Email        string              `gorm:"uniqueIndex;size:180;not null" json:"email"`
	Name         string              `gorm:"size:180;not null" json:"name"`
	Role         string              `gorm:"size:20;not null;default:customer" json:"role"`
	Balance      decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`
	CreditLimit  decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"credit_limit"`
	PasswordHash string              `gorm:"size:255" json:"-"` // never sent to clients
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func (p *Profile) IsAdmin() bool { return p.Role == RoleAdmin }
