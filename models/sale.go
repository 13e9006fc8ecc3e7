package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one cart line of a checkout. Lines of the same checkout share an
// OrderCode. Rows are immutable once written.
type Sale struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderCode  string          `gorm:"size:40;index;not null" json:"order_code"`
	UserID     uint            `gorm:"index;not null" json:"user_id"`
	User       Profile         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductID  uint            `gorm:"index;not null" json:"product_id"`
	Product    Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	IsCredit   bool            `gorm:"not null;default:false" json:"is_credit"`
	Paid       bool            `gorm:"not null;default:false" json:"paid"`
	CreatedAt  time.Time       `json:"created_at"`
}
