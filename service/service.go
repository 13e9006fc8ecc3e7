package service

import (
	"context"

	"github.com/omerkonca/kantin23/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service holds every operation that is more than a single read or write:
// the checkout sequence, credit payments, balance top-ups and the sales
// reports. Controllers stay thin on top of it.
type Service interface {
	Checkout(ctx context.Context, userID uint, cart Cart, mode PaymentMode) (*CheckoutResult, error)

	// PayCredit applies a payment to a credit, clamped to the remaining debt.
	// Returns the updated credit and the amount actually applied.
	PayCredit(ctx context.Context, userID, creditID uint, amount decimal.Decimal) (*models.Credit, decimal.Decimal, error)

	// TopUp appends a Payment record and adds the amount to the user's
	// balance. Returns the payment and the new balance.
	TopUp(ctx context.Context, userID uint, amount decimal.Decimal) (*models.Payment, decimal.Decimal, error)

	// DailySales groups the most recent `window` sale rows by calendar day.
	DailySales(ctx context.Context, window int) ([]DailySalesRow, error)

	// TopProducts groups the most recent `window` sale rows by product and
	// returns the `top` best sellers by quantity.
	TopProducts(ctx context.Context, window, top int) ([]TopProductRow, error)
}

type service struct{ db *gorm.DB }

func NewService(db *gorm.DB) Service { return &service{db: db} }
