package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/omerkonca/kantin23/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentMode string

const (
	ModeCash   PaymentMode = "cash"
	ModeCredit PaymentMode = "credit"
)

// Cart maps product id to quantity. It lives only for the duration of one
// checkout call; the client keeps its own copy between requests.
type Cart map[uint]int64

// CartLine is one entry of the checkout payload.
type CartLine struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required,gt=0"`
}

// NewCart merges payload lines into a cart, folding duplicate product ids.
func NewCart(lines []CartLine) (Cart, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	cart := make(Cart, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		cart[l.ProductID] += l.Quantity
	}
	return cart, nil
}

// productIDs returns the cart's keys in ascending order so rows are always
// touched in the same order (avoids deadlocks between concurrent checkouts).
func (c Cart) productIDs() []uint {
	ids := make([]uint, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type CheckoutResult struct {
	OrderCode string          `json:"order_code"`
	Total     decimal.Decimal `json:"total"`
	Sales     []models.Sale   `json:"sales"`
	Credit    *models.Credit  `json:"credit,omitempty"`
}

// Checkout turns a cart into persisted sale, stock and balance/credit records.
// The whole sequence runs in one transaction: a failed step leaves no writes
// behind. Prices are read from the products table, never from the client.
func (s *service) Checkout(ctx context.Context, userID uint, cart Cart, mode PaymentMode) (*CheckoutResult, error) {
	if mode != ModeCash && mode != ModeCredit {
		return nil, ErrInvalidPaymentMode
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	for _, qty := range cart {
		if qty < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	var result *CheckoutResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.First(&profile, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		ids := cart.productIDs()

		var products []models.Product
		if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
			return err
		}
		if len(products) != len(ids) {
			return ErrNotFound
		}
		byID := make(map[uint]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		total := decimal.Zero
		for _, id := range ids {
			p := byID[id]
			qty := cart[id]
			if p.Stock < qty {
				return ErrInsufficientStock
			}
			total = total.Add(p.Price.Mul(decimal.NewFromInt(qty)))
		}

		switch mode {
		case ModeCash:
			if profile.Balance.LessThan(total) {
				return ErrInsufficientFunds
			}
		case ModeCredit:
			if !profile.CreditLimit.Valid || profile.CreditLimit.Decimal.LessThan(total) {
				return ErrInsufficientCredit
			}
		}

		orderCode := uuid.NewString()
		sales := make([]models.Sale, 0, len(ids))
		for _, id := range ids {
			p := byID[id]
			qty := cart[id]
			sales = append(sales, models.Sale{
				OrderCode:  orderCode,
				UserID:     userID,
				ProductID:  p.ID,
				Quantity:   qty,
				TotalPrice: p.Price.Mul(decimal.NewFromInt(qty)),
				IsCredit:   mode == ModeCredit,
				Paid:       mode == ModeCash,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&sales).Error; err != nil {
			return err
		}

		var credit *models.Credit
		if mode == ModeCredit {
			credit = &models.Credit{
				UserID:     userID,
				Amount:     total,
				PaidAmount: decimal.Zero,
				DueDate:    time.Now().AddDate(0, 1, 0),
			}
			if err := tx.Create(credit).Error; err != nil {
				return err
			}
		} else {
			// guarded debit closes the read-check-write race on balance
			res := tx.Model(&models.Profile{}).
				Where("id = ? AND balance >= ?", userID, total).
				Update("balance", gorm.Expr("balance - ?", total))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientFunds
			}
		}

		for _, id := range ids {
			qty := cart[id]
			// same guard for stock, protects against concurrent oversell
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", id, qty).
				Update("stock", gorm.Expr("stock - ?", qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}

		result = &CheckoutResult{
			OrderCode: orderCode,
			Total:     total,
			Sales:     sales,
			Credit:    credit,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
