package service

import (
	"context"
	"testing"
	"time"

	"github.com/omerkonca/kantin23/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCart(t *testing.T) {
	t.Run("merges duplicate lines", func(t *testing.T) {
		cart, err := NewCart([]CartLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
			{ProductID: 1, Quantity: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, Cart{1: 5, 2: 1}, cart)
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := NewCart(nil)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewCart([]CartLine{{ProductID: 1, Quantity: 0}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

// Worked example: cart {A(10x2), B(5x1)} with balance 30 leaves balance 5,
// two sale rows of 20 and 5, stock reduced by 2 and 1.
func TestCheckoutCash(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	user := createCustomer(t, db, "ali", 30, nil)
	prodA := createProduct(t, db, "Ayran", 10, 8)
	prodB := createProduct(t, db, "Simit", 5, 3)

	res, err := svc.Checkout(context.Background(), user.ID, Cart{prodA.ID: 2, prodB.ID: 1}, ModeCash)
	require.NoError(t, err)

	assert.True(t, res.Total.Equal(decimal.NewFromInt(25)), "total = %s", res.Total)
	assert.NotEmpty(t, res.OrderCode)
	assert.Nil(t, res.Credit)
	require.Len(t, res.Sales, 2)

	byProduct := map[uint]models.Sale{}
	for _, s := range res.Sales {
		assert.Equal(t, res.OrderCode, s.OrderCode)
		assert.True(t, s.Paid)
		assert.False(t, s.IsCredit)
		byProduct[s.ProductID] = s
	}
	assert.True(t, byProduct[prodA.ID].TotalPrice.Equal(decimal.NewFromInt(20)))
	assert.True(t, byProduct[prodB.ID].TotalPrice.Equal(decimal.NewFromInt(5)))

	assert.True(t, reload[models.Profile](t, db, user.ID).Balance.Equal(decimal.NewFromInt(5)))
	assert.EqualValues(t, 6, reload[models.Product](t, db, prodA.ID).Stock)
	assert.EqualValues(t, 2, reload[models.Product](t, db, prodB.ID).Stock)

	var saleCount int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&saleCount).Error)
	assert.EqualValues(t, 2, saleCount)
}

func TestCheckoutCashInsufficientFunds(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	user := createCustomer(t, db, "veli", 10, nil)
	prod := createProduct(t, db, "Tost", 12, 5)

	_, err := svc.Checkout(context.Background(), user.ID, Cart{prod.ID: 1}, ModeCash)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// zero writes
	var saleCount int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&saleCount).Error)
	assert.Zero(t, saleCount)
	assert.True(t, reload[models.Profile](t, db, user.ID).Balance.Equal(decimal.NewFromInt(10)))
	assert.EqualValues(t, 5, reload[models.Product](t, db, prod.ID).Stock)
}

func TestCheckoutCredit(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	user := createCustomer(t, db, "ayse", 0, int64Ptr(100))
	prod := createProduct(t, db, "Kola", 15, 4)

	before := time.Now()
	res, err := svc.Checkout(context.Background(), user.ID, Cart{prod.ID: 2}, ModeCredit)
	require.NoError(t, err)

	require.NotNil(t, res.Credit)
	assert.True(t, res.Credit.Amount.Equal(decimal.NewFromInt(30)))
	assert.True(t, res.Credit.PaidAmount.IsZero())
	assert.WithinDuration(t, before.AddDate(0, 1, 0), res.Credit.DueDate, time.Minute)

	require.Len(t, res.Sales, 1)
	assert.True(t, res.Sales[0].IsCredit)
	assert.False(t, res.Sales[0].Paid)

	// credit mode leaves the balance alone
	assert.True(t, reload[models.Profile](t, db, user.ID).Balance.IsZero())
	assert.EqualValues(t, 2, reload[models.Product](t, db, prod.ID).Stock)
}

func TestCheckoutCreditLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	prod := createProduct(t, db, "Su", 5, 10)

	t.Run("unset limit", func(t *testing.T) {
		user := createCustomer(t, db, "fatma", 100, nil)
		_, err := svc.Checkout(context.Background(), user.ID, Cart{prod.ID: 1}, ModeCredit)
		assert.ErrorIs(t, err, ErrInsufficientCredit)
	})

	t.Run("limit below total", func(t *testing.T) {
		user := createCustomer(t, db, "mehmet", 100, int64Ptr(4))
		_, err := svc.Checkout(context.Background(), user.ID, Cart{prod.ID: 1}, ModeCredit)
		assert.ErrorIs(t, err, ErrInsufficientCredit)
	})

	var cnt int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
	require.NoError(t, db.Model(&models.Credit{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	user := createCustomer(t, db, "zeynep", 1000, nil)
	ok := createProduct(t, db, "Cay", 2, 10)
	scarce := createProduct(t, db, "Pogaca", 6, 1)

	_, err := svc.Checkout(context.Background(), user.ID, Cart{ok.ID: 3, scarce.ID: 2}, ModeCash)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// the whole transaction rolled back, including the valid line
	var saleCount int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&saleCount).Error)
	assert.Zero(t, saleCount)
	assert.EqualValues(t, 10, reload[models.Product](t, db, ok.ID).Stock)
	assert.EqualValues(t, 1, reload[models.Product](t, db, scarce.ID).Stock)
	assert.True(t, reload[models.Profile](t, db, user.ID).Balance.Equal(decimal.NewFromInt(1000)))
}

func TestCheckoutValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	user := createCustomer(t, db, "hasan", 50, nil)
	prod := createProduct(t, db, "Kek", 5, 5)

	t.Run("empty cart", func(t *testing.T) {
		_, err := svc.Checkout(context.Background(), user.ID, Cart{}, ModeCash)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("bad mode", func(t *testing.T) {
		_, err := svc.Checkout(context.Background(), user.ID, Cart{prod.ID: 1}, PaymentMode("iban"))
		assert.ErrorIs(t, err, ErrInvalidPaymentMode)
	})

	t.Run("bad quantity", func(t *testing.T) {
		_, err := svc.Checkout(context.Background(), user.ID, Cart{prod.ID: 0}, ModeCash)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.Checkout(context.Background(), user.ID, Cart{9999: 1}, ModeCash)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Checkout(context.Background(), 9999, Cart{prod.ID: 1}, ModeCash)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
