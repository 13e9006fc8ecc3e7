package service

import (
	"context"
	"errors"

	"github.com/omerkonca/kantin23/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TopUp records a balance load for the user: one Payment row plus the balance
// increase, committed together.
func (s *service) TopUp(ctx context.Context, userID uint, amount decimal.Decimal) (*models.Payment, decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, decimal.Zero, ErrInvalidAmount
	}

	var payment models.Payment
	var newBalance decimal.Decimal

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.First(&profile, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		payment = models.Payment{UserID: userID, Amount: amount}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Profile{}).
			Where("id = ?", userID).
			Update("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
			return err
		}

		if err := tx.First(&profile, userID).Error; err != nil {
			return err
		}
		newBalance = profile.Balance
		return nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &payment, newBalance, nil
}
