package service

import (
	"context"
	"errors"

	"github.com/omerkonca/kantin23/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayCredit applies a payment to the user's credit. The effective payment is
// min(amount, remaining debt), so paid_amount can never exceed amount.
func (s *service) PayCredit(ctx context.Context, userID, creditID uint, amount decimal.Decimal) (*models.Credit, decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, decimal.Zero, ErrInvalidAmount
	}

	var credit models.Credit
	var applied decimal.Decimal

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&credit, creditID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if credit.UserID != userID {
			return ErrForbidden
		}
		if credit.Settled() {
			return ErrCreditSettled
		}

		applied = amount
		if remaining := credit.Remaining(); applied.GreaterThan(remaining) {
			applied = remaining
		}
		newPaid := credit.PaidAmount.Add(applied)

		// guard on the value we read, so a concurrent payment cannot push
		// paid_amount past amount
		res := tx.Model(&models.Credit{}).
			Where("id = ? AND paid_amount = ?", credit.ID, credit.PaidAmount).
			Update("paid_amount", newPaid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("credit was modified concurrently")
		}

		credit.PaidAmount = newPaid
		return nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &credit, applied, nil
}
