package service

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidPaymentMode = errors.New("payment mode must be cash or credit")

	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrInsufficientCredit = errors.New("insufficient credit limit")
	ErrInsufficientStock  = errors.New("insufficient stock")

	ErrNotFound      = errors.New("record not found")
	ErrForbidden     = errors.New("forbidden")
	ErrCreditSettled = errors.New("credit is already settled")
)
