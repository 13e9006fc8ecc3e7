package controllers

import (
	"errors"
	"net/http"

	"github.com/omerkonca/kantin23/config"
	"github.com/omerkonca/kantin23/service"
	"github.com/omerkonca/kantin23/utils"

	"github.com/gin-gonic/gin"
)

func svc() service.Service { return service.NewService(config.DB) }

type CheckoutInput struct {
	Mode  string             `json:"mode" binding:"required"` // cash | credit
	Items []service.CartLine `json:"items" binding:"required,min=1,dive"`
}

func Checkout(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	var in CheckoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	cart, err := service.NewCart(in.Items)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid cart", err)
		return
	}

	result, err := svc().Checkout(c.Request.Context(), uid, cart, service.PaymentMode(in.Mode))
	if err != nil {
		utils.Error(c, serviceStatus(err), "checkout failed", err)
		return
	}
	utils.Success(c, "checkout complete", result)
}

// serviceStatus maps service errors onto HTTP statuses.
func serviceStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidPaymentMode),
		errors.Is(err, service.ErrCreditSettled):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrInsufficientCredit),
		errors.Is(err, service.ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
