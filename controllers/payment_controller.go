package controllers

import (
	"net/http"

	"github.com/omerkonca/kantin23/config"
	"github.com/omerkonca/kantin23/models"
	"github.com/omerkonca/kantin23/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TopUpInput struct {
	UserID uint            `json:"user_id" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TopUpBalance loads balance onto a customer account (admin only).
func TopUpBalance(c *gin.Context) {
	var in TopUpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	payment, balance, err := svc().TopUp(c.Request.Context(), in.UserID, in.Amount)
	if err != nil {
		utils.Error(c, serviceStatus(err), "top-up failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "balance loaded",
		"data":    payment,
		"balance": balance,
	})
}

// MyBalance returns the caller's balance and top-up history.
func MyBalance(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	var profile models.Profile
	if err := config.DB.First(&profile, uid).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "profile not found", err)
		return
	}

	var payments []models.Payment
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC, id DESC").
		Find(&payments).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list payments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "balance",
		"balance":  profile.Balance,
		"payments": payments,
	})
}
