package controllers

import (
	"net/http"
	"strconv"

	"github.com/omerkonca/kantin23/config"
	"github.com/omerkonca/kantin23/models"
	"github.com/omerkonca/kantin23/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MyCredits lists the caller's veresiye records, newest first.
func MyCredits(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	var credits []models.Credit
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC, id DESC").
		Find(&credits).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list credits", err)
		return
	}
	utils.Success(c, "credits", credits)
}

// AdminGetAllCredits lists every credit, soonest due first.
func AdminGetAllCredits(c *gin.Context) {
	var credits []models.Credit
	if err := config.DB.
		Order("due_date ASC, id DESC").
		Find(&credits).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list credits", err)
		return
	}
	utils.Success(c, "credits", credits)
}

type CreditPayInput struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

func PayCredit(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	var in CreditPayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	credit, applied, err := svc().PayCredit(c.Request.Context(), uid, uint(id), in.Amount)
	if err != nil {
		utils.Error(c, serviceStatus(err), "payment failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "payment applied",
		"applied": applied,
		"data":    credit,
	})
}
