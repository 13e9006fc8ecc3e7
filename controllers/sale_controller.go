package controllers

import (
	"net/http"

	"github.com/omerkonca/kantin23/config"
	"github.com/omerkonca/kantin23/models"
	"github.com/omerkonca/kantin23/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminGetAllSales lists every sale with customer and product names plus the
// grand total, newest first.
func AdminGetAllSales(c *gin.Context) {
	var sales []models.Sale
	if err := config.DB.
		Preload("User").
		Preload("Product").
		Order("created_at DESC, id DESC").
		Find(&sales).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list sales", err)
		return
	}

	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalPrice)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "sales",
		"data":    sales,
		"total":   total,
	})
}

// MyOrders lists the caller's own sales, newest first.
func MyOrders(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	var sales []models.Sale
	if err := config.DB.
		Preload("Product").
		Where("user_id = ?", uid).
		Order("created_at DESC, id DESC").
		Find(&sales).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list orders", err)
		return
	}
	utils.Success(c, "orders", sales)
}
