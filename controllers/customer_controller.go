package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/omerkonca/kantin23/config"
	"github.com/omerkonca/kantin23/models"
	"github.com/omerkonca/kantin23/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func GetAllCustomers(c *gin.Context) {
	var customers []models.Profile
	if err := config.DB.
		Where("role = ?", models.RoleCustomer).
		Order("name ASC").
		Find(&customers).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list customers", err)
		return
	}
	utils.Success(c, "customers", customers)
}

// SearchCustomers finds customers by name substring, 3 chars minimum.
func SearchCustomers(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if len(term) < 3 {
		utils.Error(c, http.StatusBadRequest, "query must be at least 3 characters", nil)
		return
	}

	var customers []models.Profile
	if err := config.DB.
		Where("role = ? AND LOWER(name) LIKE ?", models.RoleCustomer, "%"+strings.ToLower(term)+"%").
		Order("name ASC").
		Find(&customers).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "search failed", err)
		return
	}
	utils.Success(c, "customers", customers)
}

type CreditLimitInput struct {
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

func SetCreditLimit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	var in CreditLimitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if in.CreditLimit.IsNegative() {
		utils.Error(c, http.StatusBadRequest, "credit limit must not be negative", nil)
		return
	}

	var customer models.Profile
	if err := config.DB.Where("role = ?", models.RoleCustomer).First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "customer not found", err)
		return
	}

	customer.CreditLimit = decimal.NewNullDecimal(in.CreditLimit)
	if err := config.DB.Save(&customer).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update credit limit", err)
		return
	}
	utils.Success(c, "credit limit updated", customer)
}
