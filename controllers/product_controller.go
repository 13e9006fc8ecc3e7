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

type ProductInput struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"` // zero is a valid price
	Stock int64           `json:"stock"`
}

func CreateProduct(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	var in ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		utils.Error(c, http.StatusBadRequest, "price and stock must not be negative", nil)
		return
	}

	product := models.Product{
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedBy: uid,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create product", err)
		return
	}
	utils.Success(c, "product created", product)
}

func GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("name ASC").Find(&products).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list products", err)
		return
	}
	utils.Success(c, "products", products)
}

// GetAvailableProducts lists what customers can order: in-stock, by name.
func GetAvailableProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Where("stock > 0").Order("name ASC").Find(&products).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list products", err)
		return
	}
	utils.Success(c, "products", products)
}

func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "product not found", err)
		return
	}
	utils.Success(c, "product", product)
}

type ProductUpdateInput struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Stock *int64           `json:"stock,omitempty"`
}

func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "product not found", err)
		return
	}

	var in ProductUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			utils.Error(c, http.StatusBadRequest, "price must not be negative", nil)
			return
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			utils.Error(c, http.StatusBadRequest, "stock must not be negative", nil)
			return
		}
		product.Stock = *in.Stock
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update product", err)
		return
	}
	utils.Success(c, "product updated", product)
}

func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	res := config.DB.Delete(&models.Product{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete product", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "product not found", nil)
		return
	}
	utils.Success(c, "product deleted", nil)
}
