package controllers

import (
	"net/http"
	"strconv"

	"github.com/omerkonca/kantin23/service"
	"github.com/omerkonca/kantin23/utils"

	"github.com/gin-gonic/gin"
)

func getInt(c *gin.Context, key string, def int) int {
	v, _ := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if v <= 0 {
		return def
	}
	return v
}

// GET .../reports/daily?window=
func ReportDailySales(c *gin.Context) {
	window := getInt(c, "window", service.DefaultDailyWindow)

	rows, err := svc().DailySales(c.Request.Context(), window)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "report failed", err)
		return
	}
	utils.Success(c, "daily sales", rows)
}

// GET .../reports/top-products?window=&top=
func ReportTopProducts(c *gin.Context) {
	window := getInt(c, "window", service.DefaultProductWindow)
	top := getInt(c, "top", service.DefaultTopProducts)

	rows, err := svc().TopProducts(c.Request.Context(), window, top)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "report failed", err)
		return
	}
	utils.Success(c, "top products", rows)
}
