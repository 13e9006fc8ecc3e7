package routes

import (
	"github.com/omerkonca/kantin23/controllers"
	"github.com/omerkonca/kantin23/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.GET("/me", middlewares.AuthMiddleware(), controllers.Me)
		}

		// ================= ADMIN =================
		admin := api.Group("/admin", middlewares.AuthMiddleware(), middlewares.AdminOnly())
		{
			product := admin.Group("/products")
			{
				product.GET("/", controllers.GetAllProducts)
				product.GET("/:id", controllers.GetProductByID)
				product.POST("/", controllers.CreateProduct)
				product.PUT("/:id", controllers.UpdateProduct)
				product.DELETE("/:id", controllers.DeleteProduct)
			}

			customer := admin.Group("/customers")
			{
				customer.GET("/", controllers.GetAllCustomers)
				customer.GET("/search", controllers.SearchCustomers)
				customer.PUT("/:id/credit-limit", controllers.SetCreditLimit)
			}

			admin.GET("/sales", controllers.AdminGetAllSales)
			admin.GET("/credits", controllers.AdminGetAllCredits)
			admin.POST("/topup", controllers.TopUpBalance)

			reports := admin.Group("/reports")
			{
				reports.GET("/daily", controllers.ReportDailySales)
				reports.GET("/top-products", controllers.ReportTopProducts)
			}
		}

		// ================ CUSTOMER ================
		user := api.Group("/", middlewares.AuthMiddleware())
		{
			user.GET("/products", controllers.GetAvailableProducts)
			user.POST("/checkout", controllers.Checkout)
			user.GET("/orders", controllers.MyOrders)
			user.GET("/credits", controllers.MyCredits)
			user.POST("/credits/:id/pay", controllers.PayCredit)
			user.GET("/balance", controllers.MyBalance)
		}
	}
}
