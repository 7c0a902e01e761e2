package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dosadiner/dosa-api/controllers"
	"github.com/dosadiner/dosa-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(rateLimiter.RateLimit())

	// Deletes get a much tighter budget than reads and writes.
	strictLimit := middlewares.NewStrictRateLimiter()

	customerCtrl := controllers.NewCustomerController(db)
	itemCtrl := controllers.NewItemController(db)
	orderCtrl := controllers.NewOrderController(db)

	customers := r.Group("/customers")
	{
		customers.POST("", customerCtrl.CreateCustomer)
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.GET("/:customer_id", customerCtrl.GetCustomerByID)
		customers.PUT("/:customer_id", customerCtrl.UpdateCustomer)
		customers.DELETE("/:customer_id", strictLimit, customerCtrl.DeleteCustomer)
	}

	items := r.Group("/items")
	{
		items.POST("", itemCtrl.CreateItem)
		items.GET("", itemCtrl.GetAllItems)
		items.GET("/:item_id", itemCtrl.GetItemByID)
		items.PUT("/:item_id", itemCtrl.UpdateItem)
		items.DELETE("/:item_id", strictLimit, itemCtrl.DeleteItem)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
		orders.PUT("/:order_id", orderCtrl.UpdateOrder)
		orders.DELETE("/:order_id", strictLimit, orderCtrl.DeleteOrder)
	}

	return r
}
