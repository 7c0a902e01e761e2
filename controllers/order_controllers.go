package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dosadiner/dosa-api/repository"
	"github.com/dosadiner/dosa-api/utils"
)

type OrderController struct {
	Repo *repository.OrderRepository
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Repo: repository.NewOrderRepository(db)}
}

type orderRequest struct {
	ID         *uint  `json:"id"`
	CustomerID uint   `json:"cust_id"`
	Notes      string `json:"notes"`
	Items      []uint `json:"items"`
}

// GetAllOrders -> list orders with resolved items
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Repo.List()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> validate customer + items, insert order and links atomically
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body orderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Repo.Create(body.CustomerID, body.Notes, body.Items)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order ID"))
		return
	}

	order, err := oc.Repo.GetByID(uint(id))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrder -> replace customer, notes and the whole item set
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order ID"))
		return
	}

	var body orderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.ID != nil && *body.ID != uint(id) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order ID in path and body must match"))
		return
	}

	order, err := oc.Repo.Update(uint(id), body.CustomerID, body.Notes, body.Items)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated successfully", order)
}

// DeleteOrder -> removes the order and its links, never the items
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order ID"))
		return
	}

	if err := oc.Repo.Delete(uint(id)); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted successfully", gin.H{"order_id": id})
}
