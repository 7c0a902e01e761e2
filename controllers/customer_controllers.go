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

type CustomerController struct {
	Repo *repository.CustomerRepository
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{Repo: repository.NewCustomerRepository(db)}
}

type customerRequest struct {
	ID    *uint  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// GetAllCustomers
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Repo.List()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// CreateCustomer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var body customerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Repo.Create(body.Name, body.Phone)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// GetCustomerByID
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("customer_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer ID"))
		return
	}

	customer, err := cc.Repo.GetByID(uint(id))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// UpdateCustomer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("customer_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer ID"))
		return
	}

	var body customerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.ID != nil && *body.ID != uint(id) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer ID in path and body must match"))
		return
	}

	customer, err := cc.Repo.Update(uint(id), body.Name, body.Phone)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer updated successfully", customer)
}

// DeleteCustomer
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("customer_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer ID"))
		return
	}

	if err := cc.Repo.Delete(uint(id)); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer deleted successfully", gin.H{"customer_id": id})
}
