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

type ItemController struct {
	Repo *repository.ItemRepository
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{Repo: repository.NewItemRepository(db)}
}

type itemRequest struct {
	ID    *uint   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// GetAllItems
func (ic *ItemController) GetAllItems(c *gin.Context) {
	items, err := ic.Repo.List()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of items", items)
}

// CreateItem
func (ic *ItemController) CreateItem(c *gin.Context) {
	var body itemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := ic.Repo.Create(body.Name, body.Price)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Item created", item)
}

// GetItemByID
func (ic *ItemController) GetItemByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item ID"))
		return
	}

	item, err := ic.Repo.GetByID(uint(id))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item detail", item)
}

// UpdateItem
func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item ID"))
		return
	}

	var body itemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.ID != nil && *body.ID != uint(id) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("item ID in path and body must match"))
		return
	}

	item, err := ic.Repo.Update(uint(id), body.Name, body.Price)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item updated successfully", item)
}

// DeleteItem
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item ID"))
		return
	}

	if err := ic.Repo.Delete(uint(id)); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item deleted successfully", gin.H{"item_id": id})
}
