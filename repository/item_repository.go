package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dosadiner/dosa-api/models"
	"github.com/dosadiner/dosa-api/utils"
	"github.com/dosadiner/dosa-api/validation"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Create(name string, price float64) (*models.Item, error) {
	if err := validation.ItemName(name); err != nil {
		return nil, err
	}
	if err := validation.Price(price); err != nil {
		return nil, err
	}

	var count int64
	if err := r.DB.Model(&models.Item{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.Conflictf("item name must be unique")
	}

	item := models.Item{Name: name, Price: price}
	if err := r.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("item not found")
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) List() ([]models.Item, error) {
	var items []models.Item
	if err := r.DB.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) Update(id uint, name string, price float64) (*models.Item, error) {
	item, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := validation.ItemName(name); err != nil {
		return nil, err
	}
	if err := validation.Price(price); err != nil {
		return nil, err
	}

	var count int64
	if err := r.DB.Model(&models.Item{}).
		Where("name = ? AND id <> ?", name, id).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.Conflictf("item name must be unique")
	}

	item.Name = name
	item.Price = price
	if err := r.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ItemRepository) Delete(id uint) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	var count int64
	if err := r.DB.Model(&models.OrderItem{}).Where("item_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return utils.Conflictf("cannot delete item that is used in existing orders")
	}

	return r.DB.Delete(&models.Item{}, id).Error
}
