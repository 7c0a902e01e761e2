package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dosadiner/dosa-api/models"
	"github.com/dosadiner/dosa-api/utils"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// checkItemIDs verifies every id references an existing item. Missing ids
// are collected so the caller learns about all of them at once.
func checkItemIDs(tx *gorm.DB, itemIDs []uint) error {
	var existing []uint
	if err := tx.Model(&models.Item{}).Where("id IN ?", itemIDs).Pluck("id", &existing).Error; err != nil {
		return err
	}

	known := make(map[uint]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}

	var missing []uint
	for _, id := range itemIDs {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return utils.NotFoundf("invalid item IDs: %v", missing)
	}
	return nil
}

// dedupeIDs drops repeated ids, keeping first-seen order. Duplicates within
// one request collapse to a single order line.
func dedupeIDs(itemIDs []uint) []uint {
	seen := make(map[uint]bool, len(itemIDs))
	out := make([]uint, 0, len(itemIDs))
	for _, id := range itemIDs {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Create validates the customer and every item, then inserts the order and
// its item links as one transaction.
func (r *OrderRepository) Create(customerID uint, notes string, itemIDs []uint) (*models.Order, error) {
	if len(itemIDs) == 0 {
		return nil, utils.Validationf("order must contain at least one item")
	}

	var order models.Order
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundf("customer not found")
			}
			return err
		}

		if err := checkItemIDs(tx, itemIDs); err != nil {
			return err
		}

		order = models.Order{CustomerID: customerID, Notes: notes}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, itemID := range dedupeIDs(itemIDs) {
			link := models.OrderItem{OrderID: order.ID, ItemID: itemID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(order.ID)
}

func (r *OrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Customer").Preload("OrderItems.Item").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("order not found")
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.Preload("Customer").Preload("OrderItems.Item").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Update replaces the order's customer, notes and the whole item set,
// re-running the same checks as Create, in one transaction.
func (r *OrderRepository) Update(id, customerID uint, notes string, itemIDs []uint) (*models.Order, error) {
	if len(itemIDs) == 0 {
		return nil, utils.Validationf("order must contain at least one item")
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundf("order not found")
			}
			return err
		}

		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundf("customer not found")
			}
			return err
		}

		if err := checkItemIDs(tx, itemIDs); err != nil {
			return err
		}

		order.CustomerID = customerID
		order.Notes = notes
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for _, itemID := range dedupeIDs(itemIDs) {
			link := models.OrderItem{OrderID: id, ItemID: itemID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes the order together with its item links. The referenced
// customer and items are left alone.
func (r *OrderRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundf("order not found")
			}
			return err
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}
