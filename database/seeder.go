package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"github.com/dosadiner/dosa-api/models"
)

type seedItem struct {
	Price float64 `json:"price"`
}

type seedOrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type seedOrder struct {
	Timestamp int64           `json:"timestamp"`
	Notes     string          `json:"notes"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Items     []seedOrderItem `json:"items"`
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Seed populates the database from the JSON files in dir. It is a no-op
// when customers already exist, so repeated startups do not duplicate rows.
func Seed(db *gorm.DB, dir string) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Customers: phone -> name
	var customers map[string]string
	if err := readJSON(filepath.Join(dir, "customers.json"), &customers); err != nil {
		return fmt.Errorf("loading customers: %w", err)
	}
	for phone, name := range customers {
		customer := models.Customer{Name: name, Phone: phone}
		if err := db.Create(&customer).Error; err != nil {
			return fmt.Errorf("seeding customer %q: %w", phone, err)
		}
	}

	// Items: name -> {price}
	var items map[string]seedItem
	if err := readJSON(filepath.Join(dir, "items.json"), &items); err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	for name, it := range items {
		item := models.Item{Name: name, Price: it.Price}
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("seeding item %q: %w", name, err)
		}
	}

	// Orders reference customers by phone and items by name; items not in
	// items.json are created on the fly.
	var orders []seedOrder
	if err := readJSON(filepath.Join(dir, "example_orders.json"), &orders); err != nil {
		return fmt.Errorf("loading orders: %w", err)
	}
	for _, so := range orders {
		var customer models.Customer
		if err := db.Where("phone = ?", so.Phone).First(&customer).Error; err != nil {
			return fmt.Errorf("order references unknown customer %q: %w", so.Phone, err)
		}

		order := models.Order{
			CustomerID: customer.ID,
			Notes:      so.Notes,
			CreatedAt:  time.Unix(so.Timestamp, 0),
		}
		if err := db.Create(&order).Error; err != nil {
			return fmt.Errorf("seeding order: %w", err)
		}

		linked := make(map[uint]bool)
		for _, si := range so.Items {
			var item models.Item
			err := db.Where("name = ?", si.Name).First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				item = models.Item{Name: si.Name, Price: si.Price}
				err = db.Create(&item).Error
			}
			if err != nil {
				return fmt.Errorf("seeding order item %q: %w", si.Name, err)
			}

			if linked[item.ID] {
				continue
			}
			linked[item.ID] = true
			link := models.OrderItem{OrderID: order.ID, ItemID: item.ID}
			if err := db.Create(&link).Error; err != nil {
				return fmt.Errorf("seeding order link: %w", err)
			}
		}
	}

	return nil
}
