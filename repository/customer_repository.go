package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dosadiner/dosa-api/models"
	"github.com/dosadiner/dosa-api/utils"
	"github.com/dosadiner/dosa-api/validation"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(name, phone string) (*models.Customer, error) {
	if err := validation.CustomerName(name); err != nil {
		return nil, err
	}
	if err := validation.Phone(phone); err != nil {
		return nil, err
	}

	var count int64
	if err := r.DB.Model(&models.Customer{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.Conflictf("customer with this phone number already exists")
	}

	customer := models.Customer{Name: name, Phone: phone}
	if err := r.DB.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("customer not found")
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.DB.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) Update(id uint, name, phone string) (*models.Customer, error) {
	customer, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := validation.CustomerName(name); err != nil {
		return nil, err
	}
	if err := validation.Phone(phone); err != nil {
		return nil, err
	}

	// Uniqueness re-check skips the row's own phone value.
	var count int64
	if err := r.DB.Model(&models.Customer{}).
		Where("phone = ? AND id <> ?", phone, id).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.Conflictf("customer with this phone number already exists")
	}

	customer.Name = name
	customer.Phone = phone
	if err := r.DB.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) Delete(id uint) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	var count int64
	if err := r.DB.Model(&models.Order{}).Where("customer_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return utils.Conflictf("cannot delete customer with existing orders")
	}

	return r.DB.Delete(&models.Customer{}, id).Error
}
