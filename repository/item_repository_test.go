package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosadiner/dosa-api/utils"
)

func TestItemCreateAndGet(t *testing.T) {
	repo := NewItemRepository(newTestDB(t))

	created, err := repo.Create("Masala Dosa", 9.5)
	require.NoError(t, err)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Masala Dosa", got.Name)
	assert.Equal(t, 9.5, got.Price)
}

func TestItemIntegerPriceStoredAsFloat(t *testing.T) {
	repo := NewItemRepository(newTestDB(t))

	created, err := repo.Create("Filter Coffee", 10)
	require.NoError(t, err)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Price)
}

func TestItemNegativePriceRejected(t *testing.T) {
	repo := NewItemRepository(newTestDB(t))

	_, err := repo.Create("Masala Dosa", -1)
	assert.ErrorIs(t, err, utils.ErrValidation)

	items, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemDuplicateNameConflicts(t *testing.T) {
	repo := NewItemRepository(newTestDB(t))

	_, err := repo.Create("Masala Dosa", 9.5)
	require.NoError(t, err)

	_, err = repo.Create("Masala Dosa", 11.0)
	assert.ErrorIs(t, err, utils.ErrConflict)
	assert.Contains(t, err.Error(), "unique")
}

func TestItemUpdate(t *testing.T) {
	repo := NewItemRepository(newTestDB(t))

	created, err := repo.Create("Masala Dosa", 9.5)
	require.NoError(t, err)
	other, err := repo.Create("Plain Dosa", 7.0)
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, "Masala Dosa", 10.5)
	require.NoError(t, err)
	assert.Equal(t, 10.5, updated.Price)

	_, err = repo.Update(other.ID, "Masala Dosa", 7.0)
	assert.ErrorIs(t, err, utils.ErrConflict)

	_, err = repo.Update(other.ID, "Plain Dosa", -2)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = repo.Update(999, "Ghost Dosa", 1)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestItemDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)
	customerRepo := NewCustomerRepository(db)
	orderRepo := NewOrderRepository(db)

	customer, err := customerRepo.Create("Priya Raman", "555-555-5555")
	require.NoError(t, err)
	ordered, err := repo.Create("Masala Dosa", 9.5)
	require.NoError(t, err)
	spare, err := repo.Create("Plain Dosa", 7.0)
	require.NoError(t, err)
	_, err = orderRepo.Create(customer.ID, "", []uint{ordered.ID})
	require.NoError(t, err)

	err = repo.Delete(ordered.ID)
	assert.ErrorIs(t, err, utils.ErrConflict)
	assert.Contains(t, err.Error(), "used in existing orders")

	require.NoError(t, repo.Delete(spare.ID))
	_, err = repo.GetByID(spare.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
