package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dosadiner/dosa-api/controllers"
	"github.com/dosadiner/dosa-api/models"
	"github.com/dosadiner/dosa-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Customer{},
		&models.Item{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupCustomerRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	customerCtrl := controllers.NewCustomerController(db)
	router.GET("/customers", customerCtrl.GetAllCustomers)
	router.POST("/customers", customerCtrl.CreateCustomer)
	router.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	router.PUT("/customers/:customer_id", customerCtrl.UpdateCustomer)
	router.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCustomerCRUDOverHTTP(t *testing.T) {
	db := setupTestDB(t)
	router := setupCustomerRouter(db)

	// Create
	w := doJSON(t, router, "POST", "/customers", map[string]interface{}{
		"name":  "Priya Raman",
		"phone": "555-555-5555",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "data response must be a map")
	idFloat, ok := data["id"].(float64)
	require.True(t, ok, "customer id must be a number")
	customerID := int(idFloat)
	assert.Equal(t, "555-555-5555", data["phone"])

	// Get by ID returns the same phone string
	url := "/customers/" + strconv.Itoa(customerID)
	w = doJSON(t, router, "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeEnvelope(t, w)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "555-555-5555", data["phone"])

	// List
	w = doJSON(t, router, "GET", "/customers", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Update
	w = doJSON(t, router, "PUT", url, map[string]interface{}{
		"name":  "Priya R.",
		"phone": "555-555-5556",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete
	w = doJSON(t, router, "DELETE", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Gone
	w = doJSON(t, router, "GET", url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerValidationOverHTTP(t *testing.T) {
	db := setupTestDB(t)
	router := setupCustomerRouter(db)

	// Bad phone format
	w := doJSON(t, router, "POST", "/customers", map[string]interface{}{
		"name":  "Priya Raman",
		"phone": "5555555555",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Contains(t, resp["message"], "111-111-1111")

	// Duplicate phone
	w = doJSON(t, router, "POST", "/customers", map[string]interface{}{
		"name":  "Priya Raman",
		"phone": "555-555-5555",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, "POST", "/customers", map[string]interface{}{
		"name":  "Someone Else",
		"phone": "555-555-5555",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp = decodeEnvelope(t, w)
	assert.Contains(t, resp["message"], "already exists")

	// Body/path id mismatch on update
	w = doJSON(t, router, "PUT", "/customers/1", map[string]interface{}{
		"id":    2,
		"name":  "Priya Raman",
		"phone": "555-555-5555",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp = decodeEnvelope(t, w)
	assert.Contains(t, resp["message"], "must match")

	// Unknown id
	w = doJSON(t, router, "GET", "/customers/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
