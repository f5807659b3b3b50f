package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"minicrm/internal/database"
	"minicrm/internal/models"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestAppStartup(t *testing.T) {
	log.SetOutput(io.Discard)

	db, err := database.Connect("sqlite", "file:main_test?mode=memory&cache=shared")
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, database.Migrate(db))
	assert.NoError(t, database.Seed(db))
	// Seeding again must not duplicate data.
	assert.NoError(t, database.Seed(db))

	app := buildApp(db, nil, "test_jwt_secret", false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodGet, "/customers", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var customers []models.Customer
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&customers))
	resp.Body.Close()
	assert.Len(t, customers, 3)

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	resp.Body.Close()
	assert.Len(t, products, 5)
}
