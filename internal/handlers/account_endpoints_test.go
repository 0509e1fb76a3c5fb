package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndFollowLocation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/customeraccount/signup", gin.H{
		"username": "alice", "name": "Alice", "contactInfo": "555-0100",
	})
	mustStatus(t, w, http.StatusCreated)

	location := w.Header().Get("Location")
	require.NotEmpty(t, location)

	// The Location header resolves to the created customer.
	w = doJSON(t, r, http.MethodGet, location, nil)
	mustStatus(t, w, http.StatusOK)
	var customer map[string]any
	decode(t, w, &customer)
	assert.Equal(t, "alice", customer["username"])
}

func TestSignUp_MissingFields(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/customeraccount/signup", gin.H{
		"username": "alice",
	})
	mustStatus(t, w, http.StatusBadRequest)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	r := setupRouter(t)
	signUpCustomer(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/customeraccount/signup", gin.H{
		"username": "alice", "name": "Imposter", "contactInfo": "555-0200",
	})
	mustStatus(t, w, http.StatusConflict)
}

func TestLoginEndpoint(t *testing.T) {
	r := setupRouter(t)
	signUpCustomer(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/customeraccount/login", gin.H{"username": "alice"})
	mustStatus(t, w, http.StatusOK)
	var customer map[string]any
	decode(t, w, &customer)
	assert.Equal(t, "alice", customer["username"])

	w = doJSON(t, r, http.MethodPost, "/api/customeraccount/login", gin.H{"username": "nobody"})
	mustStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, http.MethodPost, "/api/customeraccount/login", gin.H{"username": ""})
	mustStatus(t, w, http.StatusBadRequest)
}

func TestUsernameExistsEndpoint(t *testing.T) {
	r := setupRouter(t)
	signUpCustomer(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/api/customeraccount/username-exists/alice", nil)
	mustStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"exists": true}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/customeraccount/username-exists/nobody", nil)
	mustStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"exists": false}`, w.Body.String())
}

func TestCustomerUpdateEndpoint(t *testing.T) {
	r := setupRouter(t)
	customerID := signUpCustomer(t, r, "alice")
	signUpCustomer(t, r, "bob")

	path := fmt.Sprintf("/api/customer/%d", customerID)

	w := doJSON(t, r, http.MethodPut, path, gin.H{
		"username": "alice-2", "name": "Alice", "contactInfo": "555-0100",
	})
	mustStatus(t, w, http.StatusOK)
	var customer map[string]any
	decode(t, w, &customer)
	assert.Equal(t, "alice-2", customer["username"])

	// Taking another customer's username is a conflict.
	w = doJSON(t, r, http.MethodPut, path, gin.H{
		"username": "bob", "name": "Alice", "contactInfo": "555-0100",
	})
	mustStatus(t, w, http.StatusConflict)
}

func TestCustomerList(t *testing.T) {
	r := setupRouter(t)
	signUpCustomer(t, r, "alice")
	signUpCustomer(t, r, "bob")

	w := doJSON(t, r, http.MethodGet, "/api/customer/customers", nil)
	mustStatus(t, w, http.StatusOK)
	var customers []map[string]any
	decode(t, w, &customers)
	assert.Len(t, customers, 2)
}
