package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/fadebook/fadebook-api/internal/db"
	"github.com/fadebook/fadebook-api/internal/metrics"
	"github.com/fadebook/fadebook-api/internal/routes"
)

// setupRouter stands up the full HTTP stack on an in-memory database:
// real middleware, real usecases, real repositories.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	metrics.Register()

	log := zerolog.Nop()
	r := gin.New()
	routes.RegisterRoutes(r, gdb, &log)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}

func createService(t *testing.T, r *gin.Engine, name string, price float64) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/service", gin.H{
		"serviceName": name, "servicePrice": price,
	})
	mustStatus(t, w, http.StatusCreated)

	var resp struct {
		ServiceID uint `json:"serviceId"`
	}
	decode(t, w, &resp)
	return resp.ServiceID
}

func createBarber(t *testing.T, r *gin.Engine, username string, serviceIDs []uint) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/barber", gin.H{
		"username": username, "name": "Barber " + username, "serviceIds": serviceIDs,
	})
	mustStatus(t, w, http.StatusCreated)

	var resp struct {
		BarberID uint `json:"barberId"`
	}
	decode(t, w, &resp)
	return resp.BarberID
}

func signUpCustomer(t *testing.T, r *gin.Engine, username string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/customeraccount/signup", gin.H{
		"username": username, "name": "Customer " + username, "contactInfo": "555-0100",
	})
	mustStatus(t, w, http.StatusCreated)

	var resp struct {
		CustomerID uint `json:"customerId"`
	}
	decode(t, w, &resp)
	return resp.CustomerID
}
