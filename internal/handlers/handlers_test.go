package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"velora_back_end/internal/database"
	"velora_back_end/internal/handlers"
	"velora_back_end/internal/routes"

	"velora_back_end/internal/repository"
)

// fakeUploader stands in for the asset store: it "hosts" whatever it is
// given under a predictable URL.
type fakeUploader struct{}

func (fakeUploader) UploadImage(_ context.Context, payload string) (string, error) {
	if payload == "broken" {
		return "", fmt.Errorf("upstream unavailable")
	}
	return "http://assets.test/products/uploaded.jpg", nil
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	h := handlers.New(repository.New(db), fakeUploader{}, nil, nil)

	r := gin.New()
	routes.RegisterRoutes(r, h)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signupAndLogin registers a user over HTTP and returns a usable token.
func signupAndLogin(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    email,
		"password": "password",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}

// createProduct creates a category and a product as admin, returning the
// product id.
func createProduct(t *testing.T, r *gin.Engine, adminToken, name string, price float64, stock int) float64 {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/categories", adminToken, gin.H{"name": name + " category"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	categoryID := decode(t, w)["data"].(map[string]any)["id"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/products", adminToken, gin.H{
		"name":       name,
		"price":      price,
		"stock":      stock,
		"categoryId": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["data"].(map[string]any)["id"].(float64)
}
