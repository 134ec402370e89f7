package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/internal/metrics"
	"github.com/pageza/recipes/backend/internal/middleware"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRecipeTestRouter serves the recipe routes backed by a real SQLite
// database.
func setupRecipeTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testhelpers.SetupTestDatabase(t)
	recipeService := service.NewRecipeService(db, zap.NewNop(), metrics.New(prometheus.NewRegistry()))
	return newTestRouter(service.IRecipeService(recipeService)), db
}

func newTestRouter(recipes service.IRecipeService) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(zap.NewNop()))
	NewRecipeHandler(recipes, zap.NewNop()).RegisterRoutes(router)
	return router
}

// PerformRequest is a helper function to make HTTP requests in tests. A
// string body is sent verbatim, anything else is JSON encoded.
func PerformRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, err := json.Marshal(b)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

type recipeJSON struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	CookingTime       string `json:"cooking_time"`
	ListOfIngredients string `json:"list_of_ingredients"`
	Description       string `json:"description"`
	Views             int    `json:"views"`
}

func validRecipeBody() map[string]interface{} {
	return map[string]interface{}{
		"name":                "Salad",
		"cooking_time":        "00:20:00",
		"list_of_ingredients": "lettuce, tomato",
		"description":         "Fresh",
	}
}
