package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/seed"
	"github.com/pageza/recipes/backend/internal/server"
)

type recipe struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	CookingTime       string `json:"cooking_time"`
	ListOfIngredients string `json:"list_of_ingredients"`
	Description       string `json:"description"`
	Views             int    `json:"views"`
}

func setupDB(t *testing.T) (*config.Config, *gorm.DB) {
	cfg := &config.Config{
		ServerHost:     "127.0.0.1",
		ServerPort:     "0",
		DBDriver:       "sqlite",
		DBPath:         filepath.Join(t.TempDir(), "recipes.db"),
		DBMaxOpenConns: 4,
		DBMaxIdleConns: 4,
	}
	db, err := database.New(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return cfg, db
}

func startServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	cfg, db := setupDB(t)
	ts := httptest.NewServer(server.New(cfg, db, zap.NewNop()).Handler())
	t.Cleanup(ts.Close)
	return ts, db
}

func getJSON(t *testing.T, url string, out interface{}) int {
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestIntegrationSeedListAndView(t *testing.T) {
	ts, db := startServer(t)

	recipes, err := seed.LoadFile("../seed/testdata/recipes.yaml")
	if err != nil {
		t.Fatalf("failed to load seed file: %v", err)
	}
	if err := seed.Insert(context.Background(), db, zap.NewNop(), recipes); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	var list []recipe
	if code := getJSON(t, ts.URL+"/recipes/", &list); code != http.StatusOK {
		t.Fatalf("list failed: %d", code)
	}
	if len(list) != 3 || list[0].Name != "Borscht" || list[2].Name != "Omelette" {
		t.Fatalf("unexpected list order: %+v", list)
	}

	// 101 views puts the omelette above carbonara (100) but below borscht.
	omelette := list[2]
	for i := 0; i < 101; i++ {
		var got recipe
		if code := getJSON(t, fmt.Sprintf("%s/recipes/%d", ts.URL, omelette.ID), &got); code != http.StatusOK {
			t.Fatalf("get failed: %d", code)
		}
		if got.Views != i+1 {
			t.Fatalf("expected %d views, got %d", i+1, got.Views)
		}
	}

	list = nil
	getJSON(t, ts.URL+"/recipes/", &list)
	if list[0].Name != "Borscht" || list[1].Name != "Omelette" || list[2].Name != "Pasta Carbonara" {
		t.Fatalf("views did not reorder list: %+v", list)
	}
}

func TestIntegrationCreateAndFetch(t *testing.T) {
	ts, _ := startServer(t)

	body := `{"name":"Salad","cooking_time":"00:20:00","list_of_ingredients":"lettuce, tomato","description":"Fresh"}`
	resp, err := http.Post(ts.URL+"/recipes/", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create failed: %d", resp.StatusCode)
	}
	if id := resp.Header.Get("X-Request-ID"); id == "" {
		t.Fatalf("no request id returned")
	}

	var created recipe
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.ID == 0 || created.Views != 0 || created.CookingTime != "00:20:00" {
		t.Fatalf("unexpected created recipe: %+v", created)
	}

	var fetched recipe
	if code := getJSON(t, fmt.Sprintf("%s/recipes/%d", ts.URL, created.ID), &fetched); code != http.StatusOK {
		t.Fatalf("get failed: %d", code)
	}
	if fetched.Views != 1 || fetched.Name != "Salad" {
		t.Fatalf("unexpected fetched recipe: %+v", fetched)
	}

	if code := getJSON(t, ts.URL+"/recipes/9999", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics request failed: %v", err)
	}
	defer resp.Body.Close()
	metrics, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(metrics), "recipes_created_total 1") {
		t.Fatalf("created counter not exported")
	}
}
