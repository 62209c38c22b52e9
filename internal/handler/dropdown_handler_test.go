package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/repository"
	"github.com/abyansyah052/deploytps/internal/service"
	"github.com/abyansyah052/deploytps/internal/testutil"
)

func setupDropdownRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	h := &DropdownHandler{
		dropdowns: service.NewDropdownService(repos.Dropdown, repos.Material),
	}

	r := testutil.SetupRouter()
	r.GET("/api/master/dropdowns", h.List)

	authorized := testutil.AuthGroup(r, "/api/master")
	authorized.POST("/dropdowns", h.Create)
	authorized.DELETE("/dropdowns", h.Delete)

	return r, db
}

func TestDropdownListSeedsDefaults(t *testing.T) {
	r, db := setupDropdownRouter(t)

	// A material value absent from the defaults must be backfilled.
	testutil.SeedMaterial(t, db, &entity.Material{
		KodeMaterial: "SAP-501",
		NamaMaterial: "SPREADER CABLE",
		Divisi:       entity.DivisionRTG,
		Kategori:     "GUDANG TIMUR",
	})

	w := testutil.DoRequest(r, http.MethodGet, "/api/master/dropdowns", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	body := testutil.ParseResponse(w)

	divisions, ok := body["divisions"].([]interface{})
	if !ok || len(divisions) == 0 {
		t.Fatalf("divisions missing: %s", w.Body.String())
	}
	found := map[string]bool{}
	for _, d := range divisions {
		found[d.(string)] = true
	}
	for _, want := range []string{"RTG", "CC", "ME", "LAIN"} {
		if !found[want] {
			t.Errorf("default division %s missing", want)
		}
	}

	storeRooms, _ := body["store_rooms"].([]interface{})
	hasBackfill := false
	for _, s := range storeRooms {
		if s == "GUDANG TIMUR" {
			hasBackfill = true
		}
	}
	if !hasBackfill {
		t.Errorf("store_rooms missing value synced from materials: %v", storeRooms)
	}

	machines, ok := body["machine_numbers"].(map[string]interface{})
	if !ok {
		t.Fatalf("machine_numbers missing: %s", w.Body.String())
	}
	for _, division := range []string{"RTG", "CC", "ME", "LAIN"} {
		if _, ok := machines[division]; !ok {
			t.Errorf("machine_numbers has no %s key", division)
		}
	}
}

func TestDropdownCreateAndDelete(t *testing.T) {
	r, _ := setupDropdownRouter(t)
	token := testutil.DefaultTestToken()

	payload := map[string]string{"type": "store_rooms", "value": "GUDANG BARU"}

	w := testutil.DoRequest(r, http.MethodPost, "/api/master/dropdowns", payload, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated create status = %d", w.Code)
	}

	w = testutil.DoRequest(r, http.MethodPost, "/api/master/dropdowns", payload, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	// Same type+value+division again conflicts.
	w = testutil.DoRequest(r, http.MethodPost, "/api/master/dropdowns", payload, token)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate create status = %d", w.Code)
	}

	// Same value under a different division is a distinct entry.
	w = testutil.DoRequest(r, http.MethodPost, "/api/master/dropdowns", map[string]string{
		"type": "machine_numbers", "value": "GUDANG BARU", "division": "RTG",
	}, token)
	if w.Code != http.StatusCreated {
		t.Errorf("scoped create status = %d, body = %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodDelete, "/api/master/dropdowns", payload, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body = %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodDelete, "/api/master/dropdowns", payload, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("double delete status = %d", w.Code)
	}

	// Missing type/value is a validation error.
	w = testutil.DoRequest(r, http.MethodPost, "/api/master/dropdowns", map[string]string{"type": "store_rooms"}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("valueless create status = %d", w.Code)
	}
}
