package handler

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/countydirectory/internal/db"
	"github.com/gin-gonic/gin"
)

func seedDirectoryRows(t *testing.T, api *API) {
	t.Helper()

	rows := []interface{}{
		&db.Town{Name: "Corsicana", County: "Navarro", State: "TX", Population: 25109, Status: db.StatusActive},
		&db.Town{Name: "Kerens", County: "Navarro", State: "TX", Population: 1573, Status: db.StatusActive},
		&db.Town{Name: "Retreat", County: "Navarro", State: "TX", Population: 370, Status: db.StatusInactive},
		&db.School{Name: "Corsicana High School", District: "Corsicana ISD", Level: "high", Town: "Corsicana", Status: db.StatusActive},
		&db.School{Name: "Kerens School", District: "Kerens ISD", Level: "k-12", Town: "Kerens", Status: db.StatusActive},
		&db.SportsTeam{Name: "Tigers", Sport: "football", School: "Corsicana High School", Town: "Corsicana", Status: db.StatusActive},
		&db.SportsTeam{Name: "Tigers", Sport: "baseball", School: "Corsicana High School", Town: "Corsicana", Status: db.StatusActive},
		&db.FoodTruck{Name: "Taco Stop", Cuisine: "mexican", Town: "Corsicana", Status: db.StatusActive},
	}
	for _, row := range rows {
		if err := api.DB().Create(row).Error; err != nil {
			t.Fatalf("failed to seed %T: %v", row, err)
		}
	}
}

func TestListTownsSkipsInactive(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()
	seedDirectoryRows(t, api)

	resp := decodeBody(t, performJSON(api.ListTowns, http.MethodGet, "/api/towns", ""))
	towns := resp["towns"].([]any)
	if len(towns) != 2 {
		t.Fatalf("expected 2 active towns, got %d", len(towns))
	}

	resp = decodeBody(t, performJSON(api.ListTowns, http.MethodGet, "/api/towns?include_inactive=true", ""))
	if towns := resp["towns"].([]any); len(towns) != 3 {
		t.Fatalf("expected 3 towns including inactive, got %d", len(towns))
	}
}

func TestGetTown(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()
	seedDirectoryRows(t, api)

	var town db.Town
	if err := api.DB().Where("name = ?", "Kerens").First(&town).Error; err != nil {
		t.Fatalf("failed to load town: %v", err)
	}

	w := performJSON(api.GetTown, http.MethodGet, "/api/towns/x", "", gin.Param{Key: "id", Value: "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad id, got %d", w.Code)
	}

	w = performJSON(api.GetTown, http.MethodGet, "/api/towns/9999", "", gin.Param{Key: "id", Value: "9999"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	w = performJSON(api.GetTown, http.MethodGet, "/api/towns/1", "", gin.Param{Key: "id", Value: strconv.FormatUint(uint64(town.ID), 10)})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	got := decodeBody(t, w)["town"].(map[string]any)
	if got["name"] != "Kerens" || got["population"] != float64(1573) {
		t.Fatalf("unexpected town %v", got)
	}
}

func TestDirectoryFilters(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()
	seedDirectoryRows(t, api)

	tests := []struct {
		name   string
		handle gin.HandlerFunc
		target string
		key    string
		want   int
	}{
		{name: "schools by town", handle: api.ListSchools, target: "/api/schools?town=corsicana", key: "schools", want: 1},
		{name: "schools by district", handle: api.ListSchools, target: "/api/schools?district=Kerens%20ISD", key: "schools", want: 1},
		{name: "all schools", handle: api.ListSchools, target: "/api/schools", key: "schools", want: 2},
		{name: "teams by sport", handle: api.ListSportsTeams, target: "/api/sports-teams?sport=football", key: "sports_teams", want: 1},
		{name: "teams by town", handle: api.ListSportsTeams, target: "/api/sports-teams?town=Corsicana", key: "sports_teams", want: 2},
		{name: "food trucks by town", handle: api.ListFoodTrucks, target: "/api/food-trucks?town=Kerens", key: "food_trucks", want: 0},
		{name: "food trucks by cuisine", handle: api.ListFoodTrucks, target: "/api/food-trucks?cuisine=mexican", key: "food_trucks", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(tt.handle, http.MethodGet, tt.target, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			items := decodeBody(t, w)[tt.key].([]any)
			if len(items) != tt.want {
				t.Fatalf("expected %d %s, got %d", tt.want, tt.key, len(items))
			}
		})
	}
}
