package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/countydirectory/internal/db"
	"github.com/countydirectory/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func directoryFilter(c *gin.Context) service.DirectoryFilter {
	return service.DirectoryFilter{
		Town:            strings.TrimSpace(c.Query("town")),
		District:        strings.TrimSpace(c.Query("district")),
		Sport:           strings.TrimSpace(c.Query("sport")),
		Cuisine:         strings.TrimSpace(c.Query("cuisine")),
		IncludeInactive: c.Query("include_inactive") == "true",
	}
}

func townJSON(t db.Town) gin.H {
	return gin.H{
		"id":          t.ID,
		"name":        t.Name,
		"county":      t.County,
		"state":       t.State,
		"population":  t.Population,
		"description": t.Description,
		"lat":         t.Lat,
		"lng":         t.Lng,
		"status":      t.Status,
	}
}

// ListTowns 返回城镇列表
func (a *API) ListTowns(c *gin.Context) {
	towns, err := a.directory.ListTowns(directoryFilter(c))
	if err != nil {
		a.log.Error("list towns", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to list towns")
		return
	}

	response := make([]gin.H, 0, len(towns))
	for _, town := range towns {
		response = append(response, townJSON(town))
	}
	c.JSON(http.StatusOK, gin.H{"towns": response})
}

// GetTown returns one town by id.
func (a *API) GetTown(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid town id")
		return
	}

	town, err := a.directory.GetTown(id)
	if err != nil {
		if errors.Is(err, service.ErrTownNotFound) {
			respondError(c, http.StatusNotFound, "town not found")
			return
		}
		a.log.Error("get town", zap.Uint("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load town")
		return
	}

	c.JSON(http.StatusOK, gin.H{"town": townJSON(*town)})
}

// ListSchools returns schools, optionally filtered by town or district.
func (a *API) ListSchools(c *gin.Context) {
	schools, err := a.directory.ListSchools(directoryFilter(c))
	if err != nil {
		a.log.Error("list schools", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to list schools")
		return
	}

	response := make([]gin.H, 0, len(schools))
	for _, s := range schools {
		response = append(response, gin.H{
			"id":       s.ID,
			"name":     s.Name,
			"district": s.District,
			"level":    s.Level,
			"town":     s.Town,
			"town_id":  s.TownID,
			"address":  s.Address,
			"phone":    s.Phone,
			"website":  s.Website,
			"lat":      s.Lat,
			"lng":      s.Lng,
			"status":   s.Status,
		})
	}
	c.JSON(http.StatusOK, gin.H{"schools": response})
}

// ListSportsTeams returns teams, optionally filtered by town or sport.
func (a *API) ListSportsTeams(c *gin.Context) {
	teams, err := a.directory.ListSportsTeams(directoryFilter(c))
	if err != nil {
		a.log.Error("list sports teams", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to list sports teams")
		return
	}

	response := make([]gin.H, 0, len(teams))
	for _, team := range teams {
		response = append(response, gin.H{
			"id":      team.ID,
			"name":    team.Name,
			"sport":   team.Sport,
			"mascot":  team.Mascot,
			"school":  team.School,
			"league":  team.League,
			"town":    team.Town,
			"town_id": team.TownID,
			"status":  team.Status,
		})
	}
	c.JSON(http.StatusOK, gin.H{"sports_teams": response})
}

// ListFoodTrucks returns food trucks, optionally filtered by town or cuisine.
func (a *API) ListFoodTrucks(c *gin.Context) {
	trucks, err := a.directory.ListFoodTrucks(directoryFilter(c))
	if err != nil {
		a.log.Error("list food trucks", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to list food trucks")
		return
	}

	response := make([]gin.H, 0, len(trucks))
	for _, truck := range trucks {
		response = append(response, gin.H{
			"id":          truck.ID,
			"name":        truck.Name,
			"cuisine":     truck.Cuisine,
			"description": truck.Description,
			"town":        truck.Town,
			"town_id":     truck.TownID,
			"phone":       truck.Phone,
			"website":     truck.Website,
			"schedule":    truck.Schedule,
			"status":      truck.Status,
		})
	}
	c.JSON(http.StatusOK, gin.H{"food_trucks": response})
}
