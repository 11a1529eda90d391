package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/countydirectory/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTownNotFound        = errors.New("town not found")
	ErrInvalidDirectoryRow = errors.New("invalid directory record")
)

// DirectoryService lists towns, schools, sports teams and food trucks.
type DirectoryService struct {
	db *gorm.DB
}

// DirectoryFilter narrows directory listings. Empty fields are ignored and
// name matches are case-insensitive.
type DirectoryFilter struct {
	Town            string
	District        string
	Sport           string
	Cuisine         string
	IncludeInactive bool
}

// NewDirectoryService creates a DirectoryService instance.
func NewDirectoryService(gdb *gorm.DB) *DirectoryService {
	return &DirectoryService{db: gdb}
}

// ListTowns returns towns ordered by name.
func (s *DirectoryService) ListTowns(filter DirectoryFilter) ([]db.Town, error) {
	var towns []db.Town
	query := s.applyStatus(s.db.Model(&db.Town{}), filter)
	if err := query.Order("name asc").Find(&towns).Error; err != nil {
		return nil, err
	}
	return towns, nil
}

// GetTown fetches a town by id.
func (s *DirectoryService) GetTown(id uint) (*db.Town, error) {
	var town db.Town
	if err := s.db.First(&town, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTownNotFound
		}
		return nil, err
	}
	return &town, nil
}

// ListSchools returns schools ordered by name.
func (s *DirectoryService) ListSchools(filter DirectoryFilter) ([]db.School, error) {
	var schools []db.School
	query := s.applyStatus(s.db.Model(&db.School{}), filter)
	query = whereName(query, "town", filter.Town)
	query = whereName(query, "district", filter.District)
	if err := query.Order("name asc").Find(&schools).Error; err != nil {
		return nil, err
	}
	return schools, nil
}

// ListSportsTeams returns teams ordered by name then sport.
func (s *DirectoryService) ListSportsTeams(filter DirectoryFilter) ([]db.SportsTeam, error) {
	var teams []db.SportsTeam
	query := s.applyStatus(s.db.Model(&db.SportsTeam{}), filter)
	query = whereName(query, "town", filter.Town)
	query = whereName(query, "sport", filter.Sport)
	if err := query.Order("name asc").Order("sport asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// ListFoodTrucks returns food trucks ordered by name.
func (s *DirectoryService) ListFoodTrucks(filter DirectoryFilter) ([]db.FoodTruck, error) {
	var trucks []db.FoodTruck
	query := s.applyStatus(s.db.Model(&db.FoodTruck{}), filter)
	query = whereName(query, "town", filter.Town)
	query = whereName(query, "cuisine", filter.Cuisine)
	if err := query.Order("name asc").Find(&trucks).Error; err != nil {
		return nil, err
	}
	return trucks, nil
}

// LinkTowns resolves the TownID of schools, teams and food trucks from their
// town name. It returns the distinct names that match no town.
func (s *DirectoryService) LinkTowns() ([]string, error) {
	var towns []db.Town
	if err := s.db.Select("id, name").Find(&towns).Error; err != nil {
		return nil, err
	}

	ids := make(map[string]uint, len(towns))
	for _, town := range towns {
		ids[normalizeName(town.Name)] = town.ID
	}

	unmatched := make(map[string]struct{})
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&db.School{}, &db.SportsTeam{}, &db.FoodTruck{}} {
			var names []string
			if err := tx.Model(model).Distinct().Pluck("town", &names).Error; err != nil {
				return err
			}
			for _, name := range names {
				key := normalizeName(name)
				if key == "" {
					continue
				}
				id, ok := ids[key]
				if !ok {
					unmatched[strings.TrimSpace(name)] = struct{}{}
					if err := tx.Model(model).Where("town = ?", name).Update("town_id", nil).Error; err != nil {
						return err
					}
					continue
				}
				if err := tx.Model(model).Where("town = ?", name).Update("town_id", id).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(unmatched))
	for name := range unmatched {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// SaveTown creates the town or updates the row with the same name.
func (s *DirectoryService) SaveTown(town *db.Town) (bool, error) {
	if err := checkRecord(town.Name, &town.Status); err != nil {
		return false, err
	}
	return upsertBy(s.db, town, "name = ?", town.Name)
}

// SaveSchool creates or updates a school keyed by name and district.
func (s *DirectoryService) SaveSchool(school *db.School) (bool, error) {
	if err := checkRecord(school.Name, &school.Status); err != nil {
		return false, err
	}
	return upsertBy(s.db, school, "name = ? AND district = ?", school.Name, school.District)
}

// SaveSportsTeam creates or updates a team keyed by name and sport.
func (s *DirectoryService) SaveSportsTeam(team *db.SportsTeam) (bool, error) {
	if err := checkRecord(team.Name, &team.Status); err != nil {
		return false, err
	}
	return upsertBy(s.db, team, "name = ? AND sport = ?", team.Name, team.Sport)
}

// SaveFoodTruck creates or updates a food truck keyed by name.
func (s *DirectoryService) SaveFoodTruck(truck *db.FoodTruck) (bool, error) {
	if err := checkRecord(truck.Name, &truck.Status); err != nil {
		return false, err
	}
	return upsertBy(s.db, truck, "name = ?", truck.Name)
}

func checkRecord(name string, status *string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDirectoryRow)
	}
	if *status == "" {
		*status = db.StatusActive
	}
	if !db.ValidStatus(*status) {
		return fmt.Errorf("%w: %s has unknown status %q", ErrInvalidDirectoryRow, name, *status)
	}
	return nil
}

// upsertBy inserts record unless a row matches the natural key, in which case
// every column except the gorm.Model bookkeeping is overwritten.
func upsertBy[T any](gdb *gorm.DB, record *T, query string, args ...any) (bool, error) {
	var existing T
	err := gdb.Where(query, args...).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return true, gdb.Create(record).Error
	case err != nil:
		return false, err
	}

	return false, gdb.Model(&existing).
		Select("*").
		Omit("id", "created_at", "deleted_at", "town_id").
		Updates(record).Error
}

func (s *DirectoryService) applyStatus(query *gorm.DB, filter DirectoryFilter) *gorm.DB {
	if filter.IncludeInactive {
		return query
	}
	return query.Where("status = ?", db.StatusActive)
}

func whereName(query *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return query
	}
	return query.Where("LOWER("+column+") = ?", strings.ToLower(value))
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
