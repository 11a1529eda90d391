package db

import "gorm.io/gorm"

// Status values shared by directory entities.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Town is a municipality or community in the county.
type Town struct {
	gorm.Model
	Name        string  `gorm:"size:120;uniqueIndex;not null" json:"name" yaml:"name"`
	County      string  `gorm:"size:120" json:"county" yaml:"county"`
	State       string  `gorm:"size:2" json:"state" yaml:"state"`
	Population  int     `json:"population" yaml:"population"`
	Description string  `gorm:"type:text" json:"description" yaml:"description"`
	Lat         float64 `json:"lat" yaml:"lat"`
	Lng         float64 `json:"lng" yaml:"lng"`
	Status      string  `gorm:"size:16;index;not null;default:active" json:"status" yaml:"status"`
}

// School is a public or private school. Town and District are display names;
// TownID is filled in when Town matches a Town row.
type School struct {
	gorm.Model
	Name     string  `gorm:"size:160;not null;uniqueIndex:idx_school_name_district" json:"name" yaml:"name"`
	District string  `gorm:"size:160;index;uniqueIndex:idx_school_name_district" json:"district" yaml:"district"`
	Level    string  `gorm:"size:32" json:"level" yaml:"level"`
	Town     string  `gorm:"size:120;index" json:"town" yaml:"town"`
	TownID   *uint   `gorm:"index" json:"town_id,omitempty" yaml:"-"`
	Address  string  `json:"address" yaml:"address"`
	Phone    string  `gorm:"size:32" json:"phone" yaml:"phone"`
	Website  string  `json:"website" yaml:"website"`
	Lat      float64 `json:"lat" yaml:"lat"`
	Lng      float64 `json:"lng" yaml:"lng"`
	Status   string  `gorm:"size:16;index;not null;default:active" json:"status" yaml:"status"`
}

// SportsTeam is a school or community team.
type SportsTeam struct {
	gorm.Model
	Name   string `gorm:"size:160;not null;uniqueIndex:idx_team_name_sport" json:"name" yaml:"name"`
	Sport  string `gorm:"size:64;index;uniqueIndex:idx_team_name_sport" json:"sport" yaml:"sport"`
	Mascot string `gorm:"size:64" json:"mascot" yaml:"mascot"`
	School string `gorm:"size:160" json:"school" yaml:"school"`
	League string `gorm:"size:120" json:"league" yaml:"league"`
	Town   string `gorm:"size:120;index" json:"town" yaml:"town"`
	TownID *uint  `gorm:"index" json:"town_id,omitempty" yaml:"-"`
	Status string `gorm:"size:16;index;not null;default:active" json:"status" yaml:"status"`
}

// FoodTruck is a mobile food vendor that regularly parks in the county.
type FoodTruck struct {
	gorm.Model
	Name        string `gorm:"size:160;uniqueIndex;not null" json:"name" yaml:"name"`
	Cuisine     string `gorm:"size:64;index" json:"cuisine" yaml:"cuisine"`
	Description string `gorm:"type:text" json:"description" yaml:"description"`
	Town        string `gorm:"size:120;index" json:"town" yaml:"town"`
	TownID      *uint  `gorm:"index" json:"town_id,omitempty" yaml:"-"`
	Phone       string `gorm:"size:32" json:"phone" yaml:"phone"`
	Website     string `json:"website" yaml:"website"`
	Schedule    string `json:"schedule" yaml:"schedule"`
	Status      string `gorm:"size:16;index;not null;default:active" json:"status" yaml:"status"`
}

// ValidStatus reports whether status is a known directory status.
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}
