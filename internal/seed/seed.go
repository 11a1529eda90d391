package seed

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/countydirectory/internal/content"
	"github.com/countydirectory/internal/db"
	"github.com/countydirectory/internal/service"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed data/*.yaml data/pages/*.yaml
var dataFS embed.FS

// Dataset is the full fixture set loaded from YAML.
type Dataset struct {
	Towns       []db.Town
	Schools     []db.School
	SportsTeams []db.SportsTeam
	FoodTrucks  []db.FoodTruck
	Pages       []content.Document
}

// Counts tracks how many rows a run created and updated.
type Counts struct {
	Created int
	Updated int
}

func (c *Counts) add(created bool) {
	if created {
		c.Created++
		return
	}
	c.Updated++
}

// Result summarizes a seed run.
type Result struct {
	Towns          Counts
	Schools        Counts
	SportsTeams    Counts
	FoodTrucks     Counts
	Pages          Counts
	UnmatchedTowns []string
}

// Load parses the embedded fixtures.
func Load() (*Dataset, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadFS parses fixtures laid out like the embedded data directory:
// towns.yaml, schools.yaml, sports_teams.yaml, food_trucks.yaml and one file
// per page under pages/.
func LoadFS(fsys fs.FS) (*Dataset, error) {
	var ds Dataset
	files := []struct {
		name string
		dst  any
	}{
		{"towns.yaml", &ds.Towns},
		{"schools.yaml", &ds.Schools},
		{"sports_teams.yaml", &ds.SportsTeams},
		{"food_trucks.yaml", &ds.FoodTrucks},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	pageFiles, err := fs.Glob(fsys, "pages/*.yaml")
	if err != nil {
		return nil, err
	}
	slices.Sort(pageFiles)
	for _, name := range pageFiles {
		var doc content.Document
		if err := decodeFile(fsys, name, &doc); err != nil {
			return nil, err
		}
		ds.Pages = append(ds.Pages, doc)
	}

	return &ds, nil
}

// ValidatePages checks every page fixture and reports all failures keyed by slug.
func (ds *Dataset) ValidatePages() error {
	var errs []error
	for _, doc := range ds.Pages {
		if _, err := content.Validate(doc); err != nil {
			errs = append(errs, fmt.Errorf("page %q: %w", doc.Slug, err))
		}
	}
	return errors.Join(errs...)
}

// Run writes ds into gdb. Rows are matched on their natural keys, so running
// it again updates in place instead of duplicating.
func Run(gdb *gorm.DB, ds *Dataset, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := ds.ValidatePages(); err != nil {
		return nil, err
	}

	directory := service.NewDirectoryService(gdb)
	pages := service.NewPageService(gdb)
	result := &Result{}

	for i := range ds.Towns {
		created, err := directory.SaveTown(&ds.Towns[i])
		if err != nil {
			return nil, fmt.Errorf("seed town %q: %w", ds.Towns[i].Name, err)
		}
		result.Towns.add(created)
	}
	for i := range ds.Schools {
		created, err := directory.SaveSchool(&ds.Schools[i])
		if err != nil {
			return nil, fmt.Errorf("seed school %q: %w", ds.Schools[i].Name, err)
		}
		result.Schools.add(created)
	}
	for i := range ds.SportsTeams {
		created, err := directory.SaveSportsTeam(&ds.SportsTeams[i])
		if err != nil {
			return nil, fmt.Errorf("seed team %q: %w", ds.SportsTeams[i].Name, err)
		}
		result.SportsTeams.add(created)
	}
	for i := range ds.FoodTrucks {
		created, err := directory.SaveFoodTruck(&ds.FoodTrucks[i])
		if err != nil {
			return nil, fmt.Errorf("seed food truck %q: %w", ds.FoodTrucks[i].Name, err)
		}
		result.FoodTrucks.add(created)
	}

	unmatched, err := directory.LinkTowns()
	if err != nil {
		return nil, fmt.Errorf("link towns: %w", err)
	}
	result.UnmatchedTowns = unmatched
	for _, name := range unmatched {
		log.Warn("directory record references unknown town", zap.String("town", name))
	}

	for _, doc := range ds.Pages {
		_, created, err := pages.Upsert(doc)
		if err != nil {
			return nil, fmt.Errorf("seed page %q: %w", doc.Slug, err)
		}
		result.Pages.add(created)
	}

	log.Info("seed complete",
		zap.Int("towns", len(ds.Towns)),
		zap.Int("schools", len(ds.Schools)),
		zap.Int("sports_teams", len(ds.SportsTeams)),
		zap.Int("food_trucks", len(ds.FoodTrucks)),
		zap.Int("pages_created", result.Pages.Created),
		zap.Int("pages_updated", result.Pages.Updated),
	)
	return result, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", path.Base(name), err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
