package repositories

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"transit/internal/domain"
	"transit/internal/domain/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the fixed data set behind the screens. It is read-only once
// loaded and safe to share between requests.
type Catalog struct {
	Buses     []models.BusOption       `yaml:"buses"`
	Tracking  models.BusLocation       `yaml:"tracking"`
	Timetable []models.BusSearchResult `yaml:"timetable"`
	Tickets   []models.Ticket          `yaml:"tickets"`
	Menu      []models.MenuItem        `yaml:"menu"`
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the embedded catalog. The embedded document is
// compiled into the binary, so a parse failure is a build defect.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := ParseCatalog(defaultCatalogYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// ParseCatalog decodes a catalog document and checks the fields the screens
// depend on.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Buses) == 0 {
		return nil, fmt.Errorf("catalog has no buses")
	}
	seen := make(map[int]bool, len(c.Timetable))
	for _, entry := range c.Timetable {
		if seen[entry.ID] {
			return nil, fmt.Errorf("catalog timetable id %d is duplicated", entry.ID)
		}
		seen[entry.ID] = true
	}
	for _, t := range c.Tickets {
		if t.Status != models.TicketUpcoming && t.Status != models.TicketCompleted {
			return nil, fmt.Errorf("catalog ticket %s has unknown status %q", t.ID, t.Status)
		}
	}
	return &c, nil
}

// LoadCatalogFile reads a catalog document from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// CatalogRepository hands out copies of catalog data so callers can never
// mutate the shared set. A zero value reads the embedded catalog.
type CatalogRepository struct {
	Catalog *Catalog
}

func (r CatalogRepository) catalog() *Catalog {
	if r.Catalog != nil {
		return r.Catalog
	}
	return DefaultCatalog()
}

func (r CatalogRepository) BusOptions() []models.BusOption {
	return append([]models.BusOption(nil), r.catalog().Buses...)
}

// BusOption looks a wizard bus up by its display name.
func (r CatalogRepository) BusOption(name string) (models.BusOption, bool) {
	for _, b := range r.catalog().Buses {
		if b.Name == name {
			return b, true
		}
	}
	return models.BusOption{}, false
}

func (r CatalogRepository) Tracking() models.BusLocation {
	return r.catalog().Tracking
}

func (r CatalogRepository) Timetable() []models.BusSearchResult {
	return append([]models.BusSearchResult(nil), r.catalog().Timetable...)
}

func (r CatalogRepository) TimetableByID(id int) (models.BusSearchResult, error) {
	for _, entry := range r.catalog().Timetable {
		if entry.ID == id {
			return entry, nil
		}
	}
	return models.BusSearchResult{}, domain.NotFoundError{Resource: fmt.Sprintf("timetable entry %d", id)}
}

func (r CatalogRepository) Tickets() []models.Ticket {
	return append([]models.Ticket(nil), r.catalog().Tickets...)
}

func (r CatalogRepository) Menu() []models.MenuItem {
	return append([]models.MenuItem(nil), r.catalog().Menu...)
}
