// Package csvparser ingests worldcities-style CSV datasets into a location
// registry. It is the data-loading collaborator of the core: it owns the file
// format, the registry owns the invariants.
package csvparser

import (
	"encoding/csv"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/util"
)

// Record is one parsed dataset row, still in raw string form. The registry
// does the numeric conversion so a malformed coordinate surfaces as its
// ParseError.
type Record struct {
	City    string
	Lat     string
	Lng     string
	Country string
	ISO3    string
	Capital string
	ID      string
}

var requiredColumns = []string{"lat", "lng", "country", "iso3", "capital", "id"}

// Parse reads a CSV stream whose first row names the columns. The city name
// column may be either "city_ascii" (worldcities) or "city".
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "reading csv header")
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	cityCol, ok := col["city_ascii"]
	if !ok {
		if cityCol, ok = col["city"]; !ok {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"csv header misses a city name column")
		}
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"csv header misses column %q", name)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "reading csv row")
		}
		records = append(records, Record{
			City:    row[cityCol],
			Lat:     row[col["lat"]],
			Lng:     row[col["lng"]],
			Country: row[col["country"]],
			ISO3:    row[col["iso3"]],
			Capital: row[col["capital"]],
			ID:      row[col["id"]],
		})
	}
	return records, nil
}

// Load registers every record's country (on first sight) and city into the
// registry, in file order.
func Load(r io.Reader, registry *location.Registry) error {
	records, err := Parse(r)
	if err != nil {
		return err
	}

	for _, record := range records {
		if _, ok := registry.GetCountry(record.Country); !ok {
			if _, err := registry.RegisterCountry(record.Country, record.ISO3); err != nil {
				return err
			}
		}
		if _, err := registry.RegisterCity(record.City, record.Lat, record.Lng,
			record.Country, record.Capital, record.ID); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile ingests a dataset file into the registry.
func LoadFile(path string, registry *location.Registry, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return util.WrapErrorf(err, util.ErrNotFound, "opening dataset %q", path)
	}
	defer f.Close()

	if err := Load(f, registry); err != nil {
		return err
	}
	log.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("countries", len(registry.Countries())),
		zap.Int("cities", registry.NumCities()))
	return nil
}
