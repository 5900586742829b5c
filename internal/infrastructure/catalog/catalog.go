// Package catalog loads the static resource catalog. The catalog is read once
// at startup and treated as immutable for the life of the process.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/campuscompass/guidance-system/internal/core/domain"
)

// Load reads and decodes the resource catalog from a JSON file.
func Load(path string) ([]domain.Resource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a JSON catalog and rejects entries without an id or title,
// which would be unusable for rating and display. IDs end up as MongoDB
// ratings map keys, so "." and "$" are not allowed in them.
func Parse(raw []byte) ([]domain.Resource, error) {
	var resources []domain.Resource
	if err := json.Unmarshal(raw, &resources); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	for i, r := range resources {
		if r.ID == "" || r.Title == "" {
			return nil, fmt.Errorf("catalog: entry %d is missing id or title", i)
		}
		if strings.ContainsAny(r.ID, ".$") {
			return nil, fmt.Errorf("catalog: entry %d has invalid id %q", i, r.ID)
		}
	}
	return resources, nil
}
