package memory

import (
	_ "embed"
	"fmt"
	"os"
	"storefront/internal/domain"

	"github.com/goccy/go-json"
)

//go:embed seed_items.json
var embeddedSeed []byte

// LoadSeed decodes the catalog from path, or from the embedded seed when path
// is empty. Items are validated so the catalog can be trusted afterwards.
func LoadSeed(path string) ([]domain.Item, error) {
	data := embeddedSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		data = b
	}
	return DecodeSeed(data)
}

func DecodeSeed(data []byte) ([]domain.Item, error) {
	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("catalog item %d: missing id", i)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("catalog item %q: duplicate id", it.ID)
		}
		seen[it.ID] = struct{}{}
		if it.Price < 0 {
			return nil, fmt.Errorf("catalog item %q: negative price", it.ID)
		}
		if !domain.IsValidCategory(it.Category) {
			return nil, fmt.Errorf("catalog item %q: unknown category %q", it.ID, it.Category)
		}
	}
	return items, nil
}
