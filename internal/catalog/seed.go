package catalog

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed seed_data.toml
var seedData []byte

type seedEntry struct {
	Catalog    string `toml:"catalog"`
	Name       string `toml:"name"`
	ResourceID string `toml:"resource_id"`
}

type seedFile struct {
	Entries []seedEntry `toml:"entry"`
}

func loadSeedEntries() ([]Entry, error) {
	var parsed seedFile
	if err := toml.Unmarshal(seedData, &parsed); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Entries))
	for i, raw := range parsed.Entries {
		kind := Kind(raw.Catalog)
		if !kind.Valid() {
			return nil, fmt.Errorf("seed entry %d: unknown catalog %q", i, raw.Catalog)
		}
		if raw.Name == "" || raw.ResourceID == "" {
			return nil, fmt.Errorf("seed entry %d: name and resource_id are required", i)
		}
		entries = append(entries, Entry{Kind: kind, Name: raw.Name, ResourceID: raw.ResourceID})
	}
	return entries, nil
}
