package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"draftd/internal/logging"
	"draftd/internal/services"
)

// ErrUnknownName tags lookups that fail because no catalog entry matches.
// This is distinct from a malformed request: it depends on catalog content,
// not request shape.
var ErrUnknownName = errors.New("unknown effect name")

// Service answers catalog lookups from an in-memory copy of the store.
// Load populates it once at startup; afterwards it is read-only and safe for
// concurrent use without locking.
type Service struct {
	logger  *slog.Logger
	names   map[Kind][]string
	entries map[Kind]map[string]Entry
}

// NewService loads every catalog from the store into memory.
func NewService(ctx context.Context, store *Store, logger *slog.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("catalog service requires a store")
	}

	svc := &Service{
		logger:  logging.NewComponentLogger(logger, "catalog"),
		names:   make(map[Kind][]string, len(Kinds())),
		entries: make(map[Kind]map[string]Entry, len(Kinds())),
	}

	total := 0
	for _, kind := range Kinds() {
		list, err := store.ListEntries(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("load %s catalog: %w", kind, err)
		}
		names := make([]string, 0, len(list))
		byName := make(map[string]Entry, len(list))
		for _, entry := range list {
			names = append(names, entry.Name)
			byName[entry.Name] = entry
		}
		svc.names[kind] = names
		svc.entries[kind] = byName
		total += len(list)
	}

	svc.logger.Debug("catalogs loaded", slog.Int("entries", total))
	return svc, nil
}

// Lookup resolves a name within one catalog. The match is exact and
// case-sensitive.
func (s *Service) Lookup(kind Kind, name string) (Entry, error) {
	byName, ok := s.entries[kind]
	if !ok {
		return Entry{}, fmt.Errorf("unknown catalog kind %q", kind)
	}
	entry, ok := byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %w: no %s named %q",
			services.ErrValidation, ErrUnknownName, kind, name)
	}
	return entry, nil
}

// Names enumerates a catalog in its stable seed order.
func (s *Service) Names(kind Kind) ([]string, error) {
	names, ok := s.names[kind]
	if !ok {
		return nil, fmt.Errorf("unknown catalog kind %q", kind)
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}
