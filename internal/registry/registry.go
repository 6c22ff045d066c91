package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"draftd/internal/draft"
	"draftd/internal/logging"
	"draftd/internal/services"
)

// Folder is a registered on-disk location that may contain drafts. It is
// immutable once registered and safe to return by value.
type Folder struct {
	ID   string
	Path string
}

// DraftInfo is a snapshot of a draft's identity; it carries no live
// references into the registry.
type DraftInfo struct {
	Name     string
	FolderID string
	Width    int
	Height   int
}

// Registry guards the folder and draft maps behind one mutex.
type Registry struct {
	logger *slog.Logger

	mu      sync.Mutex
	folders map[string]Folder
	drafts  map[string]*draft.Draft
}

// New constructs an empty registry.
func New(logger *slog.Logger) *Registry {
	return &Registry{
		logger:  logging.NewComponentLogger(logger, "registry"),
		folders: make(map[string]Folder),
		drafts:  make(map[string]*draft.Draft),
	}
}

// RegisterFolder records a validated folder path under a caller-chosen id.
// Registration never silently overwrites: a duplicate id is a conflict and
// leaves the existing registration intact.
func (r *Registry) RegisterFolder(id, path string) (Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.folders[id]; exists {
		return Folder{}, services.Wrap(services.ErrConflict, "registry", "register folder",
			fmt.Sprintf("folder id %q is already registered", id), nil)
	}

	folder := Folder{ID: id, Path: path}
	r.folders[id] = folder
	r.logger.Info("folder registered", slog.String(logging.FieldFolder, id), slog.String("path", path))
	return folder, nil
}

// Folder returns the registered folder for id.
func (r *Registry) Folder(id string) (Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder, ok := r.folders[id]
	if !ok {
		return Folder{}, services.Wrap(services.ErrNotFound, "registry", "get folder",
			fmt.Sprintf("folder %q not found", id), nil)
	}
	return folder, nil
}

// CreateDraft materializes a new empty draft under the given name. When a
// draft of that name already exists the call fails with a conflict unless
// allowReplace is set, in which case the prior entry is atomically replaced.
func (r *Registry) CreateDraft(folderID, name string, width, height int, allowReplace bool) (DraftInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder, ok := r.folders[folderID]
	if !ok {
		return DraftInfo{}, services.Wrap(services.ErrNotFound, "registry", "create draft",
			fmt.Sprintf("folder %q not found", folderID), nil)
	}

	if _, exists := r.drafts[name]; exists && !allowReplace {
		return DraftInfo{}, services.Wrap(services.ErrConflict, "registry", "create draft",
			fmt.Sprintf("draft %q already exists and allow_replace is false", name), nil)
	}

	d := draft.New(name, folderID, folder.Path, width, height)
	r.drafts[name] = d
	r.logger.Info("draft created",
		slog.String(logging.FieldDraft, name),
		slog.String(logging.FieldFolder, folderID),
		slog.Int("width", width),
		slog.Int("height", height))
	return infoOf(d), nil
}

// WithDraft runs fn on the named draft while holding the registry lock. The
// draft pointer is only valid inside fn and must not be retained; this is the
// sole mutation path for draft state after creation.
func (r *Registry) WithDraft(name string, fn func(*draft.Draft) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[name]
	if !ok {
		return services.Wrap(services.ErrNotFound, "registry", "get draft",
			fmt.Sprintf("draft %q not found", name), nil)
	}
	return fn(d)
}

// DraftInfo returns a snapshot of the named draft's identity.
func (r *Registry) DraftInfo(name string) (DraftInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[name]
	if !ok {
		return DraftInfo{}, services.Wrap(services.ErrNotFound, "registry", "get draft",
			fmt.Sprintf("draft %q not found", name), nil)
	}
	return infoOf(d), nil
}

// CloseDraft removes the named draft from the registry. The persisted
// artifact, if any, is left untouched.
func (r *Registry) CloseDraft(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[name]; !ok {
		return services.Wrap(services.ErrNotFound, "registry", "close draft",
			fmt.Sprintf("draft %q not found", name), nil)
	}
	delete(r.drafts, name)
	r.logger.Info("draft closed", slog.String(logging.FieldDraft, name))
	return nil
}

// ListDrafts returns the names of active drafts associated with the folder,
// in unspecified but stable order. The association is the one recorded at
// creation time.
func (r *Registry) ListDrafts(folderID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.folders[folderID]; !ok {
		return nil, services.Wrap(services.ErrNotFound, "registry", "list drafts",
			fmt.Sprintf("folder %q not found", folderID), nil)
	}

	names := make([]string, 0)
	for name, d := range r.drafts {
		if d.FolderID == folderID {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func infoOf(d *draft.Draft) DraftInfo {
	return DraftInfo{Name: d.Name, FolderID: d.FolderID, Width: d.Width, Height: d.Height}
}
