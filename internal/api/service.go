package api

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"draftd/internal/catalog"
	"draftd/internal/config"
	"draftd/internal/draft"
	"draftd/internal/logging"
	"draftd/internal/pathcheck"
	"draftd/internal/registry"
	"draftd/internal/services"
	"draftd/internal/timecode"
)

// DraftService orchestrates the registry, catalog, path gate, and
// serializer. All expensive or fallible validation happens before the
// registry lock is taken; the locked callback only resolves the track and
// appends the already-built segment.
type DraftService struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *registry.Registry
	catalog  *catalog.Service

	saveMu sync.Mutex
	saving map[string]*sync.Mutex
}

// NewDraftService wires the service. All collaborators are required.
func NewDraftService(cfg *config.Config, reg *registry.Registry, cat *catalog.Service, logger *slog.Logger) *DraftService {
	return &DraftService{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "draft-service"),
		registry: reg,
		catalog:  cat,
		saving:   make(map[string]*sync.Mutex),
	}
}

// RegisterFolder validates the directory path and records the folder handle.
func (s *DraftService) RegisterFolder(req RegisterFolderRequest) (registry.Folder, error) {
	id := strings.TrimSpace(req.FolderID)
	if id == "" {
		return registry.Folder{}, services.Wrap(services.ErrValidation, "draft-service", "register folder",
			"folder_id is required", nil)
	}
	resolved, err := pathcheck.Resolve(req.FolderPath, pathcheck.KindDir)
	if err != nil {
		return registry.Folder{}, err
	}
	return s.registry.RegisterFolder(id, resolved)
}

// FolderDrafts lists draft names associated with the folder: every active
// draft created under it plus every saved draft directory found on disk.
// The two sets are merged and deduplicated.
func (s *DraftService) FolderDrafts(folderID string) ([]string, error) {
	folder, err := s.registry.Folder(folderID)
	if err != nil {
		return nil, err
	}
	active, err := s.registry.ListDrafts(folderID)
	if err != nil {
		return nil, err
	}
	saved, err := draft.ListSaved(folder.Path)
	if err != nil {
		return nil, services.Wrap(services.ErrInternal, "draft-service", "list drafts",
			fmt.Sprintf("scan folder %q", folder.Path), err)
	}

	seen := make(map[string]struct{}, len(active))
	merged := make([]string, 0, len(active)+len(saved))
	for _, name := range active {
		seen[name] = struct{}{}
		merged = append(merged, name)
	}
	for _, name := range saved {
		if _, ok := seen[name]; !ok {
			merged = append(merged, name)
		}
	}
	return merged, nil
}

// CreateDraft materializes a new draft, applying configured default
// dimensions when the caller omits them.
func (s *DraftService) CreateDraft(req CreateDraftRequest) (registry.DraftInfo, error) {
	name := strings.TrimSpace(req.DraftName)
	if name == "" {
		return registry.DraftInfo{}, services.Wrap(services.ErrValidation, "draft-service", "create draft",
			"draft_name is required", nil)
	}
	if strings.ContainsAny(name, "/\\") {
		return registry.DraftInfo{}, services.Wrap(services.ErrValidation, "draft-service", "create draft",
			fmt.Sprintf("draft name %q must not contain path separators", name), nil)
	}

	width := s.cfg.Drafts.DefaultWidth
	if req.Width != nil {
		width = *req.Width
	}
	height := s.cfg.Drafts.DefaultHeight
	if req.Height != nil {
		height = *req.Height
	}
	if width <= 0 || height <= 0 {
		return registry.DraftInfo{}, services.Wrap(services.ErrValidation, "draft-service", "create draft",
			fmt.Sprintf("dimensions %dx%d must be positive", width, height), nil)
	}

	return s.registry.CreateDraft(req.FolderID, name, width, height, req.AllowReplace)
}

// AddTrack appends a track to the named draft.
func (s *DraftService) AddTrack(draftName string, req AddTrackRequest) (trackName string, err error) {
	trackType, err := draft.ParseTrackType(req.TrackType)
	if err != nil {
		return "", err
	}
	if req.RelativeIndex != nil && *req.RelativeIndex < 0 {
		return "", services.Wrap(services.ErrValidation, "draft-service", "add track",
			fmt.Sprintf("relative_index %d must not be negative", *req.RelativeIndex), nil)
	}

	err = s.registry.WithDraft(draftName, func(d *draft.Draft) error {
		track, trackErr := d.AddTrack(trackType, draft.FromPtr(req.TrackName), draft.FromPtr(req.RelativeIndex))
		if trackErr != nil {
			return trackErr
		}
		trackName = track.Name
		return nil
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("track added",
		slog.String(logging.FieldDraft, draftName),
		slog.String("track", trackName),
		slog.String("type", string(trackType)))
	return trackName, nil
}

// AddAudioSegment validates and appends an audio segment. The material path
// and time strings are validated before the registry lock is taken.
func (s *DraftService) AddAudioSegment(draftName string, req AudioSegmentRequest) (string, error) {
	materialPath, err := pathcheck.Resolve(req.MaterialPath, pathcheck.KindFile)
	if err != nil {
		return "", err
	}
	base, err := s.buildBase(req.StartTime, req.Duration)
	if err != nil {
		return "", err
	}
	fadeIn, err := parseOptionalDuration(req.FadeIn, "fade_in")
	if err != nil {
		return "", err
	}
	fadeOut, err := parseOptionalDuration(req.FadeOut, "fade_out")
	if err != nil {
		return "", err
	}

	segment := &draft.AudioSegment{
		Base:         base,
		MaterialID:   draft.NewMaterialID(),
		MaterialPath: materialPath,
		Volume:       draft.FromPtr(req.Volume),
		FadeIn:       fadeIn,
		FadeOut:      fadeOut,
	}
	return s.commitSegment(draftName, req.TrackName, segment)
}

// AddVideoSegment validates and appends a video segment. Intro animation and
// transition are resolved against their catalogs independently; each is
// applied only when the caller supplied it.
func (s *DraftService) AddVideoSegment(draftName string, req VideoSegmentRequest) (string, error) {
	materialPath, err := pathcheck.Resolve(req.MaterialPath, pathcheck.KindFile)
	if err != nil {
		return "", err
	}
	base, err := s.buildBase(req.StartTime, req.Duration)
	if err != nil {
		return "", err
	}
	intro, err := s.lookupOptional(catalog.KindIntro, req.AnimationType)
	if err != nil {
		return "", err
	}
	transition, err := s.lookupOptional(catalog.KindTransition, req.TransitionType)
	if err != nil {
		return "", err
	}

	segment := &draft.VideoSegment{
		Base:         base,
		MaterialID:   draft.NewMaterialID(),
		MaterialPath: materialPath,
		Intro:        intro,
		Transition:   transition,
		Alpha:        draft.FromPtr(req.Alpha),
		Scale:        draft.FromPtr(req.Scale),
	}
	return s.commitSegment(draftName, req.TrackName, segment)
}

// AddStickerSegment validates and appends a sticker segment. Stickers ride
// video tracks; an omitted duration inherits the sticker's own length.
func (s *DraftService) AddStickerSegment(draftName string, req StickerSegmentRequest) (string, error) {
	materialPath, err := pathcheck.Resolve(req.MaterialPath, pathcheck.KindFile)
	if err != nil {
		return "", err
	}
	base, err := s.buildBase(req.StartTime, req.Duration)
	if err != nil {
		return "", err
	}

	segment := &draft.StickerSegment{
		Base:           base,
		MaterialID:     draft.NewMaterialID(),
		MaterialPath:   materialPath,
		BackgroundBlur: draft.FromPtr(req.BackgroundBlur),
	}
	return s.commitSegment(draftName, req.TrackName, segment)
}

// AddTextSegment validates and appends a text segment. Text has no source
// material to inherit a length from, so duration is required. The animation
// name is looked up in the text-outro catalog first and falls back to
// text-intro, so a single animation_type field addresses both.
func (s *DraftService) AddTextSegment(draftName string, req TextSegmentRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", services.Wrap(services.ErrValidation, "draft-service", "add text segment",
			"text is required", nil)
	}
	if req.Duration == nil {
		return "", services.Wrap(services.ErrValidation, "draft-service", "add text segment",
			"duration is required", nil)
	}
	base, err := s.buildBase(req.StartTime, req.Duration)
	if err != nil {
		return "", err
	}
	font, err := s.lookupOptional(catalog.KindFont, req.Font)
	if err != nil {
		return "", err
	}
	animation, err := s.lookupTextAnimation(req.AnimationType)
	if err != nil {
		return "", err
	}

	segment := &draft.TextSegment{
		Base:             base,
		Text:             req.Text,
		Font:             font,
		Size:             draft.FromPtr(req.Size),
		Color:            draft.FromPtr(req.Color),
		TransformY:       draft.FromPtr(req.TransformY),
		Animation:        animation,
		BubbleCategoryID: stringOr(req.BubbleCategoryID),
		BubbleResourceID: stringOr(req.BubbleResourceID),
		EffectResourceID: stringOr(req.EffectResourceID),
	}
	return s.commitSegment(draftName, req.TrackName, segment)
}

// SaveDraft serializes the draft's current state into its folder. Marshaling
// happens under the registry lock so the snapshot is consistent; the file
// write happens outside it, serialized per draft so concurrent saves of the
// same draft cannot interleave.
func (s *DraftService) SaveDraft(draftName string) (string, error) {
	var (
		data []byte
		dir  string
	)
	err := s.registry.WithDraft(draftName, func(d *draft.Draft) error {
		marshaled, marshalErr := draft.Marshal(d)
		if marshalErr != nil {
			return services.Wrap(services.ErrInternal, "draft-service", "save draft",
				fmt.Sprintf("marshal draft %q", draftName), marshalErr)
		}
		data = marshaled
		dir = d.Dir
		return nil
	})
	if err != nil {
		return "", err
	}

	lock := s.saveLock(draftName)
	lock.Lock()
	defer lock.Unlock()

	path, err := draft.WriteContent(dir, data)
	if err != nil {
		return "", services.Wrap(services.ErrInternal, "draft-service", "save draft",
			fmt.Sprintf("write draft %q", draftName), err)
	}
	s.logger.Info("draft saved", slog.String(logging.FieldDraft, draftName), slog.String("path", path))
	return path, nil
}

// CloseDraft drops the draft from the registry without touching any saved
// artifact on disk.
func (s *DraftService) CloseDraft(draftName string) error {
	if err := s.registry.CloseDraft(draftName); err != nil {
		return err
	}
	s.saveMu.Lock()
	delete(s.saving, draftName)
	s.saveMu.Unlock()
	return nil
}

// CatalogNames enumerates the ordered names of one effect catalog.
func (s *DraftService) CatalogNames(kind catalog.Kind) ([]string, error) {
	return s.catalog.Names(kind)
}

func (s *DraftService) commitSegment(draftName string, trackName *string, segment draft.Segment) (string, error) {
	if err := segment.Validate(); err != nil {
		return "", err
	}
	err := s.registry.WithDraft(draftName, func(d *draft.Draft) error {
		return d.AddSegment(draft.FromPtr(trackName), segment)
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("segment added",
		slog.String(logging.FieldDraft, draftName),
		slog.String("kind", string(segment.Kind())),
		slog.String("segment", segment.SegmentID()))
	return segment.SegmentID(), nil
}

// buildBase parses the start and optional duration strings. An empty start
// means zero; a nil duration inherits the material's natural length.
func (s *DraftService) buildBase(startTime string, duration *string) (draft.Base, error) {
	var start timecode.Duration
	if strings.TrimSpace(startTime) != "" {
		parsed, err := timecode.Parse(startTime)
		if err != nil {
			return draft.Base{}, err
		}
		start = parsed
	}

	length := draft.None[timecode.Duration]()
	if duration != nil {
		parsed, err := timecode.Parse(*duration)
		if err != nil {
			return draft.Base{}, err
		}
		length = draft.Some(parsed)
	}
	return draft.NewBase(start, length), nil
}

func (s *DraftService) lookupOptional(kind catalog.Kind, name *string) (*catalog.Entry, error) {
	if name == nil {
		return nil, nil
	}
	entry, err := s.catalog.Lookup(kind, *name)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// lookupTextAnimation resolves a text animation name, preferring the outro
// catalog and falling back to the intro catalog.
func (s *DraftService) lookupTextAnimation(name *string) (*catalog.Entry, error) {
	if name == nil {
		return nil, nil
	}
	entry, err := s.catalog.Lookup(catalog.KindTextOutro, *name)
	if err == nil {
		return &entry, nil
	}
	entry, err = s.catalog.Lookup(catalog.KindTextIntro, *name)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *DraftService) saveLock(draftName string) *sync.Mutex {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	lock, ok := s.saving[draftName]
	if !ok {
		lock = &sync.Mutex{}
		s.saving[draftName] = lock
	}
	return lock
}

func parseOptionalDuration(raw *string, field string) (draft.Opt[timecode.Duration], error) {
	if raw == nil {
		return draft.None[timecode.Duration](), nil
	}
	parsed, err := timecode.Parse(*raw)
	if err != nil {
		return draft.None[timecode.Duration](), fmt.Errorf("%s: %w", field, err)
	}
	return draft.Some(parsed), nil
}

func stringOr(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
