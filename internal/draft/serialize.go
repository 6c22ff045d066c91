package draft

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"draftd/internal/catalog"
)

// ContentFileName is the serialized draft file written inside the draft's
// directory.
const ContentFileName = "draft_content.json"

// inheritedDuration marks a segment or material whose length comes from the
// source material at render time rather than from the request.
const inheritedDuration = int64(-1)

type document struct {
	Version   int          `json:"version"`
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Canvas    canvasDoc    `json:"canvas"`
	Materials materialsDoc `json:"materials"`
	Tracks    []trackDoc   `json:"tracks"`
}

type canvasDoc struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type materialsDoc struct {
	Audios []materialDoc `json:"audios"`
	Videos []materialDoc `json:"videos"`
}

type materialDoc struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

type trackDoc struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          string       `json:"type"`
	RelativeIndex int          `json:"relative_index"`
	Segments      []segmentDoc `json:"segments"`
}

type segmentDoc struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	MaterialID string `json:"material_id,omitempty"`
	StartUS    int64  `json:"start_us"`
	DurationUS int64  `json:"duration_us"`

	Volume    *float64 `json:"volume,omitempty"`
	FadeInUS  *int64   `json:"fade_in_us,omitempty"`
	FadeOutUS *int64   `json:"fade_out_us,omitempty"`

	Intro          *effectDoc `json:"intro,omitempty"`
	Transition     *effectDoc `json:"transition,omitempty"`
	Alpha          *float64   `json:"alpha,omitempty"`
	Scale          *float64   `json:"scale,omitempty"`
	BackgroundBlur *float64   `json:"background_blur,omitempty"`

	Text *textDoc `json:"text,omitempty"`
}

type effectDoc struct {
	Name       string `json:"name"`
	ResourceID string `json:"resource_id"`
	Catalog    string `json:"catalog"`
}

type textDoc struct {
	Content          string      `json:"content"`
	FontName         string      `json:"font_name,omitempty"`
	FontResourceID   string      `json:"font_resource_id,omitempty"`
	Size             *float64    `json:"size,omitempty"`
	Color            *[3]float64 `json:"color,omitempty"`
	TransformY       *float64    `json:"transform_y,omitempty"`
	Animation        *effectDoc  `json:"animation,omitempty"`
	BubbleCategoryID string      `json:"bubble_category_id,omitempty"`
	BubbleResourceID string      `json:"bubble_resource_id,omitempty"`
	EffectResourceID string      `json:"effect_resource_id,omitempty"`
}

// Marshal serializes the draft deterministically: identifiers are assigned at
// creation time and track order is stable, so an unmodified draft always
// marshals to the same bytes.
func Marshal(d *Draft) ([]byte, error) {
	doc := document{
		Version: 1,
		ID:      d.ID,
		Name:    d.Name,
		Canvas:  canvasDoc{Width: d.Width, Height: d.Height},
		Materials: materialsDoc{
			Audios: []materialDoc{},
			Videos: []materialDoc{},
		},
		Tracks: make([]trackDoc, 0, len(d.Tracks)),
	}

	ordered := make([]*Track, len(d.Tracks))
	copy(ordered, d.Tracks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RelativeIndex < ordered[j].RelativeIndex
	})

	for _, track := range ordered {
		td := trackDoc{
			ID:            track.ID,
			Name:          track.Name,
			Type:          string(track.Type),
			RelativeIndex: track.RelativeIndex,
			Segments:      make([]segmentDoc, 0, len(track.Segments)),
		}
		for _, segment := range track.Segments {
			sd, err := encodeSegment(&doc.Materials, segment)
			if err != nil {
				return nil, err
			}
			td.Segments = append(td.Segments, sd)
		}
		doc.Tracks = append(doc.Tracks, td)
	}

	return json.MarshalIndent(doc, "", "  ")
}

func encodeSegment(materials *materialsDoc, segment Segment) (segmentDoc, error) {
	start, duration := segment.Placement()
	sd := segmentDoc{
		ID:         segment.SegmentID(),
		Kind:       string(segment.Kind()),
		StartUS:    int64(start),
		DurationUS: inheritedDuration,
	}
	if d, ok := duration.Get(); ok {
		sd.DurationUS = int64(d)
	}

	switch s := segment.(type) {
	case *AudioSegment:
		sd.MaterialID = s.MaterialID
		materials.Audios = append(materials.Audios, materialDoc{ID: s.MaterialID, Path: s.MaterialPath})
		if v, ok := s.Volume.Get(); ok {
			sd.Volume = &v
		}
		if d, ok := s.FadeIn.Get(); ok {
			us := int64(d)
			sd.FadeInUS = &us
		}
		if d, ok := s.FadeOut.Get(); ok {
			us := int64(d)
			sd.FadeOutUS = &us
		}
	case *VideoSegment:
		sd.MaterialID = s.MaterialID
		materials.Videos = append(materials.Videos, materialDoc{ID: s.MaterialID, Path: s.MaterialPath})
		if s.Intro != nil {
			sd.Intro = encodeEffect(s.Intro)
		}
		if s.Transition != nil {
			sd.Transition = encodeEffect(s.Transition)
		}
		if a, ok := s.Alpha.Get(); ok {
			sd.Alpha = &a
		}
		if sc, ok := s.Scale.Get(); ok {
			sd.Scale = &sc
		}
	case *StickerSegment:
		sd.MaterialID = s.MaterialID
		materials.Videos = append(materials.Videos, materialDoc{ID: s.MaterialID, Path: s.MaterialPath})
		if blur, ok := s.BackgroundBlur.Get(); ok {
			sd.BackgroundBlur = &blur
		}
	case *TextSegment:
		text := &textDoc{
			Content:          s.Text,
			BubbleCategoryID: s.BubbleCategoryID,
			BubbleResourceID: s.BubbleResourceID,
			EffectResourceID: s.EffectResourceID,
		}
		if s.Font != nil {
			text.FontName = s.Font.Name
			text.FontResourceID = s.Font.ResourceID
		}
		if size, ok := s.Size.Get(); ok {
			text.Size = &size
		}
		if rgb, ok := s.Color.Get(); ok {
			text.Color = &rgb
		}
		if y, ok := s.TransformY.Get(); ok {
			text.TransformY = &y
		}
		if s.Animation != nil {
			text.Animation = encodeEffect(s.Animation)
		}
		sd.Text = text
	default:
		return segmentDoc{}, fmt.Errorf("unsupported segment type %T", segment)
	}

	return sd, nil
}

func encodeEffect(entry *catalog.Entry) *effectDoc {
	return &effectDoc{
		Name:       entry.Name,
		ResourceID: entry.ResourceID,
		Catalog:    string(entry.Kind),
	}
}

// WriteFile marshals the draft and writes it atomically to
// <draft dir>/draft_content.json, creating the directory as needed.
// It returns the written path.
func WriteFile(d *Draft) (string, error) {
	data, err := Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshal draft %q: %w", d.Name, err)
	}
	return WriteContent(d.Dir, data)
}

// WriteContent writes already-marshaled draft content atomically into dir,
// creating the directory as needed. It exists so callers can marshal a draft
// while holding its lock and perform the file write after releasing it.
// Each call stages through its own temp file, so concurrent writers never
// share an intermediate path and the last rename wins with an intact file.
func WriteContent(dir string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create draft directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ContentFileName+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("stage draft file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write draft file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write draft file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("set draft file mode: %w", err)
	}

	target := filepath.Join(dir, ContentFileName)
	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("finalize draft file: %w", err)
	}
	return target, nil
}

// ListSaved returns the names of draft directories under folderPath that
// contain a serialized draft file, in lexical order.
func ListSaved(folderPath string) ([]string, error) {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, fmt.Errorf("read folder %q: %w", folderPath, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		content := filepath.Join(folderPath, entry.Name(), ContentFileName)
		if info, err := os.Stat(content); err == nil && info.Mode().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
