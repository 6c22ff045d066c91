package api

// Request payloads accepted by DraftService. Pointer fields are tri-state:
// nil means the caller omitted the field, a non-nil pointer to the zero value
// is an explicit request for that value.

// RegisterFolderRequest binds a caller-chosen id to an existing directory.
type RegisterFolderRequest struct {
	FolderID   string `json:"folder_id"`
	FolderPath string `json:"folder_path"`
}

// CreateDraftRequest materializes a new draft inside a registered folder.
type CreateDraftRequest struct {
	FolderID     string `json:"folder_id"`
	DraftName    string `json:"draft_name"`
	Width        *int   `json:"width,omitempty"`
	Height       *int   `json:"height,omitempty"`
	AllowReplace bool   `json:"allow_replace,omitempty"`
}

// AddTrackRequest appends a track to a draft.
type AddTrackRequest struct {
	TrackType     string  `json:"track_type"`
	TrackName     *string `json:"track_name,omitempty"`
	RelativeIndex *int    `json:"relative_index,omitempty"`
}

// AudioSegmentRequest places an audio material on a track.
type AudioSegmentRequest struct {
	MaterialPath string   `json:"material_path"`
	StartTime    string   `json:"start_time,omitempty"`
	Duration     *string  `json:"duration,omitempty"`
	TrackName    *string  `json:"track_name,omitempty"`
	Volume       *float64 `json:"volume,omitempty"`
	FadeIn       *string  `json:"fade_in,omitempty"`
	FadeOut      *string  `json:"fade_out,omitempty"`
}

// VideoSegmentRequest places a video or image material on a track.
type VideoSegmentRequest struct {
	MaterialPath   string   `json:"material_path"`
	StartTime      string   `json:"start_time,omitempty"`
	Duration       *string  `json:"duration,omitempty"`
	TrackName      *string  `json:"track_name,omitempty"`
	AnimationType  *string  `json:"animation_type,omitempty"`
	TransitionType *string  `json:"transition_type,omitempty"`
	Alpha          *float64 `json:"alpha,omitempty"`
	Scale          *float64 `json:"scale,omitempty"`
}

// StickerSegmentRequest places a sticker material on a video track.
type StickerSegmentRequest struct {
	MaterialPath   string   `json:"material_path"`
	StartTime      string   `json:"start_time,omitempty"`
	Duration       *string  `json:"duration,omitempty"`
	TrackName      *string  `json:"track_name,omitempty"`
	BackgroundBlur *float64 `json:"background_blur,omitempty"`
}

// TextSegmentRequest places a text segment with optional styling, animation,
// bubble, and text effect. Duration is required: text has no source material
// whose length could stand in for an omitted value.
type TextSegmentRequest struct {
	Text             string      `json:"text"`
	StartTime        string      `json:"start_time,omitempty"`
	Duration         *string     `json:"duration,omitempty"`
	TrackName        *string     `json:"track_name,omitempty"`
	Font             *string     `json:"font,omitempty"`
	Size             *float64    `json:"size,omitempty"`
	Color            *[3]float64 `json:"color,omitempty"`
	TransformY       *float64    `json:"transform_y,omitempty"`
	AnimationType    *string     `json:"animation_type,omitempty"`
	BubbleCategoryID *string     `json:"bubble_category_id,omitempty"`
	BubbleResourceID *string     `json:"bubble_resource_id,omitempty"`
	EffectResourceID *string     `json:"effect_resource_id,omitempty"`
}
