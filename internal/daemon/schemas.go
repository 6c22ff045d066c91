package daemon

// Wire schemas for the draft session API.

// ActionResponse is the common envelope for mutating operations.
type ActionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DraftName string `json:"draft_name,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// ErrorResponse carries a failure message and a coarse machine code.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// BannerResponse identifies the service at the root path.
type BannerResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	UptimeS int64  `json:"uptime_s"`
}

// FolderData echoes a registered folder.
type FolderData struct {
	FolderID string `json:"folder_id"`
	Path     string `json:"path"`
}

// DraftData echoes the dimensions of a created draft.
type DraftData struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TrackData echoes the effective name of an added track.
type TrackData struct {
	TrackName string `json:"track_name"`
}

// SegmentData echoes the id of an appended segment.
type SegmentData struct {
	SegmentID string `json:"segment_id"`
}

// SaveData echoes the path of a persisted draft file.
type SaveData struct {
	Path string `json:"path"`
}

// DraftListResponse enumerates draft names under a folder.
type DraftListResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Drafts  []string `json:"drafts"`
}
