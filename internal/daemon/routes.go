package daemon

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"draftd/internal/api"
	"draftd/internal/catalog"
	"draftd/internal/logging"
	"draftd/internal/services"
)

// Version is the service version reported by the banner endpoint.
const Version = "0.1.0"

// metadataRoutes maps each read-only listing route to its catalog and the
// key its names are published under.
var metadataRoutes = []struct {
	path string
	kind catalog.Kind
	key  string
}{
	{"/metadata/fonts", catalog.KindFont, "fonts"},
	{"/metadata/animations/intro", catalog.KindIntro, "animations"},
	{"/metadata/animations/outro", catalog.KindOutro, "animations"},
	{"/metadata/animations/text-intro", catalog.KindTextIntro, "animations"},
	{"/metadata/animations/text-outro", catalog.KindTextOutro, "animations"},
	{"/metadata/transitions", catalog.KindTransition, "transitions"},
	{"/metadata/filters", catalog.KindFilter, "filters"},
}

// NewRouter builds the chi router for the draft session API.
func NewRouter(svc *api.DraftService, logger *slog.Logger) *chi.Mux {
	httpLogger := logging.NewComponentLogger(logger, "http")

	r := chi.NewRouter()
	r.Use(requestIDMiddleware())
	r.Use(recoveryMiddleware(httpLogger))
	r.Use(loggingMiddleware(httpLogger))

	startTime := time.Now()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, BannerResponse{Service: "draftd", Version: Version})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			UptimeS: int64(time.Since(startTime).Seconds()),
		})
	})

	r.Post("/folder/register", registerFolderHandler(svc))
	r.Get("/folder/{folderID}/drafts", listDraftsHandler(svc))

	r.Post("/draft/create", createDraftHandler(svc))
	r.Route("/draft/{draftName}", func(r chi.Router) {
		r.Post("/track/add", addTrackHandler(svc))
		r.Post("/segment/audio", addAudioSegmentHandler(svc))
		r.Post("/segment/video", addVideoSegmentHandler(svc))
		r.Post("/segment/sticker", addStickerSegmentHandler(svc))
		r.Post("/segment/text", addTextSegmentHandler(svc))
		r.Post("/save", saveDraftHandler(svc))
		r.Delete("/", closeDraftHandler(svc))
	})

	for _, route := range metadataRoutes {
		r.Get(route.path, metadataHandler(svc, route.kind, route.key))
	}

	return r
}

func registerFolderHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req api.RegisterFolderRequest
		if !decodeBody(w, r, &req) {
			return
		}
		folder, err := svc.RegisterFolder(req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ActionResponse{
			Success: true,
			Message: fmt.Sprintf("folder %q registered", folder.ID),
			Data:    FolderData{FolderID: folder.ID, Path: folder.Path},
		})
	}
}

func listDraftsHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.FolderDrafts(chi.URLParam(r, "folderID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, DraftListResponse{
			Success: true,
			Count:   len(names),
			Drafts:  names,
		})
	}
}

func createDraftHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateDraftRequest
		if !decodeBody(w, r, &req) {
			return
		}
		info, err := svc.CreateDraft(req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ActionResponse{
			Success:   true,
			Message:   fmt.Sprintf("draft %q created", info.Name),
			DraftName: info.Name,
			Data:      DraftData{Width: info.Width, Height: info.Height},
		})
	}
}

func addTrackHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftName := chi.URLParam(r, "draftName")
		var req api.AddTrackRequest
		if !decodeBody(w, r, &req) {
			return
		}
		trackName, err := svc.AddTrack(draftName, req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ActionResponse{
			Success:   true,
			Message:   fmt.Sprintf("track %q added", trackName),
			DraftName: draftName,
			Data:      TrackData{TrackName: trackName},
		})
	}
}

func addAudioSegmentHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftName := chi.URLParam(r, "draftName")
		var req api.AudioSegmentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeSegmentResult(w, draftName, "audio")(svc.AddAudioSegment(draftName, req))
	}
}

func addVideoSegmentHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftName := chi.URLParam(r, "draftName")
		var req api.VideoSegmentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeSegmentResult(w, draftName, "video")(svc.AddVideoSegment(draftName, req))
	}
}

func addStickerSegmentHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftName := chi.URLParam(r, "draftName")
		var req api.StickerSegmentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeSegmentResult(w, draftName, "sticker")(svc.AddStickerSegment(draftName, req))
	}
}

func addTextSegmentHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftName := chi.URLParam(r, "draftName")
		var req api.TextSegmentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeSegmentResult(w, draftName, "text")(svc.AddTextSegment(draftName, req))
	}
}

func saveDraftHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftName := chi.URLParam(r, "draftName")
		path, err := svc.SaveDraft(draftName)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ActionResponse{
			Success:   true,
			Message:   fmt.Sprintf("draft %q saved", draftName),
			DraftName: draftName,
			Data:      SaveData{Path: path},
		})
	}
}

func closeDraftHandler(svc *api.DraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftName := chi.URLParam(r, "draftName")
		if err := svc.CloseDraft(draftName); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ActionResponse{
			Success:   true,
			Message:   fmt.Sprintf("draft %q closed", draftName),
			DraftName: draftName,
		})
	}
}

func metadataHandler(svc *api.DraftService, kind catalog.Kind, key string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		names, err := svc.CatalogNames(kind)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"count":   len(names),
			key:       names,
		})
	}
}

func writeSegmentResult(w http.ResponseWriter, draftName, kind string) func(string, error) {
	return func(segmentID string, err error) {
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ActionResponse{
			Success:   true,
			Message:   fmt.Sprintf("%s segment added", kind),
			DraftName: draftName,
			Data:      SegmentData{SegmentID: segmentID},
		})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, services.Wrap(services.ErrValidation, "daemon", "decode request",
			"invalid request body", err))
		return false
	}
	return true
}
