package registry_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"draftd/internal/draft"
	"draftd/internal/logging"
	"draftd/internal/registry"
	"draftd/internal/services"
	"draftd/internal/timecode"
)

func newRegistry() *registry.Registry {
	return registry.New(logging.NewNop())
}

func mustFolder(t *testing.T, r *registry.Registry, id string) registry.Folder {
	t.Helper()
	folder, err := r.RegisterFolder(id, t.TempDir())
	if err != nil {
		t.Fatalf("RegisterFolder failed: %v", err)
	}
	return folder
}

func TestRegisterFolderDuplicateConflicts(t *testing.T) {
	r := newRegistry()
	first := mustFolder(t, r, "f1")

	if _, err := r.RegisterFolder("f1", t.TempDir()); !errors.Is(err, services.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate folder id, got %v", err)
	}

	got, err := r.Folder("f1")
	if err != nil {
		t.Fatalf("Folder failed: %v", err)
	}
	if got.Path != first.Path {
		t.Fatalf("duplicate registration mutated folder path: got %q want %q", got.Path, first.Path)
	}
}

func TestFolderUnknown(t *testing.T) {
	r := newRegistry()
	if _, err := r.Folder("nope"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateDraftUnknownFolder(t *testing.T) {
	r := newRegistry()
	if _, err := r.CreateDraft("missing", "promo", 1920, 1080, false); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateDraftConflictAndReplace(t *testing.T) {
	r := newRegistry()
	mustFolder(t, r, "f1")

	if _, err := r.CreateDraft("f1", "promo", 1920, 1080, false); err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}
	if _, err := r.CreateDraft("f1", "promo", 1920, 1080, false); !errors.Is(err, services.ErrConflict) {
		t.Fatalf("expected ErrConflict without allow_replace, got %v", err)
	}

	info, err := r.CreateDraft("f1", "promo", 1280, 720, true)
	if err != nil {
		t.Fatalf("CreateDraft with replace failed: %v", err)
	}
	if info.Width != 1280 || info.Height != 720 {
		t.Fatalf("replacement kept old dimensions: %dx%d", info.Width, info.Height)
	}

	// The replacement is a fresh draft: prior tracks are gone.
	err = r.WithDraft("promo", func(d *draft.Draft) error {
		if len(d.Tracks) != 0 {
			return fmt.Errorf("expected empty draft after replace, have %d tracks", len(d.Tracks))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestWithDraftUnknown(t *testing.T) {
	r := newRegistry()
	err := r.WithDraft("ghost", func(*draft.Draft) error { return nil })
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCloseDraft(t *testing.T) {
	r := newRegistry()
	mustFolder(t, r, "f1")
	if _, err := r.CreateDraft("f1", "promo", 1920, 1080, false); err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}

	if err := r.CloseDraft("promo"); err != nil {
		t.Fatalf("CloseDraft failed: %v", err)
	}
	if err := r.CloseDraft("promo"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second close, got %v", err)
	}
	if _, err := r.DraftInfo("promo"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("closed draft still resolvable: %v", err)
	}
}

func TestListDraftsByFolder(t *testing.T) {
	r := newRegistry()
	mustFolder(t, r, "f1")
	mustFolder(t, r, "f2")

	for _, name := range []string{"beta", "alpha"} {
		if _, err := r.CreateDraft("f1", name, 1920, 1080, false); err != nil {
			t.Fatalf("CreateDraft failed: %v", err)
		}
	}
	if _, err := r.CreateDraft("f2", "other", 1920, 1080, false); err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}

	names, err := r.ListDrafts("f1")
	if err != nil {
		t.Fatalf("ListDrafts failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Fatalf("unexpected draft listing: %v", names)
	}

	if _, err := r.ListDrafts("missing"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown folder, got %v", err)
	}
}

func TestConcurrentCreateAndClose(t *testing.T) {
	r := newRegistry()
	mustFolder(t, r, "f1")

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("draft-%d", i)
			if _, err := r.CreateDraft("f1", name, 1920, 1080, false); err != nil {
				t.Errorf("CreateDraft %s failed: %v", name, err)
				return
			}
			if i%2 == 0 {
				if err := r.CloseDraft(name); err != nil {
					t.Errorf("CloseDraft %s failed: %v", name, err)
				}
			}
		}(i)
	}
	wg.Wait()

	names, err := r.ListDrafts("f1")
	if err != nil {
		t.Fatalf("ListDrafts failed: %v", err)
	}
	if len(names) != workers/2 {
		t.Fatalf("expected %d surviving drafts, got %d", workers/2, len(names))
	}
}

func TestConcurrentSegmentAppends(t *testing.T) {
	r := newRegistry()
	mustFolder(t, r, "f1")
	if _, err := r.CreateDraft("f1", "promo", 1920, 1080, false); err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}
	err := r.WithDraft("promo", func(d *draft.Draft) error {
		_, err := d.AddTrack(draft.TrackAudio, draft.None[string](), draft.None[int]())
		return err
	})
	if err != nil {
		t.Fatalf("AddTrack failed: %v", err)
	}

	const appends = 64
	var wg sync.WaitGroup
	for i := 0; i < appends; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := r.WithDraft("promo", func(d *draft.Draft) error {
				return d.AddSegment(draft.None[string](), &draft.AudioSegment{
					Base:         draft.NewBase(timecode.Duration(i)*timecode.Second, draft.None[timecode.Duration]()),
					MaterialID:   fmt.Sprintf("mat-%d", i),
					MaterialPath: fmt.Sprintf("/media/%d.mp3", i),
				})
			})
			if err != nil {
				t.Errorf("append %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	err = r.WithDraft("promo", func(d *draft.Draft) error {
		if got := d.SegmentCount(); got != appends {
			return fmt.Errorf("expected %d segments, got %d", appends, got)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
