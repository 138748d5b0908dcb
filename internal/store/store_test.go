package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/modernscene/sitekeeper/internal/kvstore"
	"github.com/modernscene/sitekeeper/internal/models"
)

func newTestStore(t *testing.T) (*ContentStore, *kvstore.MemStore) {
	t.Helper()
	kv := kvstore.NewMemStore()
	s := New(kv, zap.NewNop())
	s.Hydrate(context.Background())
	return s, kv
}

// sequentialIDs replaces the uuid generator with a deterministic counter.
func sequentialIDs(s *ContentStore) {
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestHydrate_EmptyStore(t *testing.T) {
	s, _ := newTestStore(t)
	snap := s.Snapshot()

	if got := len(snap.HeroImages); got != 5 {
		t.Errorf("expected 5 default hero images, got %d", got)
	}
	if got := len(snap.Testimonials); got != 3 {
		t.Errorf("expected 3 default testimonials, got %d", got)
	}
	if got := len(snap.PortfolioImages[models.CategoryWeddings]); got != 1 {
		t.Errorf("expected seeded weddings category, got %d images", got)
	}
	if diff := cmp.Diff(models.DefaultSnapshot(), snap); diff != "" {
		t.Errorf("snapshot differs from defaults (-want +got):\n%s", diff)
	}
}

func TestHydrate_MalformedValue(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemStore()
	if err := kv.Set(ctx, kvstore.KeySnapshot, "not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s := New(kv, zap.NewNop())
	s.Hydrate(ctx)

	if diff := cmp.Diff(models.DefaultSnapshot(), s.Snapshot()); diff != "" {
		t.Errorf("malformed value should fall back to defaults (-want +got):\n%s", diff)
	}
}

func TestPersistHydrate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	if _, err := s.AddItem(ctx, models.HeroRef(), models.HeroImage{Src: "x", Alt: "a", Title: "t", Subtitle: "s"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := s.AddItem(ctx, models.TestimonialsRef(), models.Testimonial{Name: "n", Text: "great", Rating: 5}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	want := s.Snapshot()

	// A second store over the same backend must hydrate to an equal snapshot.
	s2 := New(kv, zap.NewNop())
	s2.Hydrate(ctx)

	if diff := cmp.Diff(want, s2.Snapshot()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAddItem_AppendsAndPersists(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	before := len(s.Snapshot().HeroImages)

	stored, err := s.AddItem(ctx, models.HeroRef(), models.HeroImage{Src: "x", Alt: "a", Title: "t", Subtitle: "s"})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	snap := s.Snapshot()
	if got := len(snap.HeroImages); got != before+1 {
		t.Fatalf("expected %d hero images, got %d", before+1, got)
	}
	last := snap.HeroImages[len(snap.HeroImages)-1]
	if last.ID != stored.ItemID() || last.Src != "x" {
		t.Errorf("appended item mismatch: %+v", last)
	}
	for _, img := range snap.HeroImages[:len(snap.HeroImages)-1] {
		if img.ID == last.ID {
			t.Errorf("new id %q collides with existing item", last.ID)
		}
	}

	// The persisted snapshot reflects the new length immediately.
	if _, ok, _ := kv.Get(ctx, kvstore.KeySnapshot); !ok {
		t.Fatal("snapshot not persisted after AddItem")
	}
	s2 := New(kv, zap.NewNop())
	s2.Hydrate(ctx)
	if got := len(s2.Snapshot().HeroImages); got != before+1 {
		t.Errorf("persisted snapshot has %d hero images; want %d", got, before+1)
	}
}

func TestAddItem_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		stored, err := s.AddItem(ctx, models.TestimonialsRef(), models.Testimonial{Name: "n", Text: "t", Rating: 5})
		if err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		if seen[stored.ItemID()] {
			t.Fatalf("duplicate id %q", stored.ItemID())
		}
		seen[stored.ItemID()] = true
	}
}

func TestAddItem_TypeMismatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.AddItem(ctx, models.HeroRef(), models.Testimonial{Name: "n", Text: "t", Rating: 5})
	if !errors.Is(err, ErrItemType) {
		t.Errorf("expected ErrItemType, got %v", err)
	}
}

func TestUpdateItem_MissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	before := s.Snapshot()

	rating := 5
	found, err := s.UpdateItem(ctx, models.TestimonialsRef(), "missing-id", models.TestimonialPatch{Rating: &rating})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if found {
		t.Error("expected found=false for missing id")
	}
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("snapshot changed by no-op update (-want +got):\n%s", diff)
	}
}

func TestUpdateItem_MergesPatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	sequentialIDs(s)

	stored, err := s.AddItem(ctx, models.PortfolioRef(models.CategoryEngagements), models.PortfolioImage{
		Src: "x", Alt: "a", Title: "old", Location: "loc", Description: "d",
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	title := "new"
	found, err := s.UpdateItem(ctx, models.PortfolioRef(models.CategoryEngagements), stored.ItemID(), models.PortfolioImagePatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if !found {
		t.Fatal("expected found=true")
	}

	seq := s.Snapshot().PortfolioImages[models.CategoryEngagements]
	if len(seq) != 1 || seq[0].Title != "new" || seq[0].Location != "loc" {
		t.Errorf("patch applied incorrectly: %+v", seq)
	}
}

func TestUpdateItem_PatchTypeMismatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	rating := 5
	_, err := s.UpdateItem(ctx, models.HeroRef(), "1", models.TestimonialPatch{Rating: &rating})
	if !errors.Is(err, ErrPatchType) {
		t.Errorf("expected ErrPatchType, got %v", err)
	}
}

func TestAddItem_SpanTags(t *testing.T) {
	tests := []struct {
		name      string
		className string
		want      string
		wantErr   error
	}{
		{"defaulted when empty", "", models.SpanRow1, nil},
		{"double span kept", models.SpanCol2Row2, models.SpanCol2Row2, nil},
		{"unknown tag rejected", "col-span-1", "", ErrSpanTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, _ := newTestStore(t)

			stored, err := s.AddItem(ctx, models.WorkRef(models.StyleVintage), models.AmazingWorkImage{
				Src: "x", Alt: "a", ClassName: tt.className,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddItem = %v; want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got := stored.(models.AmazingWorkImage).ClassName; got != tt.want {
				t.Errorf("ClassName = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestUpdateItem_RejectsUnknownSpan(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	id := s.Snapshot().AmazingWorkImages[models.StyleFineArt][0].ID

	bad := "col-span-1"
	_, err := s.UpdateItem(ctx, models.WorkRef(models.StyleFineArt), id, models.AmazingWorkImagePatch{ClassName: &bad})
	if !errors.Is(err, ErrSpanTag) {
		t.Fatalf("expected ErrSpanTag, got %v", err)
	}

	good := models.SpanCol2
	found, err := s.UpdateItem(ctx, models.WorkRef(models.StyleFineArt), id, models.AmazingWorkImagePatch{ClassName: &good})
	if err != nil || !found {
		t.Fatalf("valid span update failed: found=%v err=%v", found, err)
	}
	if got := s.Snapshot().AmazingWorkImages[models.StyleFineArt][0].ClassName; got != models.SpanCol2 {
		t.Errorf("ClassName = %q; want %q", got, models.SpanCol2)
	}
}

func TestReplaceCategory_RejectsUnknownSpan(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	before := s.Snapshot()

	err := s.ReplaceCategory(ctx, models.WorkRef(models.StyleArtistic), []models.Item{
		models.AmazingWorkImage{ID: "a", Src: "1", ClassName: "row-span-3"},
	})
	if !errors.Is(err, ErrSpanTag) {
		t.Fatalf("expected ErrSpanTag, got %v", err)
	}
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("rejected replace changed snapshot (-want +got):\n%s", diff)
	}
}

func TestRemoveItem_Idempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	id := s.Snapshot().HeroImages[0].ID
	if err := s.RemoveItem(ctx, models.HeroRef(), id); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	after := s.Snapshot()

	// Removing again yields the same sequence and still succeeds.
	if err := s.RemoveItem(ctx, models.HeroRef(), id); err != nil {
		t.Fatalf("second RemoveItem: %v", err)
	}
	if diff := cmp.Diff(after, s.Snapshot()); diff != "" {
		t.Errorf("second removal changed snapshot (-want +got):\n%s", diff)
	}

	if err := s.RemoveItem(ctx, models.HeroRef(), "never-existed"); err != nil {
		t.Errorf("removing absent id should succeed, got %v", err)
	}
}

func TestReplaceCategory(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	items := []models.Item{
		models.PortfolioImage{ID: "a", Src: "1", Title: "A"},
		models.PortfolioImage{ID: "b", Src: "2", Title: "B"},
	}
	if err := s.ReplaceCategory(ctx, models.PortfolioRef(models.CategoryWeddings), items); err != nil {
		t.Fatalf("ReplaceCategory: %v", err)
	}

	seq := s.Snapshot().PortfolioImages[models.CategoryWeddings]
	if len(seq) != 2 || seq[0].ID != "a" || seq[1].ID != "b" {
		t.Errorf("replaced sequence mismatch: %+v", seq)
	}

	// Other categories are untouched.
	if got := len(s.Snapshot().PortfolioImages[models.CategoryHomecoming]); got != 1 {
		t.Errorf("sibling category changed, %d images", got)
	}

	err := s.ReplaceCategory(ctx, models.HeroRef(), items)
	if !errors.Is(err, ErrItemType) {
		t.Errorf("expected ErrItemType for mismatched items, got %v", err)
	}
}

// failingStore rejects every write.
type failingStore struct {
	kvstore.MemStore
}

func (f *failingStore) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

func TestAddItem_PersistFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	s := New(&failingStore{}, zap.NewNop())
	s.Hydrate(ctx)
	before := s.Snapshot()

	_, err := s.AddItem(ctx, models.HeroRef(), models.HeroImage{Src: "x"})
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("failed persist mutated in-memory snapshot (-want +got):\n%s", diff)
	}
}
