package session

import (
	"testing"
	"time"

	"github.com/ElaineMBarros/promoterm/internal/localstore"
)

func newTestRecents(t *testing.T) *Recents {
	t.Helper()
	r := NewRecents(localstore.NewMemStore())
	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	n := 0
	r.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	return r
}

func TestRecentsRecordAndList(t *testing.T) {
	r := newTestRecents(t)

	if got := r.List(); len(got) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(got))
	}
	if err := r.Record("Promo A"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := r.Record("Promo B"); err != nil {
		t.Fatalf("record: %v", err)
	}

	got := r.List()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Title != "Promo B" || got[1].Title != "Promo A" {
		t.Errorf("order = %q, %q; want newest first", got[0].Title, got[1].Title)
	}
	if got[0].Date == "" || got[0].Timestamp == "" {
		t.Error("date fields should be filled")
	}
}

func TestRecentsDedupeMovesToFront(t *testing.T) {
	r := newTestRecents(t)
	r.Record("A")
	r.Record("B")
	r.Record("A")

	got := r.List()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (no duplicate)", len(got))
	}
	if got[0].Title != "A" || got[1].Title != "B" {
		t.Errorf("order = %q, %q; want re-recorded title first", got[0].Title, got[1].Title)
	}
}

func TestRecentsCapEvictsOldest(t *testing.T) {
	r := newTestRecents(t)
	for _, title := range []string{"A", "B", "C", "D"} {
		r.Record(title)
	}

	got := r.List()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "D" || got[2].Title != "B" {
		t.Errorf("list = %v; oldest should be evicted", got)
	}
}

func TestRecentsIgnoresEmptyTitle(t *testing.T) {
	r := newTestRecents(t)
	r.Record("")
	if got := r.List(); len(got) != 0 {
		t.Errorf("empty title should not be recorded, got %v", got)
	}
}

func TestRecentsCorruptDataReadsAsEmpty(t *testing.T) {
	kv := localstore.NewMemStore()
	kv.Set("promoagente-recent", "{broken")
	r := NewRecents(kv)
	if got := r.List(); got != nil {
		t.Errorf("corrupt list should read as empty, got %v", got)
	}
	// And recording through it recovers.
	if err := r.Record("Fresh"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := r.List(); len(got) != 1 || got[0].Title != "Fresh" {
		t.Errorf("list after recovery = %v", got)
	}
}
