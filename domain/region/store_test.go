package region

import (
	"errors"
	"fmt"
	"testing"
)

func testRegion(id string) Region {
	return Region{
		ID: id,
		Crop: Crop{
			X: 10, Y: 20, Width: 100, Height: 50,
			OriginalWidth: 1000, OriginalHeight: 1500,
		},
		ImageData: "data:image/jpeg;base64,/9j/stub",
	}
}

func TestStore_AppendAndOrder(t *testing.T) {
	s := NewStore(nil)
	for i := 0; i < 3; i++ {
		if err := s.Append(testRegion(fmt.Sprintf("r%d", i))); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 regions, got %d", s.Len())
	}
	got := s.Regions()
	for i, r := range got {
		if r.ID != fmt.Sprintf("r%d", i) {
			t.Fatalf("insertion order lost at %d: %s", i, r.ID)
		}
	}
}

func TestStore_DuplicateIDRejected(t *testing.T) {
	s := NewStore(nil)
	if err := s.Append(testRegion("same")); err != nil {
		t.Fatalf("first append: %v", err)
	}
	err := s.Append(testRegion("same"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("store corrupted by rejected append: %d", s.Len())
	}
}

func TestStore_InvalidCropRejected(t *testing.T) {
	s := NewStore(nil)
	bad := testRegion("bad")
	bad.Crop.Width = 0
	if err := s.Append(bad); err == nil {
		t.Fatalf("zero-width crop must be rejected")
	}
	bad = testRegion("bad2")
	bad.Crop.X = 950 // 950+100 > 1000
	if err := s.Append(bad); err == nil {
		t.Fatalf("crop past original bounds must be rejected")
	}
	if s.Len() != 0 {
		t.Fatalf("rejected appends must not mutate the store")
	}
}

func TestStore_RemoveShiftsLaterOrdinals(t *testing.T) {
	s := NewStore(nil)
	for i := 1; i <= 3; i++ {
		if err := s.Append(testRegion(fmt.Sprintf("r%d", i))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if !s.Remove("r2") {
		t.Fatalf("remove r2 failed")
	}
	got := s.Regions()
	if len(got) != 2 {
		t.Fatalf("expected 2 after remove, got %d", len(got))
	}
	// r1 keeps position 0; old third region shifts into position 1, so its
	// displayed ordinal changes from 3 to 2.
	if got[0].ID != "r1" || got[1].ID != "r3" {
		t.Fatalf("unexpected order after remove: %s %s", got[0].ID, got[1].ID)
	}
	if s.Remove("r2") {
		t.Fatalf("second remove of same id should report false")
	}
}

func TestStore_CommitEmptyNeverInvokesCallback(t *testing.T) {
	s := NewStore(nil)
	calls := 0
	err := s.Commit(func([]Region) { calls++ })
	if !errors.Is(err, ErrEmptyCommit) {
		t.Fatalf("expected ErrEmptyCommit, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("callback must not run on empty store")
	}
}

func TestStore_CommitDeliversAllRegionsOnce(t *testing.T) {
	s := NewStore(nil)
	const n = 4
	for i := 0; i < n; i++ {
		if err := s.Append(testRegion(fmt.Sprintf("r%d", i))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	calls := 0
	var delivered []Region
	if err := s.Commit(func(regs []Region) { calls++; delivered = regs }); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if calls != 1 || len(delivered) != n {
		t.Fatalf("expected exactly one call with %d regions, got calls=%d len=%d", n, calls, len(delivered))
	}
	for _, r := range delivered {
		if !r.Crop.Valid() || r.ID == "" || r.ImageData == "" {
			t.Fatalf("delivered region violates invariants: %+v", r)
		}
	}
	// The delivered slice is a copy; mutating it must not corrupt the store.
	delivered[0].ID = "mutated"
	if s.Regions()[0].ID == "mutated" {
		t.Fatalf("commit leaked internal slice")
	}
}

func TestStore_ClearEmptiesStore(t *testing.T) {
	s := NewStore(nil)
	_ = s.Append(testRegion("a"))
	_ = s.Append(testRegion("b"))
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("clear left %d regions", s.Len())
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" || seen[id] {
			t.Fatalf("ids must be non-empty and unique, got %q", id)
		}
		seen[id] = true
	}
}

func TestCrop_Rect(t *testing.T) {
	c := Crop{X: 5, Y: 6, Width: 10, Height: 20, OriginalWidth: 100, OriginalHeight: 100}
	r := c.Rect()
	if r.Min.X != 5 || r.Min.Y != 6 || r.Dx() != 10 || r.Dy() != 20 {
		t.Fatalf("unexpected rect %v", r)
	}
	back := CropFromRect(r, r.Max.Add(r.Min))
	if back.X != c.X || back.Width != c.Width {
		t.Fatalf("CropFromRect mismatch: %+v", back)
	}
}
