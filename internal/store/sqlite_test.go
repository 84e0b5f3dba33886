package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/amishk599/resumatch/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func record(id string, createdAt time.Time) model.Record {
	return model.Record{
		ID:         id,
		ResumeName: id + ".pdf",
		Percent:    42.17,
		Matched:    []string{"python"},
		Missing:    []string{"excel", "tableau"},
		CreatedAt:  createdAt,
	}
}

func TestSaveThenRecent(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	if err := s.Save(record("a1", now)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Recent returned %d records, want 1", len(got))
	}
	rec := got[0]
	if rec.ID != "a1" || rec.ResumeName != "a1.pdf" || rec.Percent != 42.17 {
		t.Errorf("record = %+v", rec)
	}
	if !reflect.DeepEqual(rec.Matched, []string{"python"}) || !reflect.DeepEqual(rec.Missing, []string{"excel", "tableau"}) {
		t.Errorf("skills = %v / %v", rec.Matched, rec.Missing)
	}
	if !rec.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, now)
	}
}

func TestRecentNewestFirstWithLimit(t *testing.T) {
	s := newTestStore(t)
	base := time.Now()

	for i, id := range []string{"oldest", "middle", "newest"} {
		if err := s.Save(record(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0].ID != "newest" || got[1].ID != "middle" {
		t.Errorf("Recent(2) = %+v, want newest then middle", got)
	}
}

func TestSaveEmptySkillLists(t *testing.T) {
	s := newTestStore(t)
	rec := model.Record{ID: "empty", ResumeName: "r.pdf", CreatedAt: time.Now()}

	if err := s.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Recent(1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || len(got[0].Matched) != 0 || len(got[0].Missing) != 0 {
		t.Errorf("Recent = %+v, want one record with no skills", got)
	}
}

func TestSaveSameIDReplaces(t *testing.T) {
	s := newTestStore(t)
	rec := record("dup", time.Now())

	if err := s.Save(rec); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	rec.Percent = 99.5
	if err := s.Save(rec); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0].Percent != 99.5 {
		t.Errorf("Recent = %+v, want a single replaced record", got)
	}
}

func TestCleanupRemovesOldKeepsFresh(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(record("old", time.Now().Add(-48*time.Hour))); err != nil {
		t.Fatalf("Save old: %v", err)
	}
	if err := s.Save(record("fresh", time.Now())); err != nil {
		t.Fatalf("Save fresh: %v", err)
	}

	if err := s.Cleanup(24 * time.Hour); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0].ID != "fresh" {
		t.Errorf("Recent after cleanup = %+v, want only fresh", got)
	}
}

func TestNopStore(t *testing.T) {
	s := NewNopStore()
	if err := s.Save(record("x", time.Now())); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("NopStore.Recent = %v, want empty", got)
	}
}

func TestRecent_RejectsNonPositiveLimit(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(record("a1", time.Now())); err != nil {
		t.Fatalf("Save: %v", err)
	}

	for _, limit := range []int{0, -1} {
		if _, err := s.Recent(limit); err == nil {
			t.Errorf("Recent(%d): expected error", limit)
		}
	}
}
