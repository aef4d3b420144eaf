package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/asharish/portfolio-api/internal/store"
	"github.com/asharish/portfolio-api/internal/testutil"
)

func TestSettingsStore_Upsert(t *testing.T) {
	ss := store.NewSettingsStore(testutil.NewTestDB(t))
	ctx := context.Background()

	if err := ss.Set(ctx, "resume", "uploads/resume.pdf", "application/pdf"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := ss.Get(ctx, "resume")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Value != "uploads/resume.pdf" || got.Mime != "application/pdf" {
		t.Errorf("got %q/%q, want uploads/resume.pdf/application/pdf", got.Value, got.Mime)
	}

	// Second Set on the same key must update in place, not add a row.
	if err := ss.Set(ctx, "resume", "uploads/resume-v2.pdf", "application/pdf"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := ss.Set(ctx, "profile_photo", "data:image/png;base64,AAAA", "image/png"); err != nil {
		t.Fatalf("set second key: %v", err)
	}

	all, err := ss.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	// Ordered by key.
	if all[0].Key != "profile_photo" || all[1].Key != "resume" {
		t.Errorf("keys = [%s, %s], want [profile_photo, resume]", all[0].Key, all[1].Key)
	}
	if all[1].Value != "uploads/resume-v2.pdf" {
		t.Errorf("resume value = %q, want uploads/resume-v2.pdf", all[1].Value)
	}
}

func TestSettingsStore_GetMissing(t *testing.T) {
	ss := store.NewSettingsStore(testutil.NewTestDB(t))
	_, err := ss.Get(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
