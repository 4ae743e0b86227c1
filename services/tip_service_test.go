package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"

	"go.uber.org/zap"
)

func TestRandomSeedsCatalogOnFirstUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewTipService(db, zap.NewNop(), "https://example.com")

	tip, err := svc.Random()
	if err != nil {
		t.Fatalf("Random error: %v", err)
	}
	if tip.Title == "" || tip.Category == "" {
		t.Errorf("got incomplete tip: %+v", tip)
	}

	var count int64
	db.Model(&models.HealthTip{}).Count(&count)
	if count != int64(len(tipCatalog)) {
		t.Errorf("seeded %d tips, want %d", count, len(tipCatalog))
	}
}

func TestGeneratePersistsTip(t *testing.T) {
	db := newTestDB(t)
	svc := NewTipService(db, zap.NewNop(), "https://example.com")

	tip, err := svc.Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if tip.ShareSlug == "" {
		t.Error("expected a share slug")
	}

	var count int64
	db.Model(&models.HealthTip{}).Count(&count)
	if count != 1 {
		t.Errorf("tip count = %d, want 1", count)
	}
}

func TestShareIncrementsCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewTipService(db, zap.NewNop(), "https://example.com")

	tip, err := svc.Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	shared, link, err := svc.Share(tip.ShareSlug)
	if err != nil {
		t.Fatalf("Share error: %v", err)
	}
	if shared.ShareCount != 1 {
		t.Errorf("ShareCount = %d, want 1", shared.ShareCount)
	}
	if !strings.HasPrefix(link, "https://example.com/tips/") {
		t.Errorf("unexpected share link: %s", link)
	}

	if _, _, err := svc.Share("no-such-slug"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Share(missing) error = %v, want ErrNotFound", err)
	}
}

func TestShareTextFormat(t *testing.T) {
	tip := &models.HealthTip{Title: "Stay Hydrated", Content: "Drink water."}
	text := ShareText(tip)
	if !strings.Contains(text, "Stay Hydrated") || !strings.Contains(text, "#HealthTip") {
		t.Errorf("unexpected share text: %q", text)
	}
}
