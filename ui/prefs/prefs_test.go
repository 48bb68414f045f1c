package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "preferences.json")

	p := loadFrom(path)
	p.SetString("lastImage", "/tmp/sheet.png")
	p.SetInt("gridX", 24)
	p.SetBool("showLabels", true)

	if err := p.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := loadFrom(path)
	if got := reloaded.String("lastImage"); got != "/tmp/sheet.png" {
		t.Errorf("lastImage = %q", got)
	}
	// JSON round trip turns ints into float64; Int accepts both.
	if got := reloaded.Int("gridX", 0); got != 24 {
		t.Errorf("gridX = %d, want 24", got)
	}
	if !reloaded.Bool("showLabels", false) {
		t.Error("showLabels lost")
	}
}

func TestMissingFileIsEmpty(t *testing.T) {
	p := loadFrom(filepath.Join(t.TempDir(), "absent.json"))
	if got := p.String("anything"); got != "" {
		t.Errorf("String = %q, want empty", got)
	}
	if got := p.Int("count", 7); got != 7 {
		t.Errorf("Int fallback = %d, want 7", got)
	}
	if !p.Bool("flag", true) {
		t.Error("Bool fallback lost")
	}
}

func TestCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := loadFrom(path)
	if got := p.Int("gridX", 32); got != 32 {
		t.Errorf("Int fallback = %d, want 32", got)
	}
}
