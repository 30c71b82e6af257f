package prefs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/matzehuels/wristscale/pkg/errors"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested")
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	if _, ok, err := s.Get(ctx, KeyTheme); ok || err != nil {
		t.Errorf("Get() on empty store = ok %v, err %v", ok, err)
	}
	if err := s.Set(ctx, KeyTheme, "light"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := s.Set(ctx, "other", "x"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	reopened, _ := NewFileStore(dir)
	v, ok, err := reopened.Get(ctx, KeyTheme)
	if err != nil || !ok || v != "light" {
		t.Errorf("Get() after reopen = %q, %v, %v; want light", v, ok, err)
	}
	if _, err := os.Stat(reopened.Path()); err != nil {
		t.Errorf("prefs file missing: %v", err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, _ := NewFileStore(dir)
	if _, _, err := s.Get(context.Background(), KeyTheme); err == nil {
		t.Error("Get() on corrupt file expected error")
	}
}

func TestFileStoreConcurrent(t *testing.T) {
	s, _ := NewFileStore(t.TempDir())
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_ = s.Set(ctx, KeyTheme, "dark")
			} else {
				_, _, _ = s.Get(ctx, KeyTheme)
			}
		}()
	}
	wg.Wait()
	if v, _, _ := s.Get(ctx, KeyTheme); v != "dark" {
		t.Errorf("Get() = %q, want dark", v)
	}
}

func TestThemeHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if got, _ := Theme(ctx, s); got != "dark" {
		t.Errorf("Theme() default = %q, want dark", got)
	}

	got, err := ToggleTheme(ctx, s)
	if err != nil || got != "light" {
		t.Errorf("ToggleTheme() = %q, %v; want light", got, err)
	}
	if got, _ := Theme(ctx, s); got != "light" {
		t.Errorf("Theme() after toggle = %q, want light", got)
	}
	if got, _ := ToggleTheme(ctx, s); got != "dark" {
		t.Errorf("second ToggleTheme() = %q, want dark", got)
	}

	if _, err := SetTheme(ctx, s, "neon"); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("SetTheme(neon) error = %v, want INVALID_THEME", err)
	}

	_ = s.Set(ctx, KeyTheme, "garbage")
	if got, _ := Theme(ctx, s); got != "dark" {
		t.Errorf("Theme() with invalid stored value = %q, want dark", got)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"file", Config{Backend: BackendFile, Dir: t.TempDir()}, false},
		{"default", Config{Dir: t.TempDir()}, false},
		{"memory", Config{Backend: BackendMemory}, false},
		{"unknown", Config{Backend: "etcd"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if s != nil {
				s.Close()
			}
		})
	}
}
