package knowledge

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	tables := Defaults()

	if len(tables.CuratedSkills) != 25 {
		t.Errorf("Expected 25 curated categories, got %d", len(tables.CuratedSkills))
	}

	ds := tables.CuratedSkillsFor("Data Science")
	if len(ds) == 0 {
		t.Fatal("Expected curated skills for Data Science")
	}
	if ds[0] != "learning" {
		t.Errorf("Expected first Data Science skill 'learning', got %q", ds[0])
	}

	if tables.GapThresholdMonths != 6 {
		t.Errorf("Expected default gap threshold 6, got %d", tables.GapThresholdMonths)
	}
}

func TestRoleFor(t *testing.T) {
	tables := Defaults()

	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"mapped category", "Data Science", "Data Scientist"},
		{"another mapped category", "Testing", "QA Engineer"},
		{"unmapped category passes through", "Java Developer", "Java Developer"},
		{"unknown category passes through", "Underwater Basket Weaving", "Underwater Basket Weaving"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tables.RoleFor(tt.category); got != tt.want {
				t.Errorf("RoleFor(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestNextRolesFor(t *testing.T) {
	tables := Defaults()

	t.Run("known role", func(t *testing.T) {
		next := tables.NextRolesFor("Data Scientist")
		if len(next) == 0 {
			t.Fatal("Expected ladder entry for Data Scientist")
		}
		if next[0] != "Data Analyst" {
			t.Errorf("Expected first rung 'Data Analyst', got %q", next[0])
		}
	})

	t.Run("missing role yields empty", func(t *testing.T) {
		if next := tables.NextRolesFor("Chief Vibes Officer"); len(next) != 0 {
			t.Errorf("Expected no ladder entry, got %v", next)
		}
	})
}

func TestCategoriesContaining(t *testing.T) {
	tables := Defaults()

	matches := tables.CategoriesContaining("analyst")
	if len(matches) != 1 || matches[0] != "Business Analyst" {
		t.Errorf("Expected [Business Analyst], got %v", matches)
	}

	if matches := tables.CategoriesContaining("data analyst"); len(matches) != 0 {
		t.Errorf("Expected no match for 'data analyst', got %v", matches)
	}
}

func TestLoadFile(t *testing.T) {
	base := NewBase(nil)

	t.Run("override merges over defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "knowledge.yaml")
		content := `
gap_threshold_months: 3
buzzwords:
  - synergy
  - paradigm
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("Failed to write override file: %v", err)
		}

		if err := base.LoadFile(path); err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}

		tables := base.Snapshot()
		if tables.GapThresholdMonths != 3 {
			t.Errorf("Expected overridden threshold 3, got %d", tables.GapThresholdMonths)
		}
		if len(tables.Buzzwords) != 2 {
			t.Errorf("Expected 2 overridden buzzwords, got %d", len(tables.Buzzwords))
		}
		// Untouched tables keep their defaults.
		if len(tables.CuratedSkills) != 25 {
			t.Errorf("Expected default curated skills to survive, got %d categories", len(tables.CuratedSkills))
		}
	})

	t.Run("invalid file keeps previous snapshot", func(t *testing.T) {
		before := base.Snapshot()

		dir := t.TempDir()
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("gap_threshold_months: [not a number"), 0o600); err != nil {
			t.Fatalf("Failed to write broken file: %v", err)
		}

		if err := base.LoadFile(path); err == nil {
			t.Error("Expected error for malformed file")
		}
		if base.Snapshot() != before {
			t.Error("Expected snapshot to be unchanged after failed load")
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if err := base.LoadFile("/nonexistent/knowledge.yaml"); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knowledge.yaml")
	if err := os.WriteFile(path, []byte("gap_threshold_months: 6\n"), 0o600); err != nil {
		t.Fatalf("Failed to write initial file: %v", err)
	}

	base := NewBase(nil)
	watcher := NewWatcher(base, path, 50*time.Millisecond, nil)
	if err := watcher.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			t.Errorf("Failed to stop watcher: %v", err)
		}
	}()

	if !watcher.IsRunning() {
		t.Fatal("Expected watcher to be running")
	}

	// Give the filesystem a distinguishable mtime, then rewrite.
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("gap_threshold_months: 2\n"), 0o600); err != nil {
		t.Fatalf("Failed to update file: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		if base.Snapshot().GapThresholdMonths == 2 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("Timed out waiting for reload, threshold still %d",
				base.Snapshot().GapThresholdMonths)
		case <-time.After(20 * time.Millisecond):
		}
	}
}
