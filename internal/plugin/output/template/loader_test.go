package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"globals.css.tmpl":       {Data: []byte("embedded css\n")},
		"tailwind.theme.js.tmpl": {Data: []byte("embedded js\n")},
		"README.md":              {Data: []byte("not a template\n")},
	}
}

func TestLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	loader := New("tailwind", testFS()).WithCustomBase(tmpDir)

	t.Run("loads embedded template when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load("globals.css.tmpl")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if fromCustom {
			t.Error("expected embedded template, got custom")
		}
		if string(content) != "embedded css\n" {
			t.Errorf("Load() = %q, want embedded content", content)
		}
	})

	t.Run("loads custom template when it exists", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "tailwind", "globals.css.tmpl")
		if err := os.MkdirAll(filepath.Dir(customPath), 0755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(customPath, []byte("custom css\n"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		content, fromCustom, err := loader.Load("globals.css.tmpl")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !fromCustom {
			t.Error("expected custom template, got embedded")
		}
		if string(content) != "custom css\n" {
			t.Errorf("Load() = %q, want custom content", content)
		}
	})

	t.Run("returns error for non-existent template", func(t *testing.T) {
		if _, _, err := loader.Load("nonexistent.tmpl"); err == nil {
			t.Error("expected error for non-existent template")
		}
	})

	t.Run("rejects traversal", func(t *testing.T) {
		if _, _, err := loader.Load("../other/globals.css.tmpl"); err == nil {
			t.Error("expected error for path traversal")
		}
	})
}

func TestLoader_CustomPath(t *testing.T) {
	loader := New("tailwind", testFS()).WithCustomBase("/home/user/.config/twtheme/templates")

	want := filepath.Join("/home/user/.config/twtheme/templates", "tailwind", "globals.css.tmpl")
	if got := loader.CustomPath("globals.css.tmpl"); got != want {
		t.Errorf("CustomPath() = %s, want %s", got, want)
	}
}

func TestDefaultBase(t *testing.T) {
	t.Setenv(EnvTemplateDir, "/srv/templates")
	if got := DefaultBase(); got != "/srv/templates" {
		t.Errorf("DefaultBase() = %s, want /srv/templates", got)
	}

	t.Setenv(EnvTemplateDir, "")
	if got := DefaultBase(); filepath.Base(got) != "templates" || filepath.Base(filepath.Dir(got)) != "twtheme" {
		t.Errorf("DefaultBase() = %s, want .../twtheme/templates", got)
	}
}

func TestLoader_ListEmbeddedTemplates(t *testing.T) {
	loader := New("tailwind", testFS())

	templates, err := loader.ListEmbeddedTemplates()
	if err != nil {
		t.Fatalf("ListEmbeddedTemplates() error = %v", err)
	}

	want := []string{"globals.css.tmpl", "tailwind.theme.js.tmpl"}
	if len(templates) != len(want) {
		t.Fatalf("ListEmbeddedTemplates() = %v, want %v", templates, want)
	}
	for i := range want {
		if templates[i] != want[i] {
			t.Errorf("ListEmbeddedTemplates()[%d] = %s, want %s", i, templates[i], want[i])
		}
	}
}

func TestLoader_DumpTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	loader := New("tailwind", testFS()).WithCustomBase(tmpDir)

	path, err := loader.DumpTemplate("globals.css.tmpl", false)
	if err != nil {
		t.Fatalf("DumpTemplate() error = %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "embedded css\n" {
		t.Errorf("dumped content = %q", content)
	}

	if _, err := loader.DumpTemplate("globals.css.tmpl", false); !errors.Is(err, ErrTemplateExists) {
		t.Errorf("DumpTemplate() without force error = %v, want ErrTemplateExists", err)
	}

	if err := os.WriteFile(path, []byte("edited\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := loader.DumpTemplate("globals.css.tmpl", true); err != nil {
		t.Fatalf("DumpTemplate() with force error = %v", err)
	}
	content, _ = os.ReadFile(path)
	if string(content) != "embedded css\n" {
		t.Errorf("forced dump content = %q, want embedded content", content)
	}
}

func TestLoader_DumpAllTemplates(t *testing.T) {
	tmpDir := t.TempDir()
	loader := New("tailwind", testFS()).WithCustomBase(tmpDir)

	if _, err := loader.DumpTemplate("globals.css.tmpl", false); err != nil {
		t.Fatalf("DumpTemplate() error = %v", err)
	}

	dumped, err := loader.DumpAllTemplates(false)
	if !errors.Is(err, ErrTemplateExists) {
		t.Errorf("DumpAllTemplates() error = %v, want ErrTemplateExists", err)
	}
	if len(dumped) != 1 || filepath.Base(dumped[0]) != "tailwind.theme.js.tmpl" {
		t.Errorf("DumpAllTemplates() = %v, want only tailwind.theme.js.tmpl", dumped)
	}

	dumped, err = loader.DumpAllTemplates(true)
	if err != nil {
		t.Fatalf("DumpAllTemplates(force) error = %v", err)
	}
	if len(dumped) != 2 {
		t.Errorf("DumpAllTemplates(force) dumped %d, want 2", len(dumped))
	}
}

func TestLoader_GetInfo(t *testing.T) {
	tmpDir := t.TempDir()
	loader := New("tailwind", testFS()).WithCustomBase(tmpDir)

	if got := loader.GetInfo("globals.css.tmpl").Source(); got != "embedded" {
		t.Errorf("Source() = %s, want embedded", got)
	}

	if _, err := loader.DumpTemplate("globals.css.tmpl", false); err != nil {
		t.Fatalf("DumpTemplate() error = %v", err)
	}
	info := loader.GetInfo("globals.css.tmpl")
	if !info.CustomExists || info.Source() != "custom" {
		t.Errorf("GetInfo() = %+v, want custom", info)
	}
}
