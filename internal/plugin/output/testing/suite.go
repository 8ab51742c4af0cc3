// Package testing provides shared test utilities for output plugins.
package testing

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/twtheme/internal/plugin/output"
	"github.com/jmylchreest/twtheme/internal/theme"
)

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string, expectedDirSubstring string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		desc := p.Description()
		if desc == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("DefaultOutputDir", func(t *testing.T) {
		dir := p.DefaultOutputDir()
		if dir == "" {
			t.Error("DefaultOutputDir() should not be empty")
		}
		// Use expectedDirSubstring if provided, otherwise fall back to expectedName
		checkString := expectedDirSubstring
		if checkString == "" {
			checkString = expectedName
		}
		if !strings.Contains(dir, checkString) {
			t.Errorf("DefaultOutputDir() = %s, should contain '%s'", dir, checkString)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests the Generate method with various scenarios.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(CreateTestTheme())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}

		for _, expectedFile := range expectedFiles {
			content, ok := files[expectedFile]
			if !ok {
				t.Errorf("Generate() did not return %s", expectedFile)
				continue
			}
			if len(content) == 0 {
				t.Errorf("Generate() returned empty %s", expectedFile)
			}
		}
	})

	t.Run("GenerateNilTheme", func(t *testing.T) {
		_, err := p.Generate(nil)
		if err == nil {
			t.Error("Generate() with nil theme should return error")
		}
	})

	t.Run("GenerateDefaults", func(t *testing.T) {
		files, err := p.Generate(theme.Resolve(theme.Options{}))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(files) == 0 {
			t.Error("Generate() returned no files")
		}
	})

	t.Run("GenerateWithFallback", func(t *testing.T) {
		resolved := theme.Resolve(theme.Options{
			LightColors: theme.Overrides{"primary": "not-a-color"},
		})
		files, err := p.Generate(resolved)
		if err != nil {
			t.Fatalf("Generate() with degraded value error = %v", err)
		}
		for name, content := range files {
			if !strings.Contains(string(content), "not-a-color") {
				t.Errorf("%s should pass the raw value through", name)
			}
		}
	})
}

// TestFlags tests plugin-specific flag registration.
func TestFlags(t *testing.T, p output.Plugin, expectedFlagPrefix string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{
			Use: "test",
		}

		p.RegisterFlags(cmd)

		expectedFlag := expectedFlagPrefix + ".output-dir"
		flag := cmd.Flags().Lookup(expectedFlag)
		if flag == nil {
			t.Errorf("RegisterFlags() did not register %s flag", expectedFlag)
		}
	})
}

// CreateTestTheme resolves a theme with overrides in several colour syntaxes.
func CreateTestTheme() *theme.Resolved {
	return theme.Resolve(theme.Options{
		LightColors: theme.Overrides{
			"primary":     "#7aa2f7",
			"accent":      "rgb(187 154 247)",
			"destructive": "hsl(349, 89%, 72%)",
		},
		DarkColors: theme.Overrides{
			"background": "#1a1b26",
			"foreground": "#c0caf5",
			"ring":       "oklch(0.7 0.1 250)",
		},
	})
}

// RunAllTests runs all standard tests for a plugin.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName, config.ExpectedDirSubstring)
	TestGeneration(t, p, config.ExpectedFiles)
	TestFlags(t, p, config.ExpectedName)
}

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName         string   // Plugin name
	ExpectedFiles        []string // Files that Generate() should return
	ExpectedDirSubstring string   // Optional: substring to check in DefaultOutputDir (defaults to ExpectedName if empty)
}
