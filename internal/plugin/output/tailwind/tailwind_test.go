// Package tailwind provides a Tailwind CSS / shadcn/ui output plugin.
package tailwind

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tmplloader "github.com/jmylchreest/twtheme/internal/plugin/output/template"
	outputtesting "github.com/jmylchreest/twtheme/internal/plugin/output/testing"
	"github.com/jmylchreest/twtheme/internal/theme"
)

func TestTailwindPlugin(t *testing.T) {
	outputtesting.RunAllTests(t, New(), outputtesting.TestConfig{
		ExpectedName:         "tailwind",
		ExpectedFiles:        []string{"globals.css"},
		ExpectedDirSubstring: ".",
	})
}

func TestTailwindPlugin_Validate(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{
			name:    "Valid CSS format",
			format:  "css",
			wantErr: false,
		},
		{
			name:    "Valid config format",
			format:  "config",
			wantErr: false,
		},
		{
			name:    "Invalid format",
			format:  "invalid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plugin := NewWithFormat(tt.format)
			err := plugin.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTailwindPlugin_GenerateCSS(t *testing.T) {
	resolved := theme.Resolve(theme.Options{
		LightColors: theme.Overrides{"primary": "#ff0000"},
	})

	plugin := New() // Default is CSS format
	files, err := plugin.Generate(resolved)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	content, ok := files["globals.css"]
	if !ok {
		t.Fatalf("Generate() files = %v, want globals.css", files)
	}
	outputStr := string(content)

	// Check for essential CSS structure
	requiredStrings := []string{
		"@tailwind base;",
		"@layer base {\n  :root {\n    --background: 0 0% 100%;",
		"    --primary: 0 100% 50%;",
		"  }\n\n  .dark {\n    --background: 224 71% 4%;",
		"    --primary: 210 40% 98%;",
		"  * {\n    border-color: hsl(var(--border));\n  }",
		"    background-color: hsl(var(--background));",
		"    color: hsl(var(--foreground));",
		"    -webkit-font-smoothing: antialiased;",
		"    -moz-osx-font-smoothing: grayscale;",
	}

	for _, req := range requiredStrings {
		if !strings.Contains(outputStr, req) {
			t.Errorf("Generated CSS missing required string: %q", req)
		}
	}

	if !strings.HasSuffix(outputStr, "  }\n}\n") {
		t.Errorf("Generated CSS should close the base layer, got tail %q", outputStr[len(outputStr)-20:])
	}
}

func TestTailwindPlugin_GenerateConfig(t *testing.T) {
	resolved := theme.Resolve(theme.Options{})

	plugin := NewWithFormat("config")
	files, err := plugin.Generate(resolved)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	content, ok := files["tailwind.theme.js"]
	if !ok {
		t.Fatalf("Generate() files = %v, want tailwind.theme.js", files)
	}
	outputStr := string(content)

	// Check for essential config structure
	requiredStrings := []string{
		"module.exports",
		`darkMode: ["class"]`,
		"addBase({",
		`":root": {`,
		`"--background": "0 0% 100%"`,
		`"-moz-osx-font-smoothing": "grayscale"`,
		"extend: {",
		`border: "hsl(var(--border))",`,
		"primary: {\n          DEFAULT: \"hsl(var(--primary))\",\n          foreground: \"hsl(var(--primary-foreground))\",",
		`card: {`,
		`lg: "0.5rem",`,
		`md: "0.3rem",`,
		`sm: "0.1rem",`,
	}

	for _, req := range requiredStrings {
		if !strings.Contains(outputStr, req) {
			t.Errorf("Generated config missing required string: %q", req)
		}
	}
}

func TestTailwindPlugin_GenerateNilTheme(t *testing.T) {
	plugin := New()
	_, err := plugin.Generate(nil)
	if err == nil {
		t.Error("Generate() with nil theme should return error")
	}
}

func TestTailwindPlugin_CustomTemplate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(tmplloader.EnvTemplateDir, dir)

	customPath := filepath.Join(dir, "tailwind", "globals.css.tmpl")
	if err := os.MkdirAll(filepath.Dir(customPath), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	custom := "{{ range .Base }}{{ .Selector }};{{ end }}"
	if err := os.WriteFile(customPath, []byte(custom), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	files, err := New().Generate(theme.Resolve(theme.Options{}))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got, want := string(files["globals.css"]), ":root;.dark;*;body;"; got != want {
		t.Errorf("Generate() with custom template = %q, want %q", got, want)
	}

	// The config format still uses its embedded template.
	files, err = NewWithFormat(FormatConfig).Generate(theme.Resolve(theme.Options{}))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(string(files["tailwind.theme.js"]), "module.exports") {
		t.Error("config output should fall back to the embedded template")
	}
}

func TestJSKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"primary", "primary"},
		{"DEFAULT", "DEFAULT"},
		{"muted-foreground", `"muted-foreground"`},
		{"2xl", `"2xl"`},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := jsKey(tt.key); got != tt.want {
				t.Errorf("jsKey(%q) = %s, want %s", tt.key, got, tt.want)
			}
		})
	}
}
