package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{name: "essay style", style: "essay"},
		{name: "plain style", style: "plain"},
		{name: "unknown style", style: "neon", wantErr: ErrStyleNotFound},
		{name: "empty name", style: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", style: "../templates/article", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", tt.style, err)
			}
			if !strings.Contains(css, "body") {
				t.Errorf("LoadStyle(%q) returned CSS without a body rule", tt.style)
			}
		})
	}
}

func TestLoadShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		shell   string
		tokens  []string
		wantErr error
	}{
		{name: "article shell", shell: "article", tokens: []string{"{{title}}", "{{style}}", "{{date}}", "{{toc}}", "{{body}}"}},
		{name: "index shell", shell: "index", tokens: []string{"{{title}}", "{{tagline}}", "{{backlink}}", "{{entries}}", "{{year}}"}},
		{name: "entry shell", shell: "entry", tokens: []string{"{{delay}}", "{{dir}}", "{{filename}}", "{{date}}", "{{title}}", "{{excerpt}}", "{{tags}}"}},
		{name: "unknown shell", shell: "sitemap", wantErr: ErrShellNotFound},
		{name: "dotted name", shell: "article.html", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shell, err := LoadShell(tt.shell)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadShell(%q) error = %v, want %v", tt.shell, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadShell(%q) error = %v", tt.shell, err)
			}
			for _, token := range tt.tokens {
				if !strings.Contains(shell, token) {
					t.Errorf("shell %q missing placeholder %s", tt.shell, token)
				}
			}
		})
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	valid := []string{"essay", "plain", "article", "entry-card"}
	for _, name := range valid {
		if err := ValidateAssetName(name); err != nil {
			t.Errorf("ValidateAssetName(%q) error = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "a/b", `a\b`, "a.b", ".."}
	for _, name := range invalid {
		if err := ValidateAssetName(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", name, err)
		}
	}
}
