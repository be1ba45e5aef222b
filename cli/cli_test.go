package cli

import (
	"testing"

	"github.com/yllada/rgb-manager/config"
	"github.com/yllada/rgb-manager/effect"
)

func testCLI() *CLI {
	work := effect.DefaultProfile()
	work.ID = "aaaabbbb-1111-2222-3333-444455556666"
	work.Name = "Work"

	play := effect.DefaultProfile()
	play.ID = "ccccdddd-7777-8888-9999-000011112222"
	play.Name = "Play Time"

	return &CLI{
		settings: config.Settings{
			Profiles: []effect.Profile{work, play},
			UIState:  work,
		},
	}
}

func TestCLI_FindProfile(t *testing.T) {
	c := testCLI()

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"exact name", "Work", "Work"},
		{"case-insensitive name", "wOrK", "Work"},
		{"name with spaces", "play time", "Play Time"},
		{"full ID", "aaaabbbb-1111-2222-3333-444455556666", "Work"},
		{"ID prefix", "ccccdddd", "Play Time"},
		{"trimmed whitespace", "  Work  ", "Work"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := c.findProfile(tt.query)
			if profile == nil {
				t.Fatalf("findProfile(%q) = nil, want %s", tt.query, tt.expected)
			}
			if profile.Name != tt.expected {
				t.Errorf("findProfile(%q) = %s, want %s", tt.query, profile.Name, tt.expected)
			}
		})
	}
}

func TestCLI_FindProfile_NotFound(t *testing.T) {
	c := testCLI()

	if profile := c.findProfile("Gaming"); profile != nil {
		t.Errorf("findProfile(Gaming) = %v, want nil", profile)
	}
	if profile := c.findProfile(""); profile != nil {
		t.Errorf("findProfile(\"\") = %v, want nil", profile)
	}
}

func TestCLI_ListProfiles_Empty(t *testing.T) {
	c := &CLI{settings: config.DefaultSettings()}

	if err := c.ListProfiles(); err != nil {
		t.Errorf("ListProfiles() on empty settings should not error, got %v", err)
	}
}
