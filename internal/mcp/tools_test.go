package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/dotcfg/internal/fixture"
	"github.com/gorewood/dotcfg/internal/resolver"
)

// --- Test helpers ---

func makeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := fixture.Materialize(dir); err != nil {
		t.Fatalf("materializing fixture: %v", err)
	}
	return dir
}

// --- config_read ---

func TestHandleConfigRead(t *testing.T) {
	base := makeFixture(t)
	handler := handleConfigRead(resolver.New(nil), resolver.Overrides{BaseDir: base})

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, LocationInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Profile != "profile" {
		t.Errorf("Profile = %q, want %q", out.Profile, "profile")
	}
	if out.ProfileConfigFile != filepath.Join(base, "profiles", "profile.ini") {
		t.Errorf("ProfileConfigFile = %q", out.ProfileConfigFile)
	}
}

func TestHandleConfigRead_InputOverridesDefaults(t *testing.T) {
	base := makeFixture(t)
	handler := handleConfigRead(resolver.New(nil), resolver.Overrides{BaseDir: base})

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, LocationInput{ConfigFile: "test"})
	if err == nil {
		t.Fatal("expected error for missing configuration file")
	}
	if err.Error() != "Configuration file not found! (test)" {
		t.Errorf("error = %q", err.Error())
	}
}

// --- list tools ---

func TestHandleProfileList(t *testing.T) {
	base := makeFixture(t)
	handler := handleProfileList(resolver.New(nil), resolver.Overrides{})

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, LocationInput{BaseDir: base})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 || len(out.Names) != 2 {
		t.Errorf("out = %+v, want 2 profiles", out)
	}
}

func TestHandleThemeList(t *testing.T) {
	base := makeFixture(t)
	handler := handleThemeList(resolver.New(nil), resolver.Overrides{BaseDir: base})

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, LocationInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 {
		t.Errorf("Count = %d, want 1", out.Count)
	}

	_, _, err = handler(context.Background(), &mcp.CallToolRequest{}, LocationInput{ThemeDir: "test"})
	if err == nil || err.Error() != "Theme path not found! (test)" {
		t.Errorf("error = %v, want theme path error", err)
	}
}

// --- config_profile_update ---

func TestHandleProfileUpdate(t *testing.T) {
	base := makeFixture(t)
	handler := handleProfileUpdate(resolver.New(nil), resolver.Overrides{BaseDir: base})

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ProfileUpdateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Previous != "1" || out.Value != "2" || out.Field != "theme" {
		t.Errorf("out = %+v", out)
	}
}

func TestHandleProfileUpdate_Cycle(t *testing.T) {
	base := makeFixture(t)
	handler := handleProfileUpdate(resolver.New(nil), resolver.Overrides{BaseDir: base})

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ProfileUpdateInput{Policy: "cycle"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value != "1" {
		t.Errorf("Value = %q, want %q (one theme available)", out.Value, "1")
	}
}

func TestHandleProfileUpdate_Errors(t *testing.T) {
	base := makeFixture(t)
	handler := handleProfileUpdate(resolver.New(nil), resolver.Overrides{BaseDir: base})

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ProfileUpdateInput{Policy: "random"})
	if err == nil {
		t.Error("unknown policy should fail")
	}

	_, _, err = handler(context.Background(), &mcp.CallToolRequest{}, ProfileUpdateInput{Field: "font"})
	if err == nil || err.Error() != "The profile field was not found in the global section" {
		t.Errorf("error = %v, want field error", err)
	}
}

func TestNewServer(t *testing.T) {
	if NewServer("test", resolver.New(nil), resolver.Overrides{}) == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestHandleProfileUpdate_LocationOverrides(t *testing.T) {
	base := makeFixture(t)
	handler := handleProfileUpdate(resolver.New(nil), resolver.Overrides{})

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ProfileUpdateInput{
		BaseDir:    base,
		ConfigFile: "config/config_profile_no_field.ini",
	})
	if err == nil || err.Error() != "The profile field was not found in the global section" {
		t.Errorf("error = %v, want field error from the overridden config file", err)
	}
}
