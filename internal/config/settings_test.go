package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseAppearance(t *testing.T) {
	tests := []struct {
		in   string
		want Appearance
	}{
		{"system", AppearanceSystem},
		{"Light", AppearanceLight},
		{" dark ", AppearanceDark},
		{"0", AppearanceSystem},
		{"1", AppearanceLight},
		{"2", AppearanceDark},
	}
	for _, tt := range tests {
		got, err := ParseAppearance(tt.in)
		if err != nil {
			t.Fatalf("ParseAppearance(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseAppearance(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseAppearance("sepia"); !errors.Is(err, ErrInvalidAppearance) {
		t.Fatalf("ParseAppearance(sepia) error = %v, want ErrInvalidAppearance", err)
	}
}

func TestDarkMode(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	tests := []struct {
		name       string
		appearance Appearance
		system     func() bool
		want       bool
	}{
		{"system dark", AppearanceSystem, dark, true},
		{"system light", AppearanceSystem, light, false},
		{"system unknown", AppearanceSystem, nil, false},
		{"forced light", AppearanceLight, dark, false},
		{"forced dark", AppearanceDark, light, true},
	}
	for _, tt := range tests {
		s := DefaultSettings()
		s.Appearance = tt.appearance
		if got := s.DarkMode(tt.system); got != tt.want {
			t.Fatalf("%s: DarkMode = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseSettingsKeepsDefaults(t *testing.T) {
	s, err := ParseSettings([]byte("appearance: 2\ntuning:\n  gravity: 30\n"))
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if s.Appearance != AppearanceDark {
		t.Fatalf("appearance = %v, want dark", s.Appearance)
	}
	if !s.AdsEnabled {
		t.Fatalf("ads_enabled = false, want default true")
	}
	if s.Tuning.Gravity != 30 {
		t.Fatalf("gravity = %v, want 30", s.Tuning.Gravity)
	}
	if s.Tuning.LiftPerHeight != DefaultTuning().LiftPerHeight {
		t.Fatalf("lift_per_height = %v, want default", s.Tuning.LiftPerHeight)
	}
}

func TestParseSettingsRejectsBadTuning(t *testing.T) {
	_, err := ParseSettings([]byte("tuning:\n  gravity: -1\n"))
	if !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("error = %v, want ErrInvalidTuning", err)
	}
}

func TestLoadSettingsCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", s)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not created: %v", err)
	}

	s.Appearance = AppearanceLight
	s.AdsEnabled = false
	if err := SaveSettings(path, s); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings after save: %v", err)
	}
	if got != s {
		t.Fatalf("reloaded = %+v, want %+v", got, s)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("CLOUDS_TEST_BOOL", "true")
	if !GetEnvBool("CLOUDS_TEST_BOOL", false) {
		t.Fatalf("GetEnvBool = false, want true")
	}
	t.Setenv("CLOUDS_TEST_BOOL", "nope")
	if GetEnvBool("CLOUDS_TEST_BOOL", false) {
		t.Fatalf("GetEnvBool with garbage = true, want fallback false")
	}
}
