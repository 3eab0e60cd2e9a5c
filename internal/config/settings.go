package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidAppearance = errors.New("invalid appearance")
	ErrInvalidTuning     = errors.New("invalid tuning")
)

// Appearance selects the colour scheme. The numeric values match the
// integers stored by the mobile build (0 system, 1 light, 2 dark).
type Appearance int

const (
	AppearanceSystem Appearance = iota
	AppearanceLight
	AppearanceDark
)

func (a Appearance) String() string {
	switch a {
	case AppearanceSystem:
		return "system"
	case AppearanceLight:
		return "light"
	case AppearanceDark:
		return "dark"
	default:
		return "appearance(" + strconv.Itoa(int(a)) + ")"
	}
}

// ParseAppearance accepts a name or the legacy integer form.
func ParseAppearance(s string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "system", "0", "":
		return AppearanceSystem, nil
	case "light", "1":
		return AppearanceLight, nil
	case "dark", "2":
		return AppearanceDark, nil
	}
	return AppearanceSystem, fmt.Errorf("%w: %q", ErrInvalidAppearance, s)
}

func (a Appearance) MarshalYAML() (any, error) {
	return a.String(), nil
}

func (a *Appearance) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseAppearance(node.Value)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Settings is the explicit configuration handed to every game session.
type Settings struct {
	Appearance Appearance `yaml:"appearance"`
	AdsEnabled bool       `yaml:"ads_enabled"`
	Tuning     Tuning     `yaml:"tuning"`
}

// DefaultSettings mirrors the first-launch defaults: ads on, system appearance.
func DefaultSettings() Settings {
	return Settings{
		Appearance: AppearanceSystem,
		AdsEnabled: true,
		Tuning:     DefaultTuning(),
	}
}

// DarkMode resolves the appearance. systemDark is only consulted for
// AppearanceSystem and may be nil, in which case light is assumed.
func (s Settings) DarkMode(systemDark func() bool) bool {
	switch s.Appearance {
	case AppearanceDark:
		return true
	case AppearanceSystem:
		return systemDark != nil && systemDark()
	default:
		return false
	}
}

// Validate checks every field that the game relies on.
func (s Settings) Validate() error {
	if s.Appearance < AppearanceSystem || s.Appearance > AppearanceDark {
		return fmt.Errorf("%w: %d", ErrInvalidAppearance, int(s.Appearance))
	}
	return s.Tuning.Validate()
}

// ParseSettings decodes YAML on top of the defaults so omitted keys keep
// their default values.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads the settings file at path. A missing file is created
// with the defaults, the same way the game seeds its store on first launch.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := DefaultSettings()
		if err := SaveSettings(path, s); err != nil {
			return Settings{}, err
		}
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return ParseSettings(data)
}

// SaveSettings writes s to path, creating parent directories as needed.
func SaveSettings(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}
