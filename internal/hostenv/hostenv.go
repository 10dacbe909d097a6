package hostenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Provider resolves the per-user directory the wallet files live in.
type Provider interface {
	ConfigDir() (string, error)
}

// HostEnvironmentError is returned when the host cannot tell us where
// the application's configuration directory is.
type HostEnvironmentError struct {
	Message string
	Err     error
}

func (e *HostEnvironmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HostEnvironmentError) Unwrap() error {
	return e.Err
}

// IsHostEnvironmentError checks if error is HostEnvironmentError
func IsHostEnvironmentError(err error) bool {
	_, ok := err.(*HostEnvironmentError)
	return ok
}

// AppConfigDir resolves <user config dir>/<Identifier>, e.g.
// ~/.config/com.localwallet.desktop on Linux.
type AppConfigDir struct {
	Identifier string

	// userConfigDir is swapped in tests.
	userConfigDir func() (string, error)
}

// NewAppConfigDir creates a provider for the given application identifier.
func NewAppConfigDir(identifier string) *AppConfigDir {
	return &AppConfigDir{Identifier: identifier, userConfigDir: os.UserConfigDir}
}

func (p *AppConfigDir) ConfigDir() (string, error) {
	id := strings.TrimSpace(p.Identifier)
	if id == "" {
		return "", &HostEnvironmentError{Message: "could not resolve config dir: empty app identifier"}
	}
	if filepath.IsAbs(id) || strings.ContainsAny(id, `/\`) {
		return "", &HostEnvironmentError{Message: fmt.Sprintf("could not resolve config dir: invalid app identifier %q", id)}
	}

	lookup := p.userConfigDir
	if lookup == nil {
		lookup = os.UserConfigDir
	}
	base, err := lookup()
	if err != nil {
		return "", &HostEnvironmentError{Message: "could not resolve config dir", Err: err}
	}
	return filepath.Join(base, id), nil
}

// FixedDir is a provider that always returns the same directory.
type FixedDir string

func (d FixedDir) ConfigDir() (string, error) {
	if strings.TrimSpace(string(d)) == "" {
		return "", &HostEnvironmentError{Message: "could not resolve config dir: empty path"}
	}
	return filepath.Clean(string(d)), nil
}

// FromConfig picks the override directory when set, otherwise the
// per-user application config directory.
func FromConfig(overrideDir, identifier string) Provider {
	if strings.TrimSpace(overrideDir) != "" {
		return FixedDir(overrideDir)
	}
	return NewAppConfigDir(identifier)
}
