// Package store persists the wallet keystore and public address as plain
// files in the application's per-user configuration directory.
//
// Contents are opaque: nothing is parsed, validated or cached, so the
// filesystem is the only source of truth and every call touches disk.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/AlexZinkM/wallet-store/internal/hostenv"
)

const (
	// SavedMessage is returned by a fully successful save.
	SavedMessage = "Saved successfully"

	dirPerm  = 0o700
	filePerm = 0o600
)

// Record names one of the two files the store manages.
type Record string

const (
	Keystore Record = "keystore"
	Address  Record = "address"
)

// FileName returns the record's file name inside the config directory.
func (r Record) FileName() string {
	switch r {
	case Address:
		return "wallet_address.txt"
	default:
		return "wallet_keystore.json"
	}
}

func (r Record) notFoundMessage() string {
	switch r {
	case Address:
		return "No address file found."
	default:
		return "No wallet file found."
	}
}

// Store reads and writes wallet files under the directory reported by
// its provider. It holds no mutable state and is safe for concurrent use;
// concurrent saves are last-writer-wins.
type Store struct {
	provider     hostenv.Provider
	atomicWrites bool
}

// Option configures a Store.
type Option func(*Store)

// WithAtomicWrites makes saves write to a temp file and rename it over the
// target, so readers never observe a partially written file.
func WithAtomicWrites(enabled bool) Option {
	return func(s *Store) {
		s.atomicWrites = enabled
	}
}

// New creates a Store. The provider is resolved once up front so a host
// that cannot report its config directory fails at startup.
func New(provider hostenv.Provider, opts ...Option) (*Store, error) {
	if provider == nil {
		return nil, &hostenv.HostEnvironmentError{Message: "no config dir provider"}
	}
	s := &Store{provider: provider}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := provider.ConfigDir(); err != nil {
		return nil, hostEnvironmentError(err)
	}
	return s, nil
}

// Dir resolves the config directory and makes sure it exists.
//
// Panics with *hostenv.HostEnvironmentError if the provider fails: a host
// that loses track of its config directory after startup is broken, and
// the caller's request is aborted rather than answered.
func (s *Store) Dir() string {
	dir, err := s.provider.ConfigDir()
	if err != nil {
		panic(hostEnvironmentError(err))
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		// A failure here surfaces as an I/O error on the file operation that follows.
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			slog.Debug("create config dir failed", "dir", dir, "error", err)
		}
	}
	return dir
}

// hostEnvironmentError wraps provider failures that are not already a
// *hostenv.HostEnvironmentError.
func hostEnvironmentError(err error) *hostenv.HostEnvironmentError {
	var hostErr *hostenv.HostEnvironmentError
	if errors.As(err, &hostErr) {
		return hostErr
	}
	return &hostenv.HostEnvironmentError{Message: "could not resolve config dir", Err: err}
}

// Path returns the full path of a record, creating the directory if needed.
func (s *Store) Path(r Record) string {
	return filepath.Join(s.Dir(), r.FileName())
}

// SaveWallet overwrites the keystore file with data.
func (s *Store) SaveWallet(data string) (string, error) {
	if err := s.write(Keystore, data); err != nil {
		return "", err
	}
	return SavedMessage, nil
}

// SaveWalletAndAddress overwrites the keystore file, then the address file.
// The writes are independent: if the address write fails the keystore
// keeps its new contents.
func (s *Store) SaveWalletAndAddress(data, address string) (string, error) {
	if err := s.write(Keystore, data); err != nil {
		return "", err
	}
	if err := s.write(Address, address); err != nil {
		return "", err
	}
	return SavedMessage, nil
}

// ReadWallet returns the keystore contents.
func (s *Store) ReadWallet() (string, error) {
	return s.read(Keystore)
}

// ReadAddress returns the stored public address.
func (s *Store) ReadAddress() (string, error) {
	return s.read(Address)
}

// WalletExists reports whether the keystore file exists. It never fails:
// anything that prevents a stat counts as "no wallet".
func (s *Store) WalletExists() bool {
	_, err := os.Stat(s.Path(Keystore))
	return err == nil
}

func (s *Store) write(r Record, contents string) error {
	path := s.Path(r)

	var err error
	if s.atomicWrites {
		err = writeFileAtomic(path, []byte(contents))
	} else {
		err = os.WriteFile(path, []byte(contents), filePerm)
	}
	if err != nil {
		slog.Warn("wallet file write failed", "record", string(r), "path", path, "error", err)
		return ioError("write", r, path, err)
	}

	slog.Debug("wallet file written", "record", string(r), "path", path, "bytes", len(contents))
	return nil
}

func (s *Store) read(r Record) (string, error) {
	path := s.Path(r)

	// Checked first so a missing file is reported as "not initialized" rather
	// than an I/O failure. The file can still vanish before the read below.
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", notFound(r, path)
		}
		return "", ioError("read", r, path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", ioError("read", r, path, err)
	}
	if !utf8.Valid(raw) {
		return "", ioError("read", r, path, fmt.Errorf("stream did not contain valid UTF-8"))
	}
	return string(raw), nil
}
