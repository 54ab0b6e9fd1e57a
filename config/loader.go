package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Store loads and saves the persisted Settings record.
type Store struct {
	path string
}

// NewStore creates a store backed by the YAML file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted record. The boolean reports whether a record was
// present; when it is false or an error is returned the caller should
// proceed with the returned defaults.
func (s *Store) Load() (Settings, bool, error) {
	set := Default()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return set, false, nil
		}
		return set, false, fmt.Errorf("read %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return Default(), false, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if err := validate.Struct(set); err != nil {
		// Corrected, not rejected: drop the offending override and keep the rest.
		log.Warn().Err(err).Str("path", s.path).Msg("Invalid persisted configuration, clearing endpoint override")
		set.APIBaseURL = ""
	}
	set.Normalize()
	return set, true, nil
}

// Save persists the record. Failures are the caller's to log; startup never
// depends on a successful save.
func (s *Store) Save(set Settings) error {
	set.Normalize()
	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// SaveEventually persists the record in the background, retrying
// opportunistically. Persistent failure is logged and swallowed.
func (s *Store) SaveEventually(set Settings) {
	go func() {
		bo := backoff.NewExponentialBackOff()
		bo.MaxElapsedTime = 2 * time.Minute
		err := backoff.Retry(func() error { return s.Save(set) }, bo)
		if err != nil {
			log.Warn().Err(err).Str("path", s.path).Msg("Failed to persist configuration")
		}
	}()
}

// ApplySession takes the record produced by a configuration session,
// normalizes it and persists it only when it differs from current. It
// returns the effective settings and whether anything changed.
func (s *Store) ApplySession(current, updated Settings) (Settings, bool) {
	updated.Normalize()
	if updated == current {
		return current, false
	}
	s.SaveEventually(updated)
	return updated, true
}
