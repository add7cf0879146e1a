// Package goldfile records and replays golden fixtures for tests that talk
// to external APIs.
//
// Each test owns one Session. The session resolves, once, whether the test
// should replay its recorded fixture or perform the live call, based on
// three inputs: whether external calls are permitted, whether fixtures are
// being updated, and whether the fixture file exists. A session configured
// to update must complete a successful Save before it ends; the teardown
// check fails the test loudly when it does not.
package goldfile

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
)

// Option configures a Session.
type Option func(*Session)

// WithStorage replaces the filesystem-backed fixture storage. Nil values
// are ignored.
func WithStorage(st Storage) Option {
	return func(s *Session) {
		if st != nil {
			s.storage = st
		}
	}
}

// WithLogger attaches a logger to the session. Sessions log nothing by
// default.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// Session owns one fixture for one test. It is created per test, never
// shared between tests, and carries no locking; concurrent tests use
// independent sessions over distinct fixture paths.
type Session struct {
	cfg     Config
	path    string
	source  ResponseSource
	storage Storage
	log     zerolog.Logger
	saved   bool
}

// NewSession resolves the response source for the fixture at path. The
// returned session is immutable except for the save obligation, which
// starts unmet exactly when cfg.Update is set. A contradictory
// configuration returns a ConfigError carrying the path and flags.
func NewSession(path string, cfg Config, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:     cfg,
		path:    path,
		storage: osStorage{},
		log:     zerolog.Nop(),
		saved:   !cfg.Update,
	}
	for _, opt := range opts {
		opt(s)
	}

	exists, err := s.storage.Exists(path)
	if err != nil {
		return nil, &StorageError{Op: "stat", Path: path, Err: err}
	}

	source, err := ResolveSource(cfg.AllowExternal, cfg.Update, exists)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return nil, err
	}
	s.source = source

	s.log.Debug().
		Str("fixture", path).
		Str("source", string(source)).
		Bool("fixture_exists", exists).
		Msg("session resolved")

	return s, nil
}

// Source reports where the test's response must come from. Resolved once
// at construction.
func (s *Session) Source() ResponseSource { return s.source }

// Path returns the fixture path.
func (s *Session) Path() string { return s.path }

// Save serializes v as indented JSON and writes it to the fixture path.
// When the session is not updating fixtures this is a no-op, so callers
// can invoke it unconditionally after either branch. Calling Save again
// simply overwrites; a successful call fulfills the save obligation.
func (s *Session) Save(v any) error {
	if !s.cfg.Update {
		s.log.Debug().Str("fixture", s.path).Msg("fixtures not being updated, skipping save")
		return nil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Path: s.path, Err: err}
	}

	return s.SaveBytes(data)
}

// SaveBytes writes an already-serialized document to the fixture path,
// with the same no-op and obligation semantics as Save.
func (s *Session) SaveBytes(data []byte) error {
	if !s.cfg.Update {
		return nil
	}

	if err := s.storage.Write(s.path, data); err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	s.saved = true

	s.log.Debug().Str("fixture", s.path).Int("bytes", len(data)).Msg("fixture saved")

	return nil
}

// Read returns the raw fixture contents.
func (s *Session) Read() ([]byte, error) {
	data, err := s.storage.Read(s.path)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}
	return data, nil
}

// Load unmarshals the fixture contents into v.
func (s *Session) Load(v any) error {
	data, err := s.Read()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &StorageError{Op: "decode", Path: s.path, Err: err}
	}
	return nil
}

// Close checks the save obligation. A session configured to update its
// fixture must have completed a successful Save before it ends; anything
// else is a defect in the calling test, reported as an ObligationError.
func (s *Session) Close() error {
	if !s.saved {
		return &ObligationError{Path: s.path, Source: s.source}
	}
	return nil
}
