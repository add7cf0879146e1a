package goldfile

import "fmt"

// ConfigError reports a contradictory flag combination. It is fatal: the
// fix is to change configuration, not to catch and continue.
type ConfigError struct {
	Path          string
	AllowExternal bool
	Update        bool
	FixtureExists bool
	Reason        string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"%s (fixture=%q, allow_external=%t, update=%t, fixture_exists=%t)",
		e.Reason, e.Path, e.AllowExternal, e.Update, e.FixtureExists,
	)
}

// StorageError reports a failed fixture read or write. The caller may
// recover, but a failed save still leaves the session's obligation unmet.
type StorageError struct {
	Op   string // "stat", "read", "write", "encode", "decode"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s fixture %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ObligationError reports a session that was configured to update its
// fixture but ended without a successful save. This is a defect in the
// calling test: without the recorded fixture the next run would fail with
// a ConfigError far from the real cause.
type ObligationError struct {
	Path   string
	Source ResponseSource
}

func (e *ObligationError) Error() string {
	return fmt.Sprintf(
		"fixture %q was never saved: the session required an update; call Save with the %s response before the test ends",
		e.Path, e.Source,
	)
}
