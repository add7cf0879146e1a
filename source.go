package goldfile

// ResponseSource tells the calling test where its response must come from.
type ResponseSource string

const (
	// SourceLocal replays the recorded fixture; no external call is made.
	SourceLocal ResponseSource = "local"
	// SourceExternal performs the live call. Whether the result must be
	// persisted afterwards depends on the session's update flag.
	SourceExternal ResponseSource = "external"
)

// ResolveSource decides whether a test replays its recorded fixture or
// performs a live external call. Pure function of its three inputs; no I/O.
//
// A fixture on disk always wins over a live call unless an update was
// explicitly requested, which keeps default runs deterministic and
// network-free. Requesting an update without permission to call externally
// is a contradiction and yields a ConfigError, as does having neither a
// fixture nor permission to fetch one. All other combinations resolve.
func ResolveSource(allowExternal, update, fixtureExists bool) (ResponseSource, error) {
	switch {
	case !allowExternal && update:
		return "", &ConfigError{
			AllowExternal: allowExternal,
			Update:        update,
			FixtureExists: fixtureExists,
			Reason:        "cannot update fixtures without permission for external calls",
		}
	case !allowExternal && !fixtureExists:
		return "", &ConfigError{
			AllowExternal: allowExternal,
			Update:        update,
			FixtureExists: fixtureExists,
			Reason:        "no fixture exists and external calls are not permitted",
		}
	case !allowExternal:
		return SourceLocal, nil
	case !update && !fixtureExists:
		return SourceExternal, nil
	case !update:
		// The fixture takes precedence even though live calls are
		// permitted.
		return SourceLocal, nil
	default:
		return SourceExternal, nil
	}
}
