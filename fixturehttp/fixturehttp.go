// Package fixturehttp replays recorded fixtures over HTTP for tests whose
// session resolved a local response source.
//
// The calling test's request function should accept a base URL so the
// replay server can be injected: when the session resolves Local the test
// points it at a server replaying the fixture, and when it resolves
// External it points at the real endpoint and saves the response through
// the session.
package fixturehttp

import (
	"net/http"
	"net/http/httptest"

	"go.dot.industries/goldfile"
)

// Handler replays the session's fixture body with a 200 status.
func Handler(s *goldfile.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := s.Read()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(data)
	})
}

// Endpoint returns the base URL a test should issue its request against.
// For a Local session it starts a test server replaying the fixture and
// returns its URL; the caller must invoke stop when done. For an External
// session it returns externalURL unchanged with a no-op stop.
func Endpoint(s *goldfile.Session, externalURL string) (baseURL string, stop func()) {
	if s.Source() == goldfile.SourceExternal {
		return externalURL, func() {}
	}

	srv := httptest.NewServer(Handler(s))
	return srv.URL, srv.Close
}
