//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import "time"

// Session is the run-scoped state handed to every generator: the seeded
// random source, the reference date that listing dates are offset from,
// and the listing codes issued so far.
type Session struct {
	Faker *Faker
	Today time.Time

	codes map[string]struct{}
}

// NewSession creates a session seeded with seed. today is truncated to
// midnight UTC.
func NewSession(seed uint64, today time.Time) *Session {
	return &Session{
		Faker: NewFakerWithSeed(seed),
		Today: today.UTC().Truncate(24 * time.Hour),
		codes: make(map[string]struct{}),
	}
}

// Issue records code as issued. It returns false when the code was already
// issued in this session.
func (s *Session) Issue(code string) bool {
	if _, ok := s.codes[code]; ok {
		return false
	}
	s.codes[code] = struct{}{}
	return true
}

// Issued returns the number of codes issued so far.
func (s *Session) Issued() int {
	return len(s.codes)
}
