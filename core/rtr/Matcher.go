package rtr

import "github.com/rohanthewiz/rdispatch/consts"

// Matcher tests dispatch configs against a partial config,
// e.g. Matcher{"controller": "users"} admits every users action.
// A value of "*" admits any non-empty value. An empty Matcher admits everything.
type Matcher map[string]string

// NewMatcher copies cfg into a Matcher.
func NewMatcher(cfg map[string]string) Matcher {
	m := make(Matcher, len(cfg))
	for k, v := range cfg {
		m[k] = v
	}
	return m
}

// Matches reports whether every key of the matcher agrees with cfg.
func (m Matcher) Matches(cfg DispatchConfig) bool {
	for key, want := range m {
		got, ok := cfg[key]
		if !ok {
			return false
		}
		if want == string(consts.RuneStar) {
			if got == "" {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}
