package harness

import (
	"fmt"
	"regexp"
	"strings"
)

// RegexFilters selects test names for a run based on command-line regex
// patterns: a name is selected if it matches at least one MustMatch pattern
// (or MustMatch is empty) and no MustNotMatch pattern.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

func (r RegexFilters) Match(name string) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

// SelectNames reduces a list of registered names to the selected ones,
// preserving order and dropping duplicates: a name registered twice still
// runs as a single request.
func (r RegexFilters) SelectNames(all []string) []string {
	var selected []string
	seen := make(map[string]bool)
	for _, name := range all {
		if seen[name] || !r.Match(name) {
			continue
		}
		seen[name] = true
		selected = append(selected, name)
	}
	return selected
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
