package propctl

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Issue reports an enum value outside its option set. Such values are kept
// and render unstyled; the issue only informs the author.
type Issue struct {
	Key        string
	Value      string
	Suggestion string
}

func (i Issue) String() string {
	if i.Suggestion == "" {
		return fmt.Sprintf("%s: unknown option %q", i.Key, i.Value)
	}
	return fmt.Sprintf("%s: unknown option %q, did you mean %q?", i.Key, i.Value, i.Suggestion)
}

// Validate checks the enum controls of p against values. Missing keys are
// not reported.
func (p Panel) Validate(values map[string]interface{}) []Issue {
	var issues []Issue
	for _, c := range p.Controls {
		if c.Kind != Enum && c.Kind != SegmentedEnum {
			continue
		}
		raw, ok := values[c.Key]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			issues = append(issues, Issue{Key: c.Key, Value: fmt.Sprint(raw)})
			continue
		}
		if contains(c.Options, s) {
			continue
		}
		issues = append(issues, Issue{Key: c.Key, Value: s, Suggestion: Suggest(s, c.Options)})
	}
	return issues
}

// Suggest returns the option closest to s by edit distance. Ties go to the
// earlier option; an empty option list yields "".
func Suggest(s string, options []string) string {
	best, bestDist := "", -1
	for _, o := range options {
		d := levenshtein.ComputeDistance(s, o)
		if bestDist < 0 || d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
