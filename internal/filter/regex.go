package filter

import "regexp"

// Matcher tests byte strings against a precompiled pattern. Matchers are
// built once at parse time and shared across concurrent executions, so
// implementations must be safe for concurrent IsMatch calls.
type Matcher interface {
	IsMatch(data []byte) bool
}

// MatcherCompiler builds a Matcher from regex source text. Regex
// execution is an external capability behind this boundary; swap it per
// scheme with Scheme.SetMatcherCompiler.
type MatcherCompiler interface {
	Compile(source string) (Matcher, error)
}

type stdMatcherCompiler struct{}

func (stdMatcherCompiler) Compile(source string) (Matcher, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, err
	}
	return &stdMatcher{re: re}, nil
}

type stdMatcher struct {
	re *regexp.Regexp
}

func (m *stdMatcher) IsMatch(data []byte) bool {
	return m.re.Match(data)
}
