package cards

import (
	"regexp"
	"sync"

	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

// Matches reports whether any pattern of m matches info. Fallback matchers
// and matchers without patterns never match.
func Matches(m theme.Matcher, info theme.CredentialMatchInfo) bool {
	return defaultPatterns.matches(m, info)
}

// PatternMatches evaluates a single pattern case-insensitively. An absent
// credential field never satisfies a pattern, not even ".*".
func PatternMatches(p theme.Pattern, info theme.CredentialMatchInfo) bool {
	return defaultPatterns.pattern(p, info)
}

type patternCache struct {
	mu       sync.Mutex
	compiled map[string]*regexp.Regexp
	invalid  map[string]error
	onError  func(regex string, err error)
}

var defaultPatterns = newPatternCache(nil)

func newPatternCache(onError func(string, error)) *patternCache {
	return &patternCache{
		compiled: make(map[string]*regexp.Regexp),
		invalid:  make(map[string]error),
		onError:  onError,
	}
}

func (c *patternCache) matches(m theme.Matcher, info theme.CredentialMatchInfo) bool {
	if m.Fallback {
		return false
	}
	for _, p := range m.Patterns {
		if c.pattern(p, info) {
			return true
		}
	}
	return false
}

func (c *patternCache) pattern(p theme.Pattern, info theme.CredentialMatchInfo) bool {
	value, ok := info.Field(p.Type)
	if !ok {
		return false
	}
	re := c.compile(p.Regex)
	if re == nil {
		return false
	}
	return re.MatchString(value)
}

// compile returns nil for expressions RE2 rejects; the error is reported
// once per expression.
func (c *patternCache) compile(expr string) *regexp.Regexp {
	c.mu.Lock()
	defer c.mu.Unlock()

	if re, ok := c.compiled[expr]; ok {
		return re
	}
	if _, bad := c.invalid[expr]; bad {
		return nil
	}
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		c.invalid[expr] = err
		if c.onError != nil {
			c.onError(expr, err)
		}
		return nil
	}
	c.compiled[expr] = re
	return re
}
