package assets

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns select the image files worth bundling into a hotsite.
var DefaultPatterns = []string{"**/*.{png,jpg,jpeg,svg,webp,gif,ico}"}

// DefaultExcludes are directory names skipped during a scan.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	".walka",
	"dist",
	".idea",
	".vscode",
	".DS_Store",
}

func shouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// MatchesInclude returns true if the given relative path matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny tries each pattern against the full slash path and then against
// the base name, case-insensitively so "HERO.JPG" matches "*.jpg".
func matchesAny(relPath string, patterns []string) bool {
	normalized := strings.ToLower(filepath.ToSlash(relPath))
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = strings.ToLower(filepath.ToSlash(pattern))
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// ValidPatterns reports the first malformed glob in patterns.
func ValidPatterns(patterns []string) (string, bool) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return p, false
		}
	}
	return "", true
}
