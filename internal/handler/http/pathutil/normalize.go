package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articoli/\d+$`), Template: "/articoli/:id"},
	{Pattern: regexp.MustCompile(`^/immagini/[^/]+$`), Template: "/immagini/:file"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with IDs (e.g. /articoli/123) collapse to a
// template (/articoli/:id); static paths pass through unchanged.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/articoli/123?full=1")  // "/articoli/:id"
//	NormalizePath("/articoli/123/")        // "/articoli/:id"
//	NormalizePath("/stats")                // "/stats"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
