package respond

import (
	"regexp"
)

var (
	// database password inside a DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// bearer tokens in logged request dumps
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9-_.]+`)
)

// SanitizeError masks credentials in an error message before logging.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	return msg
}
