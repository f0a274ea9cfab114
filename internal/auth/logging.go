package auth

import (
	"os"
	"strings"
	"time"
)

var loggingEnv = os.Getenv("LOGGING")

// LogAuthAttempt appends one line to log/auth.log when LOGGING=true:
//
//	timestamp | level | authType | status | identifier? | message?
//
// level is one of debug|info|warning|error|fatal, status is Success or Fail,
// identifier is usually the email involved. Logging is best-effort; failures
// to write never affect the request being handled.
func LogAuthAttempt(level, authType, status, identifier, message string) {
	if !strings.EqualFold(loggingEnv, "true") {
		return
	}

	if err := os.MkdirAll("log", 0o750); err != nil {
		return
	}
	f, err := os.OpenFile("log/auth.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	fields := []string{time.Now().UTC().Format(time.RFC3339), level, authType, status}
	if identifier != "" {
		fields = append(fields, identifier)
	}
	if message != "" {
		fields = append(fields, message)
	}

	_, _ = f.WriteString(strings.Join(fields, " | ") + "\n")
}
