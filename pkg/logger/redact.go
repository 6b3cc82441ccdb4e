package logger

import (
	"log/slog"
	"strings"
)

const redactedValue = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"key":       {},
	"secret":    {},
	"token":     {},
	"nonce":     {},
	"plaintext": {},
	"password":  {},
}

var sensitiveSuffixes = []string{"_key", "_secret", "_token", "_password"}

// IsSensitiveKey reports whether an attribute with this key would be redacted.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if _, ok := sensitiveKeys[k]; ok {
		return true
	}
	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(k, suffix) {
			return true
		}
	}
	return false
}

// redact is installed as slog.HandlerOptions.ReplaceAttr. slog calls it for
// every leaf attribute, including members of groups.
func redact(_ []string, a slog.Attr) slog.Attr {
	if IsSensitiveKey(a.Key) {
		return slog.String(a.Key, redactedValue)
	}
	return a
}
