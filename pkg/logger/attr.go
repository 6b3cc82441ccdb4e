package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// KeyID records a key fingerprint under the key "key_id".
func KeyID(id string) slog.Attr {
	return slog.String("key_id", id)
}

// Algorithm records the AEAD algorithm under the key "algorithm".
func Algorithm[T ~string](name T) slog.Attr {
	return slog.String("algorithm", string(name))
}

// Codec records the payload codec under the key "codec".
func Codec(name string) slog.Attr {
	return slog.String("codec", name)
}

// TokenSize records the encoded token length under the key "token_size".
func TokenSize(n int) slog.Attr {
	return slog.Int("token_size", n)
}

// Reason records why an operation was rejected under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}
