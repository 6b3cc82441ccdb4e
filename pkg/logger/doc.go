// Package logger builds *slog.Logger instances that never print key
// material.
//
// New wraps slog's JSON or text handler. Every record passes through a
// redaction step first: any attribute whose key names a secret ("key",
// "secret", "token", "nonce", "plaintext", "password", or a key ending in
// "_key", "_secret", "_token" or "_password") has its value replaced with
// "[REDACTED]", including attributes nested inside groups and attributes
// attached with With.
//
// # Usage
//
//	import "github.com/dmitrymomot/tokenkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("scanner")),
//	)
//
//	log.Warn("token rejected",
//	    logger.KeyID(keysource.KeyID(key)),
//	    logger.Reason("authentication_failed"),
//	)
//
// Helper constructors in attr.go keep attribute names consistent across
// packages. Use KeyID, never the key itself, to tell keys apart in logs.
package logger
