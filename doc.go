// Package tokenkit issues and redeems stateless, URL-safe tokens sealed with
// authenticated encryption.
//
// A token carries a small structured payload, canonically an inventory item:
//
//	{"inventory_id": "12345ABC", "serial_number": "S98765"}
//
// and has the form base64url(nonce) "." base64url(ciphertext) "." base64url(tag),
// sealed with AES-256-GCM (or ChaCha20-Poly1305) under a 32-byte key.
//
// Packages:
//
//   - pkg/sealedtoken – the token service: Issue, Redeem, options, env config.
//   - pkg/aead – the AEAD engine, nonce and key generation.
//   - pkg/token – the three-part base64url wire codec.
//   - pkg/payload – payload types and the JSON and CBOR serializations.
//   - pkg/keysource – hex secret loading and key fingerprints for logs.
//   - pkg/secret – locked memory for key material.
//   - pkg/logger – slog factory with redaction of key material.
//
// Basic Usage:
//
//	cfg, err := sealedtoken.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	opts, err := cfg.Options()
//	if err != nil {
//		log.Fatal(err)
//	}
//	key, err := cfg.Key()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer key.Close()
//
//	svc, err := sealedtoken.New[payload.Inventory](opts...)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tok, err := svc.Issue(payload.Inventory{InventoryID: "12345ABC", SerialNumber: "S98765"}, key.Bytes())
package tokenkit
