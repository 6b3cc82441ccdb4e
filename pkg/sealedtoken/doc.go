// Package sealedtoken issues and redeems encrypted, authenticated tokens that
// carry a small structured payload.
//
// Issue serializes the payload canonically, draws a fresh 12-byte nonce from
// the configured random source, seals the bytes with the AEAD engine and
// encodes nonce, ciphertext and tag as
//
//	base64url(nonce) "." base64url(ciphertext) "." base64url(tag)
//
// Redeem reverses the steps and returns the payload only if the tag verifies.
// There is no server-side state: a token is valid for as long as the key it
// was sealed with is.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/tokenkit/pkg/payload"
//	    "github.com/dmitrymomot/tokenkit/pkg/sealedtoken"
//	)
//
//	svc, err := sealedtoken.New[payload.Inventory]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok, err := svc.Issue(payload.Inventory{InventoryID: "12345ABC", SerialNumber: "S98765"}, key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	inv, err := svc.Redeem(tok, key)
//	if err != nil {
//	    return sealedtoken.Public(err) // ErrInvalidToken for any rejected token
//	}
//
// One-off calls can use the generic helpers Issue and Redeem, which build a
// Service from the given options for each call.
//
// # Options
//
//   - WithAlgorithm / WithEngine – AES-256-GCM (default) or ChaCha20-Poly1305.
//   - WithPayloadCodec – payload.JSON (default) or payload.CBOR.
//   - WithPurpose – binds a context string as associated data, so a token
//     issued for one purpose cannot be redeemed for another. Tokens issued
//     without a purpose remain compatible with issuers that use none.
//   - WithRandom – nonce source, crypto/rand by default. Tests may inject a
//     deterministic reader.
//   - WithLogger – receives debug records on issue and warnings on rejected
//     redeems. Keys, nonces, plaintext and tokens are never logged; keys are
//     identified by keysource.KeyID.
//
// # Configuration
//
// LoadConfig reads TOKEN_SECRET_KEY, TOKEN_ALGORITHM, TOKEN_PAYLOAD_CODEC and
// TOKEN_PURPOSE from the environment (and a .env file, when present).
// Config.Options and Config.Key turn it into service options and a key held
// in a secret.Buffer.
//
// # Error Handling
//
// Errors wrap the sentinels re-exported here, matchable with errors.Is:
//
//   - ErrInvalidKeyLength – the key is not 32 bytes. Programmer error.
//   - ErrMalformedToken – the string is not three base64url parts, or the
//     nonce has the wrong length.
//   - ErrAuthenticationFailed – tampered token, wrong key or wrong purpose.
//   - ErrPayloadDecode – the decrypted bytes are not a valid payload.
//   - ErrInvalidPayload, ErrPayloadEncode – Issue could not accept or
//     serialize the payload.
//   - ErrNonceGeneration – the random source failed.
//
// ErrMalformedToken, ErrAuthenticationFailed and ErrPayloadDecode are
// security-relevant and should not be told apart when reporting to clients;
// Public collapses them into ErrInvalidToken.
//
// A Service is immutable after New and safe for concurrent use, provided the
// random source is (crypto/rand is).
package sealedtoken
