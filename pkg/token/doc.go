// Package token implements the textual wire format of sealed tokens.
//
// A sealed token is three byte sequences produced by an AEAD seal: the nonce,
// the ciphertext and the authentication tag. Each part is encoded
// independently with the URL-safe base64 alphabet (RFC 4648 §5) without
// padding and the parts are joined with a single dot:
//
//	base64url(nonce) "." base64url(ciphertext) "." base64url(tag)
//
// The output only contains characters that are safe in URLs, file names and
// HTTP headers.
//
// # Usage
//
//	import "github.com/dmitrymomot/tokenkit/pkg/token"
//
//	tok := token.Encode(nonce, ciphertext, tag)
//
//	nonce, ciphertext, tag, err := token.Decode(tok)
//	if errors.Is(err, token.ErrMalformedToken) {
//	    // reject the request
//	}
//
// The package is purely syntactic. Decode never checks part lengths; that is
// the job of the AEAD layer (see package aead), which rejects a nonce or tag
// of the wrong size.
package token
