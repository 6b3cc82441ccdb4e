package token

import (
	"encoding/base64"
	"strings"
)

// Separator joins the encoded parts. It is not part of the base64url alphabet.
const Separator = "."

var encoding = base64.RawURLEncoding

// Encode joins nonce, ciphertext and tag into a single token string.
func Encode(nonce, ciphertext, tag []byte) string {
	var b strings.Builder
	b.Grow(encoding.EncodedLen(len(nonce)) + encoding.EncodedLen(len(ciphertext)) + encoding.EncodedLen(len(tag)) + 2*len(Separator))

	b.WriteString(encoding.EncodeToString(nonce))
	b.WriteString(Separator)
	b.WriteString(encoding.EncodeToString(ciphertext))
	b.WriteString(Separator)
	b.WriteString(encoding.EncodeToString(tag))

	return b.String()
}
