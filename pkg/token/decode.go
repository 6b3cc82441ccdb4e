package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// strict rejects non-zero trailing bits. Together with the padding rule in
// decodePart, a part has two accepted forms: unpadded or fully padded.
var strict = base64.URLEncoding.Strict()

// Decode splits a token into its nonce, ciphertext and tag.
//
// Parts may be unpadded (as produced by Encode) or carry standard "="
// padding. Anything other than three decodable parts yields an error wrapping
// ErrMalformedToken.
func Decode(tok string) (nonce, ciphertext, tag []byte, err error) {
	parts := strings.Split(tok, Separator)
	if len(parts) != 3 {
		return nil, nil, nil, ErrMalformedToken
	}

	if nonce, err = decodePart("nonce", parts[0]); err != nil {
		return nil, nil, nil, err
	}
	if ciphertext, err = decodePart("ciphertext", parts[1]); err != nil {
		return nil, nil, nil, err
	}
	if tag, err = decodePart("tag", parts[2]); err != nil {
		return nil, nil, nil, err
	}

	return nonce, ciphertext, tag, nil
}

func decodePart(name, s string) ([]byte, error) {
	// The decoder silently skips CR and LF; a token never contains them.
	if strings.ContainsAny(s, "\r\n") {
		return nil, errors.Join(ErrMalformedToken, fmt.Errorf("%s: unexpected line break", name))
	}

	if rem := len(s) % 4; rem != 0 {
		// Padding, when present, must be complete.
		if strings.Contains(s, "=") {
			return nil, errors.Join(ErrMalformedToken, fmt.Errorf("%s: incomplete padding", name))
		}
		s += strings.Repeat("=", 4-rem)
	}

	b, err := strict.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, fmt.Errorf("%s: %w", name, err))
	}
	return b, nil
}
