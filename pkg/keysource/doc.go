// Package keysource turns provisioned secrets into token keys.
//
// Secrets are provisioned as 64-character hex strings (32 bytes), usually
// through the TOKEN_SECRET_KEY environment variable. FromHex decodes such a
// string into a secret.Buffer and wipes the intermediate copy.
//
// KeyID derives a short, non-reversible fingerprint of a key with BLAKE3. It
// lets logs and metrics tell keys apart without ever containing key material.
package keysource
