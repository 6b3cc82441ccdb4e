// Package payload serializes token payloads to a canonical byte form.
//
// A Codec must be deterministic: the same logical value always produces the
// same bytes. Redeeming a token only decrypts and decodes; it never has to
// re-encode the payload to compare it.
//
// Two codecs are provided:
//
//   - JSON – encoding/json over structs, so fields appear in declaration
//     order. This is the default and matches tokens issued by the legacy
//     PHP issuer (json_encode of an ordered array).
//   - CBOR – RFC 8949 Core Deterministic Encoding via fxamacker/cbor: sorted
//     map keys, shortest integer forms, no indefinite lengths. More compact.
//
// Both decoders are strict. Unknown fields and trailing data are rejected so
// a decrypted payload either matches the target type exactly or fails.
//
// Inventory is the payload the inventory scanner exchanges:
//
//	p := payload.Inventory{InventoryID: "12345ABC", SerialNumber: "S98765"}
//	b, _ := payload.JSON.Marshal(p)
//	// {"inventory_id":"12345ABC","serial_number":"S98765"}
package payload
