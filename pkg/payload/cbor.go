package payload

import (
	"errors"

	"github.com/fxamacker/cbor/v2"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error

	// Core Deterministic Encoding (RFC 8949 §4.2): same value, same bytes.
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("payload: CBOR encoder initialization failed: " + err.Error())
	}

	cborDec, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
		IndefLength:       cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic("payload: CBOR decoder initialization failed: " + err.Error())
	}
}

type cborCodec struct{}

func (cborCodec) Name() string { return "cbor" }

func (cborCodec) Marshal(v any) ([]byte, error) {
	return cborEnc.Marshal(v)
}

// Unmarshal rejects trailing bytes; cbor's Unmarshal already reports
// ExtraneousDataError for them.
func (cborCodec) Unmarshal(data []byte, v any) error {
	if err := cborDec.Unmarshal(data, v); err != nil {
		var extra *cbor.ExtraneousDataError
		if errors.As(err, &extra) {
			return errors.Join(ErrTrailingData, err)
		}
		return errors.Join(ErrInvalidFormat, err)
	}
	return nil
}
