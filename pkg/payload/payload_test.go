package payload_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokenkit/pkg/payload"
)

var sample = payload.Inventory{InventoryID: "12345ABC", SerialNumber: "S98765"}

func TestJSON_Canonical(t *testing.T) {
	t.Parallel()

	b, err := payload.JSON.Marshal(sample)
	require.NoError(t, err)
	assert.Equal(t, `{"inventory_id":"12345ABC","serial_number":"S98765"}`, string(b))

	again, err := payload.JSON.Marshal(sample)
	require.NoError(t, err)
	assert.Equal(t, b, again)
}

func TestCBOR_Canonical(t *testing.T) {
	t.Parallel()

	b, err := payload.CBOR.Marshal(sample)
	require.NoError(t, err)
	assert.Equal(t,
		"a26c696e76656e746f72795f69646831323334354142436d73657269616c5f6e756d62657266533938373635",
		hex.EncodeToString(b))

	// Map keys are sorted regardless of insertion order.
	m, err := payload.CBOR.Marshal(map[string]string{
		"serial_number": "S98765",
		"inventory_id":  "12345ABC",
	})
	require.NoError(t, err)
	assert.Equal(t, b, m)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value payload.Inventory
	}{
		{"sample", sample},
		{"empty", payload.Inventory{}},
		{"unicode", payload.Inventory{InventoryID: "инв-42", SerialNumber: "序列号🌍"}},
		{"special characters", payload.Inventory{InventoryID: `a"b\c`, SerialNumber: "<script>&"}},
	}

	for _, codec := range []payload.Codec{payload.JSON, payload.CBOR} {
		for _, tt := range tests {
			t.Run(codec.Name()+"/"+tt.name, func(t *testing.T) {
				t.Parallel()

				b, err := codec.Marshal(tt.value)
				require.NoError(t, err)

				var got payload.Inventory
				require.NoError(t, codec.Unmarshal(b, &got))
				assert.Equal(t, tt.value, got)
			})
		}
	}
}

func TestJSON_UnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"unknown field", `{"inventory_id":"a","serial_number":"b","admin":true}`, payload.ErrInvalidFormat},
		{"not json", `not json`, payload.ErrInvalidFormat},
		{"wrong type", `{"inventory_id":42,"serial_number":"b"}`, payload.ErrInvalidFormat},
		{"truncated", `{"inventory_id":"a"`, payload.ErrInvalidFormat},
		{"empty", ``, payload.ErrInvalidFormat},
		{"trailing object", `{"inventory_id":"a","serial_number":"b"}{}`, payload.ErrTrailingData},
		{"trailing garbage", `{"inventory_id":"a","serial_number":"b"} x`, payload.ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got payload.Inventory
			err := payload.JSON.Unmarshal([]byte(tt.data), &got)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJSON_TrailingWhitespaceAllowed(t *testing.T) {
	t.Parallel()

	var got payload.Inventory
	require.NoError(t, payload.JSON.Unmarshal([]byte(`{"inventory_id":"a","serial_number":"b"}`+"\n"), &got))
	assert.Equal(t, payload.Inventory{InventoryID: "a", SerialNumber: "b"}, got)
}

func TestCBOR_UnmarshalStrict(t *testing.T) {
	t.Parallel()

	valid, err := payload.CBOR.Marshal(sample)
	require.NoError(t, err)

	extraField, err := payload.CBOR.Marshal(map[string]string{
		"inventory_id":  "a",
		"serial_number": "b",
		"admin":         "yes",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"unknown field", extraField, payload.ErrInvalidFormat},
		{"break byte", []byte{0xff}, payload.ErrInvalidFormat},
		{"empty", []byte{}, payload.ErrInvalidFormat},
		{"truncated", valid[:len(valid)-3], payload.ErrInvalidFormat},
		{"wrong type", []byte{0x18, 0x2a}, payload.ErrInvalidFormat},
		{"trailing byte", append(append([]byte{}, valid...), 0x00), payload.ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got payload.Inventory
			err := payload.CBOR.Unmarshal(tt.data, &got)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    payload.Codec
		wantErr bool
	}{
		{"json", payload.JSON, false},
		{"cbor", payload.CBOR, false},
		{" JSON ", payload.JSON, false},
		{"msgpack", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := payload.ByName(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, payload.ErrUnknownCodec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name(), got.Name())
		})
	}
}

func TestInventory_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, sample.Validate())

	err := payload.Inventory{SerialNumber: "S1"}.Validate()
	require.ErrorIs(t, err, payload.ErrMissingInventoryID)
	require.NotErrorIs(t, err, payload.ErrMissingSerialNumber)

	err = payload.Inventory{}.Validate()
	require.ErrorIs(t, err, payload.ErrMissingInventoryID)
	require.ErrorIs(t, err, payload.ErrMissingSerialNumber)
}
