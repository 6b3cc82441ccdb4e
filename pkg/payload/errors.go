package payload

import "errors"

var (
	ErrUnknownCodec  = errors.New("unknown payload codec")
	ErrTrailingData  = errors.New("trailing data after payload")
	ErrInvalidFormat = errors.New("invalid payload encoding")

	// Inventory validation errors
	ErrMissingInventoryID  = errors.New("inventory_id is required")
	ErrMissingSerialNumber = errors.New("serial_number is required")
)
