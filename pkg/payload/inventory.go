package payload

import "errors"

// Inventory identifies one scanned hardware item.
type Inventory struct {
	InventoryID  string `json:"inventory_id" cbor:"inventory_id"`
	SerialNumber string `json:"serial_number" cbor:"serial_number"`
}

// Validate reports every missing field.
func (i Inventory) Validate() error {
	var errs []error
	if i.InventoryID == "" {
		errs = append(errs, ErrMissingInventoryID)
	}
	if i.SerialNumber == "" {
		errs = append(errs, ErrMissingSerialNumber)
	}
	return errors.Join(errs...)
}
