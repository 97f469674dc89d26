package order

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrRecipientIsNotConstructed is returned when a Recipient was not created
	// through one of the factory functions.
	ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient or NewDraftRecipient constructor")
)

// Recipient holds the delivery contact details captured at checkout:
// name, phone, address, and free-text notes.
//
// A cash-on-delivery order requires complete details because the shipper
// needs them immediately. An online-payment placeholder order may carry a
// draft recipient with blank fields; details are completed before dispatch.
type Recipient struct {
	name    string
	phone   string
	address string
	notes   string

	guard guard.ConstructorGuard
}

// NewRecipient creates a complete recipient. Name, phone, and address are
// required; notes may be empty.
func NewRecipient(name, phone, address, notes string) (Recipient, error) {
	var missing []error
	if name == "" {
		missing = append(missing, errs.NewValueIsRequiredError("name"))
	}
	if phone == "" {
		missing = append(missing, errs.NewValueIsRequiredError("phone"))
	}
	if address == "" {
		missing = append(missing, errs.NewValueIsRequiredError("address"))
	}
	if len(missing) > 0 {
		return Recipient{}, errors.Join(missing...)
	}

	return Recipient{
		name:    name,
		phone:   phone,
		address: address,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewDraftRecipient creates a recipient that may have blank fields.
// Used for online-payment placeholder orders created before full
// details are known.
func NewDraftRecipient(name, phone, address, notes string) Recipient {
	return Recipient{
		name:    name,
		phone:   phone,
		address: address,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the Recipient was created through a constructor.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// IsComplete reports whether name, phone, and address are all present.
func (r Recipient) IsComplete() bool {
	return r.name != "" && r.phone != "" && r.address != ""
}

// Name returns the recipient's name.
func (r Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's phone number.
func (r Recipient) Phone() string {
	return r.phone
}

// Address returns the delivery address.
func (r Recipient) Address() string {
	return r.address
}

// Notes returns the free-text delivery notes.
func (r Recipient) Notes() string {
	return r.notes
}
