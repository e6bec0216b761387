package entity

import "errors"

// Field validation failures. The validator surfaces the first one it hits,
// in registration-form order.
var (
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidCPF        = errors.New("cpf is invalid, expected format XXX.XXX.XXX-XX")
	ErrInvalidEmail      = errors.New("email is invalid, expected format local@domain.com")
	ErrInvalidPostalCode = errors.New("postal code is invalid, expected format XXXXX-XXX")
	ErrEmptyStreet       = errors.New("street must not be empty")
	ErrEmptyNumber       = errors.New("number must not be empty")
	ErrEmptyNeighborhood = errors.New("neighborhood must not be empty")
	ErrEmptyCity         = errors.New("city must not be empty")
	ErrEmptyState        = errors.New("state must not be empty")
	ErrInvalidPhone      = errors.New("phone is invalid, expected format (XX) 9XXXX-XXXX")
)

// Uniqueness conflicts, raised by the pre-check and by the store's unique
// constraints on a lost race.
var (
	ErrCPFAlreadyExists   = errors.New("cpf already registered")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrCustomerHasOrders = errors.New("customer has orders and cannot be deleted")
)

var validationErrors = []error{
	ErrEmptyName,
	ErrInvalidCPF,
	ErrInvalidEmail,
	ErrInvalidPostalCode,
	ErrEmptyStreet,
	ErrEmptyNumber,
	ErrEmptyNeighborhood,
	ErrEmptyCity,
	ErrEmptyState,
	ErrInvalidPhone,
}

// IsValidationError reports whether err is one of the field validation
// failures, as opposed to a conflict, not-found or infrastructure error.
func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
