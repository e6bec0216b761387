package usecase

import (
	"regexp"
	"strings"

	"github.com/caiodev/ms-customer/internal/entity"
)

var (
	cpfPattern        = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	postalCodePattern = regexp.MustCompile(`^\d{5}-\d{3}$`)
	phonePattern      = regexp.MustCompile(`^\(\d{2}\) 9?\d{4}-\d{4}$`)
)

// ValidateCustomerInput checks every field of the payload in registration-form
// order and returns the first violation it finds. Complement is the only
// optional field and is never checked. The function is pure: no I/O, no
// normalization of the input.
func ValidateCustomerInput(input CustomerInput) error {
	if isBlank(input.Name) {
		return entity.ErrEmptyName
	}
	if isBlank(input.CPF) || !cpfPattern.MatchString(input.CPF) {
		return entity.ErrInvalidCPF
	}
	if isBlank(input.Email) || !emailPattern.MatchString(input.Email) {
		return entity.ErrInvalidEmail
	}
	if isBlank(input.PostalCode) || !postalCodePattern.MatchString(input.PostalCode) {
		return entity.ErrInvalidPostalCode
	}
	if isBlank(input.Street) {
		return entity.ErrEmptyStreet
	}
	if isBlank(input.Number) {
		return entity.ErrEmptyNumber
	}
	if isBlank(input.Neighborhood) {
		return entity.ErrEmptyNeighborhood
	}
	if isBlank(input.City) {
		return entity.ErrEmptyCity
	}
	if isBlank(input.State) {
		return entity.ErrEmptyState
	}
	if isBlank(input.Phone) || !phonePattern.MatchString(input.Phone) {
		return entity.ErrInvalidPhone
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
