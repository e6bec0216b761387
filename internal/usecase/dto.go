package usecase

import (
	"time"

	"github.com/caiodev/ms-customer/internal/entity"
)

// CustomerInput carries every field of the registration form as submitted.
// All fields are strings; validation happens in ValidateCustomerInput, in the
// same order the form presents them.
type CustomerInput struct {
	Name         string `json:"name"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Phone        string `json:"phone"`
}

type CustomerOutput struct {
	Code         int64     `json:"code"`
	Name         string    `json:"name"`
	CPF          string    `json:"cpf"`
	Email        string    `json:"email"`
	PostalCode   string    `json:"postal_code"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
}

func (in CustomerInput) address() entity.Address {
	return entity.Address{
		PostalCode:   in.PostalCode,
		Street:       in.Street,
		Number:       in.Number,
		Complement:   in.Complement,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
	}
}

func toCustomerOutput(c *entity.Customer) CustomerOutput {
	return CustomerOutput{
		Code:         c.Code,
		Name:         c.Name,
		CPF:          c.CPF,
		Email:        c.Email,
		PostalCode:   c.Address.PostalCode,
		Street:       c.Address.Street,
		Number:       c.Address.Number,
		Complement:   c.Address.Complement,
		Neighborhood: c.Address.Neighborhood,
		City:         c.Address.City,
		State:        c.Address.State,
		Phone:        c.Phone,
		CreatedAt:    c.CreatedAt,
	}
}
