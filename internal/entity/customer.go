package entity

import (
	"time"
)

// Value Object: Address
type Address struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Entidade: Customer
//
// Code and CreatedAt are assigned by the store on the first insert and never
// change afterwards. CPF and Email are unique across all customers.
type Customer struct {
	Code      int64     `json:"code"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	Address   Address   `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// WithProfile returns a copy of the customer with every mutable field
// replaced. Code and CreatedAt are carried over untouched, so an update can
// never reassign the surrogate key or the registration timestamp.
func (c Customer) WithProfile(name, cpf, email string, address Address, phone string) Customer {
	return Customer{
		Code:      c.Code,
		Name:      name,
		CPF:       cpf,
		Email:     email,
		Address:   address,
		Phone:     phone,
		CreatedAt: c.CreatedAt,
	}
}
