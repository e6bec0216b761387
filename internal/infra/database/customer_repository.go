package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/caiodev/ms-customer/internal/entity"
)

// Unique constraint names from sql/schema.sql. A violation on either one is
// the authoritative duplicate signal; the service-level pre-check only exists
// for friendlier error timing.
const (
	uniqueViolation       = "23505"
	cpfUniqueConstraint   = "customers_cpf_key"
	emailUniqueConstraint = "customers_email_key"
)

const customerColumns = `code, name, cpf, email, postal_code, street, number, complement, neighborhood, city, state, phone, created_at`

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY code`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) FindByCode(ctx context.Context, code int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE code = $1`
	return r.findOne(ctx, query, code)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return r.findOne(ctx, query, email)
}

func (r *CustomerRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM customers WHERE cpf = $1)`, cpf)
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)`, email)
}

// Create inserts the customer and fills in the store-assigned code and
// creation timestamp.
func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, cpf, email, postal_code, street, number, complement, neighborhood, city, state, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING code, created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		c.Name,
		c.CPF,
		c.Email,
		c.Address.PostalCode,
		c.Address.Street,
		c.Address.Number,
		c.Address.Complement,
		c.Address.Neighborhood,
		c.Address.City,
		c.Address.State,
		c.Phone,
	).Scan(&c.Code, &c.CreatedAt)

	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, cpf = $2, email = $3, postal_code = $4, street = $5, number = $6,
		    complement = $7, neighborhood = $8, city = $9, state = $10, phone = $11
		WHERE code = $12
	`

	result, err := r.DB.ExecContext(ctx, query,
		c.Name,
		c.CPF,
		c.Email,
		c.Address.PostalCode,
		c.Address.Street,
		c.Address.Number,
		c.Address.Complement,
		c.Address.Neighborhood,
		c.Address.City,
		c.Address.State,
		c.Phone,
		c.Code,
	)
	if err != nil {
		return translateUniqueViolation(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, code int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE code = $1`, code)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) findOne(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.Code,
		&c.Name,
		&c.CPF,
		&c.Email,
		&c.Address.PostalCode,
		&c.Address.Street,
		&c.Address.Number,
		&c.Address.Complement,
		&c.Address.Neighborhood,
		&c.Address.City,
		&c.Address.State,
		&c.Phone,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		switch pqErr.Constraint {
		case cpfUniqueConstraint:
			return entity.ErrCPFAlreadyExists
		case emailUniqueConstraint:
			return entity.ErrEmailAlreadyExists
		}
	}
	return err
}
