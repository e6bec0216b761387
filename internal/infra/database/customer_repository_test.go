package database

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/caiodev/ms-customer/internal/entity"
)

var customerColumnList = []string{
	"code", "name", "cpf", "email", "postal_code", "street", "number",
	"complement", "neighborhood", "city", "state", "phone", "created_at",
}

func customerRow(code int64) *sqlmock.Rows {
	return sqlmock.NewRows(customerColumnList).AddRow(
		code, "Roberta Campos", "999.888.777-66", "roberta.campos@email.com",
		"01310-100", "Avenida Paulista", "1578", "apto 42", "Bela Vista",
		"São Paulo", "SP", "(11) 98765-4321", time.Now(),
	)
}

func newRepo(t *testing.T) (*CustomerRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCustomerRepository(db), mock
}

func TestFindByCodeReturnsCustomer(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + customerColumns + ` FROM customers WHERE code = $1`)).
		WithArgs(int64(42)).
		WillReturnRows(customerRow(42))

	customer, err := repo.FindByCode(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), customer.Code)
	assert.Equal(t, "Bela Vista", customer.Address.Neighborhood)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCodeNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + customerColumns + ` FROM customers WHERE code = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(customerColumnList))

	customer, err := repo.FindByCode(context.Background(), 99)

	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
	assert.Nil(t, customer)
}

func TestFindByEmailNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + customerColumns + ` FROM customers WHERE email = $1`)).
		WithArgs("ghost@email.com").
		WillReturnRows(sqlmock.NewRows(customerColumnList))

	customer, err := repo.FindByEmail(context.Background(), "ghost@email.com")

	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
	assert.Nil(t, customer)
}

func TestExistsByCPF(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM customers WHERE cpf = $1)`)).
		WithArgs("999.888.777-66").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByCPF(context.Background(), "999.888.777-66")

	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateAssignsCodeAndCreatedAt(t *testing.T) {
	repo, mock := newRepo(t)

	createdAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO customers`).
		WillReturnRows(sqlmock.NewRows([]string{"code", "created_at"}).AddRow(int64(7), createdAt))

	customer := entity.Customer{Name: "Roberta Campos", CPF: "999.888.777-66", Email: "roberta.campos@email.com"}
	err := repo.Create(context.Background(), &customer)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), customer.Code)
	assert.Equal(t, createdAt, customer.CreatedAt)
}

func TestCreateTranslatesCPFUniqueViolation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO customers`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "customers_cpf_key"})

	err := repo.Create(context.Background(), &entity.Customer{})

	assert.ErrorIs(t, err, entity.ErrCPFAlreadyExists)
}

func TestUpdateTranslatesEmailUniqueViolation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE customers`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "customers_email_key"})

	err := repo.Update(context.Background(), &entity.Customer{Code: 42})

	assert.ErrorIs(t, err, entity.ErrEmailAlreadyExists)
}

func TestUpdateNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE customers`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Customer{Code: 99})

	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE code = $1`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
}

func TestDeleteRemovesRow(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE code = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllEmpty(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + customerColumns + ` FROM customers ORDER BY code`)).
		WillReturnRows(sqlmock.NewRows(customerColumnList))

	customers, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}
