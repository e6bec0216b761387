package usecase

import (
	"context"

	"github.com/caiodev/ms-customer/internal/entity"
	"github.com/caiodev/ms-customer/internal/infra/queue"
)

// CustomerRepository is the persistence port. Lookups return
// entity.ErrCustomerNotFound when the target does not exist; no method ever
// hands a nil customer back alongside a nil error. Create fills in Code and
// CreatedAt from the store. Create and Update translate a lost uniqueness
// race into entity.ErrCPFAlreadyExists / entity.ErrEmailAlreadyExists.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]entity.Customer, error)
	FindByCode(ctx context.Context, code int64) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, c *entity.Customer) error
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, code int64) error
}

// OrderChecker asks the orders service whether a customer has any order on
// record. A transport failure is returned as-is: the caller must treat an
// unanswered question as "deletion not allowed".
type OrderChecker interface {
	HasOrders(ctx context.Context, code int64) (bool, error)
}

type EventPublisher interface {
	PublishCustomerEvent(ctx context.Context, event queue.CustomerEvent) error
}

type MailSender interface {
	SendWelcome(to, name string) error
}
