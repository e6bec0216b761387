package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/caiodev/ms-customer/internal/entity"
	"github.com/caiodev/ms-customer/internal/infra/queue"
)

// CustomerService implements the customer registry: list, lookup, create,
// update and delete, with duplicate pre-checks on the two natural keys and a
// delete gate on the orders service.
//
// Events and Mail are optional; when nil the corresponding side effect is
// skipped. Side effects run after the store commit and never fail the request.
type CustomerService struct {
	Repo   CustomerRepository
	Orders OrderChecker
	Events EventPublisher
	Mail   MailSender
}

func NewCustomerService(repo CustomerRepository, orders OrderChecker, events EventPublisher, mail MailSender) *CustomerService {
	return &CustomerService{
		Repo:   repo,
		Orders: orders,
		Events: events,
		Mail:   mail,
	}
}

func (s *CustomerService) List(ctx context.Context) ([]CustomerOutput, error) {
	customers, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	outputs := make([]CustomerOutput, 0, len(customers))
	for i := range customers {
		outputs = append(outputs, toCustomerOutput(&customers[i]))
	}
	return outputs, nil
}

func (s *CustomerService) FindByCode(ctx context.Context, code int64) (*CustomerOutput, error) {
	customer, err := s.Repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	out := toCustomerOutput(customer)
	return &out, nil
}

func (s *CustomerService) FindByEmail(ctx context.Context, email string) (*CustomerOutput, error) {
	customer, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	out := toCustomerOutput(customer)
	return &out, nil
}

// Create validates the payload, pre-checks the CPF and email for collisions
// and persists the new customer. The store assigns Code and CreatedAt.
// Nothing is written when any check fails.
func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*CustomerOutput, error) {
	if err := ValidateCustomerInput(input); err != nil {
		return nil, err
	}
	if err := s.checkDuplicates(ctx, input, nil); err != nil {
		return nil, err
	}

	customer := entity.Customer{
		Name:    input.Name,
		CPF:     input.CPF,
		Email:   input.Email,
		Address: input.address(),
		Phone:   input.Phone,
	}

	if err := s.Repo.Create(ctx, &customer); err != nil {
		return nil, err
	}

	log.Info().Int64("code", customer.Code).Str("cpf", customer.CPF).Msg("customer registered")

	go func() {
		if s.Mail != nil {
			if err := s.Mail.SendWelcome(customer.Email, customer.Name); err != nil {
				log.Warn().Err(err).Int64("code", customer.Code).Msg("welcome email failed")
			}
		}
		s.publishEvent(queue.EventCustomerCreated, &customer)
	}()

	out := toCustomerOutput(&customer)
	return &out, nil
}

func (s *CustomerService) UpdateByCode(ctx context.Context, code int64, input CustomerInput) (*CustomerOutput, error) {
	customer, err := s.Repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, customer, input)
}

func (s *CustomerService) UpdateByEmail(ctx context.Context, email string, input CustomerInput) (*CustomerOutput, error) {
	customer, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, customer, input)
}

func (s *CustomerService) DeleteByCode(ctx context.Context, code int64) error {
	customer, err := s.Repo.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	return s.delete(ctx, customer)
}

func (s *CustomerService) DeleteByEmail(ctx context.Context, email string) error {
	customer, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.delete(ctx, customer)
}

// update replaces every mutable field of an already-resolved customer,
// re-running validation and the duplicate pre-check with the customer itself
// excluded, so keeping one's own CPF or email never counts as a collision.
func (s *CustomerService) update(ctx context.Context, current *entity.Customer, input CustomerInput) (*CustomerOutput, error) {
	if err := ValidateCustomerInput(input); err != nil {
		return nil, err
	}
	if err := s.checkDuplicates(ctx, input, current); err != nil {
		return nil, err
	}

	updated := current.WithProfile(input.Name, input.CPF, input.Email, input.address(), input.Phone)

	if err := s.Repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	log.Info().Int64("code", updated.Code).Msg("customer updated")

	go s.publishEvent(queue.EventCustomerUpdated, &updated)

	out := toCustomerOutput(&updated)
	return &out, nil
}

// delete removes an already-resolved customer unless the orders service says
// it still has orders. When the orders service cannot be reached the answer
// is unknown and the deletion is refused with the transport error, never
// treated as "no orders".
func (s *CustomerService) delete(ctx context.Context, customer *entity.Customer) error {
	hasOrders, err := s.Orders.HasOrders(ctx, customer.Code)
	if err != nil {
		return fmt.Errorf("checking orders for customer %d: %w", customer.Code, err)
	}
	if hasOrders {
		return entity.ErrCustomerHasOrders
	}

	if err := s.Repo.Delete(ctx, customer.Code); err != nil {
		return err
	}

	log.Info().Int64("code", customer.Code).Msg("customer deleted")

	go s.publishEvent(queue.EventCustomerDeleted, customer)

	return nil
}

// checkDuplicates runs the friendly uniqueness pre-check. In update mode
// (current != nil) a key is only checked when it actually changed; the store's
// unique constraints remain the authoritative guard either way. CPF is checked
// before email.
func (s *CustomerService) checkDuplicates(ctx context.Context, input CustomerInput, current *entity.Customer) error {
	if current == nil || current.CPF != input.CPF {
		exists, err := s.Repo.ExistsByCPF(ctx, input.CPF)
		if err != nil {
			return fmt.Errorf("checking cpf uniqueness: %w", err)
		}
		if exists {
			return entity.ErrCPFAlreadyExists
		}
	}

	if current == nil || current.Email != input.Email {
		exists, err := s.Repo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return fmt.Errorf("checking email uniqueness: %w", err)
		}
		if exists {
			return entity.ErrEmailAlreadyExists
		}
	}

	return nil
}

func (s *CustomerService) publishEvent(event string, customer *entity.Customer) {
	if s.Events == nil {
		return
	}

	payload := queue.CustomerEvent{
		Event:      event,
		Code:       customer.Code,
		Name:       customer.Name,
		CPF:        customer.CPF,
		Email:      customer.Email,
		OccurredAt: time.Now(),
	}

	if err := s.Events.PublishCustomerEvent(context.Background(), payload); err != nil {
		log.Warn().Err(err).Str("event", event).Int64("code", customer.Code).Msg("customer event not published")
	}
}
