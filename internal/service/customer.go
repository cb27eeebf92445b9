package service

import (
	"context"

	"github.com/umalmyha/customers-sqlite/internal/errors"
	"github.com/umalmyha/customers-sqlite/internal/model"
	"github.com/umalmyha/customers-sqlite/internal/repository"
)

const customerNotFoundMsg = "Customer not found"

// CustomerService represents behavior of customer service
type CustomerService interface {
	FindAll(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, int64) (*model.Customer, error)
	Create(context.Context, *model.Customer) (*model.Customer, error)
	Update(context.Context, *model.Customer) (*model.Customer, error)
	DeleteByID(context.Context, int64) error
}

type customerService struct {
	customerRps repository.CustomerRepository
}

// NewCustomerService builds new customer service
func NewCustomerService(customerRps repository.CustomerRepository) CustomerService {
	return &customerService{customerRps: customerRps}
}

func (s *customerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRps.FindAll(ctx)
}

func (s *customerService) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, errors.NewEntryNotFoundErr(customerNotFoundMsg)
	}
	return c, nil
}

func (s *customerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if err := s.customerRps.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update overwrites all customer fields, nil fields are stored as NULL
func (s *customerService) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	updated, err := s.customerRps.Update(ctx, c)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, errors.NewEntryNotFoundErr(customerNotFoundMsg)
	}
	return c, nil
}

func (s *customerService) DeleteByID(ctx context.Context, id int64) error {
	deleted, err := s.customerRps.DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		return errors.NewEntryNotFoundErr(customerNotFoundMsg)
	}
	return nil
}
