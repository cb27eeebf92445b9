package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/customers-sqlite/internal/errors"
	"github.com/umalmyha/customers-sqlite/internal/model"
	rpsMocks "github.com/umalmyha/customers-sqlite/internal/repository/mocks"
)

type customerTestData struct {
	ctx      context.Context
	customer *model.Customer
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc     CustomerService
	customerRpsMock *rpsMocks.CustomerRepository
	testData        *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	name := "John Walls"
	email := "john.walls@somemail.com"

	s.testData = &customerTestData{
		ctx: context.Background(),
		customer: &model.Customer{
			ID:    7,
			Name:  &name,
			Email: &email,
		},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	s.customerRpsMock = rpsMocks.NewCustomerRepository(s.T())
	s.customerSvc = NewCustomerService(s.customerRpsMock)
}

func (s *customerServiceTestSuite) TestFindByIDSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()

	s.T().Log("customer must be found in data source")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customer, c, "wrong customer returned")
	}
}

func (s *customerServiceTestSuite) TestFindByIDNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()

	s.T().Log("customer is missing in data source")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().Nil(c, "no customer must be present but it was found")

		var notFoundErr *apperrors.EntryNotFoundErr
		s.Require().ErrorAs(err, &notFoundErr, "not found error must be raised")
		s.Assert().Equal("Customer not found", notFoundErr.Error(), "wrong not found message")
	}
}

func (s *customerServiceTestSuite) TestFindByIDFailed() {
	ctx := s.testData.ctx
	customer := s.testData.customer
	rpsErr := errors.New("disk I/O error")

	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(nil, rpsErr).Once()

	s.T().Log("data source error must be raised up as is")
	{
		_, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().ErrorIs(err, rpsErr, "data source error must be raised")
	}
}

func (s *customerServiceTestSuite) TestFindAllSuccessfully() {
	ctx := s.testData.ctx
	customers := []*model.Customer{s.testData.customer}

	s.customerRpsMock.On("FindAll", ctx).Return(customers, nil).Once()

	s.T().Log("customers must be found from data source")
	{
		res, err := s.customerSvc.FindAll(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customers, res, "wrong customers returned")
	}
}

func (s *customerServiceTestSuite) TestCreateSuccessfully() {
	ctx := s.testData.ctx
	newCustomer := &model.Customer{Name: s.testData.customer.Name}

	s.customerRpsMock.On("Create", ctx, newCustomer).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Customer).ID = 42
	}).Return(nil).Once()

	s.T().Log("customer must be created with id assigned by data source")
	{
		c, err := s.customerSvc.Create(ctx, newCustomer)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(int64(42), c.ID, "generated id must be returned")
	}
}

func (s *customerServiceTestSuite) TestCreateFailed() {
	ctx := s.testData.ctx
	newCustomer := &model.Customer{}

	s.customerRpsMock.On("Create", ctx, newCustomer).Return(errors.New("database is locked")).Once()

	s.T().Log("create failed in data source")
	{
		c, err := s.customerSvc.Create(ctx, newCustomer)
		s.Assert().Error(err, "data source raised error - error must be raised up")
		s.Assert().Nil(c, "no customer must be returned")
	}
}

func (s *customerServiceTestSuite) TestUpdateSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("Update", ctx, customer).Return(true, nil).Once()

	s.T().Log("customer is present, so must be updated")
	{
		c, err := s.customerSvc.Update(ctx, customer)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customer, c, "updated customer must be returned")
	}
}

func (s *customerServiceTestSuite) TestUpdateNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("Update", ctx, customer).Return(false, nil).Once()

	s.T().Log("customer is missing, so not found must be raised")
	{
		_, err := s.customerSvc.Update(ctx, customer)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(true, nil).Once()

	s.T().Log("deleted successfully")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(false, nil).Once()

	s.T().Log("customer is missing, so not found must be raised")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDFailed() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(false, errors.New("disk I/O error")).Once()

	s.T().Log("delete customer from data source failed")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		s.Assert().Error(err, "data source raised error - error must be raised up")

		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().False(errors.As(err, &notFoundErr), "data source error must not be treated as not found")
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
