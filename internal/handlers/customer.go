package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customers-sqlite/internal/model"
	"github.com/umalmyha/customers-sqlite/internal/service"
)

type identifier struct {
	ID string `param:"id" validate:"required,numeric"`
}

type customerPayload struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type message struct {
	Message string `json:"message"`
}

type newCustomerID struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"customer_id"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id
// @Tags        customers
// @Produce     json
// @Param       id     path     int true "Customer id"
// @Success     200    {object} model.Customer
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} message
// @Failure     500    {object} echo.HTTPError
// @Router      /customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id, err := h.customerID(c)
	if err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns all customers in the order they are stored
// @Tags        customers
// @Produce     json
// @Success     200    {array}  model.Customer
// @Failure     500    {object} echo.HTTPError
// @Router      /customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Post creates new customer
// @Summary     New customer
// @Description Creates new customer, omitted fields are stored as null
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       customer body     customerPayload true "Data for new customer"
// @Success     200      {object} newCustomerID
// @Failure     400      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var p customerPayload
	if err := c.Bind(&p); err != nil {
		return payloadBindErr(err)
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), p.customer(0))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &newCustomerID{
		Message:    "Customer created",
		CustomerID: customer.ID,
	})
}

// Put updates customer
// @Summary     Update customer
// @Description Replaces all customer fields, omitted fields are overwritten with null
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       id       path     int             true "Customer id"
// @Param       customer body     customerPayload true "Customer data"
// @Success     200      {object} message
// @Failure     400      {object} echo.HTTPError
// @Failure     404      {object} message
// @Failure     500      {object} echo.HTTPError
// @Router      /customers/{id} [put]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	id, err := h.customerID(c)
	if err != nil {
		return err
	}

	var p customerPayload
	if err := c.Bind(&p); err != nil {
		return payloadBindErr(err)
	}

	if _, err := h.customerSvc.Update(c.Request().Context(), p.customer(id)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &message{Message: "Customer updated"})
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer with provided id
// @Tags        customers
// @Produce     json
// @Param       id     path     int true "Customer id"
// @Success     200    {object} message
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} message
// @Failure     500    {object} echo.HTTPError
// @Router      /customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	id, err := h.customerID(c)
	if err != nil {
		return err
	}

	if err := h.customerSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &message{Message: "Customer deleted"})
}

func (h *CustomerHTTPHandler) customerID(c echo.Context) (int64, error) {
	param := c.Param("id")
	if err := c.Validate(&identifier{ID: param}); err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "customer id must be an integer")
	}
	return id, nil
}

// payloadBindErr keeps binder's 415 for foreign content types, everything else is a malformed body
func payloadBindErr(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
		return httpErr
	}
	return echo.NewHTTPError(http.StatusBadRequest, "malformed customer payload")
}

func (p *customerPayload) customer(id int64) *model.Customer {
	return &model.Customer{
		ID:      id,
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
	}
}
