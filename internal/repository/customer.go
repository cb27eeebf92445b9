package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/umalmyha/customers-sqlite/internal/model"
)

// CustomerRepository represents behavior of customer data source
type CustomerRepository interface {
	FindByID(context.Context, int64) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	Create(context.Context, *model.Customer) error
	Update(context.Context, *model.Customer) (bool, error)
	DeleteByID(context.Context, int64) (bool, error)
}

type sqliteCustomerRepository struct {
	db *sql.DB
}

// NewSqliteCustomerRepository builds sqlite customer repository
func NewSqliteCustomerRepository(db *sql.DB) CustomerRepository {
	return &sqliteCustomerRepository{db: db}
}

func (r *sqliteCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	q := "SELECT customer_id, name, email, phone, address FROM customers WHERE customer_id = ?"

	var c model.Customer
	row := r.db.QueryRowContext(ctx, q, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *sqliteCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q := "SELECT customer_id, name, email, phone, address FROM customers"

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

// Create inserts customer and assigns id generated by the store
func (r *sqliteCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := "INSERT INTO customers(name, email, phone, address) VALUES(?, ?, ?, ?)"

	res, err := r.db.ExecContext(ctx, q, c.Name, c.Email, c.Phone, c.Address)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}

func (r *sqliteCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	q := "UPDATE customers SET name = ?, email = ?, phone = ?, address = ? WHERE customer_id = ?"

	res, err := r.db.ExecContext(ctx, q, c.Name, c.Email, c.Phone, c.Address, c.ID)
	if err != nil {
		return false, err
	}
	return r.affected(res)
}

func (r *sqliteCustomerRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	q := "DELETE FROM customers WHERE customer_id = ?"

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	return r.affected(res)
}

func (r *sqliteCustomerRepository) affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
