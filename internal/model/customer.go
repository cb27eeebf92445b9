package model

// Customer is customer model entity, every field except id is optional
type Customer struct {
	ID      int64   `json:"customer_id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
