package order

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `o.id, o.user_id, o.total_amount, o.status, o.payment_status,
        o.shipping_address, o.notes, o.created_at, o.updated_at,
        u.email, u.first_name, u.last_name`

	orderJoin = ` FROM orders o JOIN users u ON u.id = o.user_id`

	insertOrderQuery = `
        INSERT INTO orders (id, user_id, total_amount, status, payment_status, shipping_address, notes)
        VALUES ($1, $2, $3, 'pending', 'pending', $4, $5)
        RETURNING id, user_id, total_amount, status, payment_status, shipping_address, notes, created_at, updated_at`

	insertOrderItemQuery = `
        INSERT INTO order_items (id, order_id, product_id, quantity, price, is_wholesale)
        VALUES ($1, $2, $3, $4, $5, $6)`

	listOrderItemsQuery = `
        SELECT id, order_id, product_id, quantity, price, is_wholesale
        FROM order_items WHERE order_id = $1`

	updateStatusQuery = `
        UPDATE orders SET status = $2, updated_at = now() WHERE id = $1
        RETURNING id, user_id, total_amount, status, payment_status, shipping_address, notes, created_at, updated_at`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create writes the order and all of its items in a single transaction so a
// failed item insert never leaves a headless order behind.
func (r *PostgresRepository) Create(o Order, items []OrderItem) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	row := tx.QueryRow(insertOrderQuery, uuid.NewString(), o.UserID, o.TotalAmount, o.ShippingAddress, o.Notes)
	created, err := scanOrder(row)
	if err != nil {
		return Order{}, err
	}

	created.Items = make([]OrderItem, len(items))
	for i, it := range items {
		it.ID = uuid.NewString()
		it.OrderID = created.ID
		if _, err := tx.Exec(insertOrderItemQuery, it.ID, it.OrderID, it.ProductID, it.Quantity, it.Price, it.IsWholesale); err != nil {
			return Order{}, err
		}
		created.Items[i] = it
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return created, nil
}

func (r *PostgresRepository) Get(id string) (Order, error) {
	row := r.db.QueryRow(`SELECT `+orderColumns+orderJoin+` WHERE o.id = $1`, id)

	var o Order
	var email, firstName, lastName sql.NullString
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.PaymentStatus,
		&o.ShippingAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		&email, &firstName, &lastName)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	o.CustomerEmail = email.String
	o.CustomerFirstName = firstName.String
	o.CustomerLastName = lastName.String

	if o.Items, err = r.listItems(o.ID); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) List(f Filters) ([]Order, error) {
	conditions := []string{}
	args := []any{}

	if f.Status != "" {
		args = append(args, f.Status)
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", len(args)))
	}

	query := `SELECT ` + orderColumns + orderJoin
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY o.created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		var o Order
		var email, firstName, lastName sql.NullString
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.PaymentStatus,
			&o.ShippingAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
			&email, &firstName, &lastName); err != nil {
			return nil, err
		}
		o.CustomerEmail = email.String
		o.CustomerFirstName = firstName.String
		o.CustomerLastName = lastName.String
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// one items query per order; listings are admin-side and small
	for i := range out {
		items, err := r.listItems(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *PostgresRepository) UpdateStatus(id, status string) (Order, error) {
	row := r.db.QueryRow(updateStatusQuery, id, status)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *PostgresRepository) listItems(orderID string) ([]OrderItem, error) {
	rows, err := r.db.Query(listOrderItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItem, 0)
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.IsWholesale); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanOrder(row *sql.Row) (Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.PaymentStatus,
		&o.ShippingAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}
