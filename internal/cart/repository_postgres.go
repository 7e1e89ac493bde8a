package cart

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/uzmarket/bazaar-backend/internal/product"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	cartColumns = `id, user_id, product_id, quantity, is_wholesale, created_at`

	listCartQuery = `
        SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.is_wholesale, ci.created_at,
               p.id, p.name, p.name_uz, p.name_ru, p.name_en,
               p.description, p.description_uz, p.description_ru, p.description_en,
               p.category_id, p.retail_price, p.wholesale_price, p.wholesale_min_quantity,
               p.stock_quantity, p.images, p.video_url, p.rating, p.review_count,
               p.is_active, p.is_featured, p.is_new, p.created_at, p.updated_at
        FROM cart_items ci
        JOIN products p ON p.id = ci.product_id
        WHERE ci.user_id = $1
        ORDER BY ci.created_at DESC`

	// Merge-on-conflict keeps concurrent adds of the same line additive instead
	// of last-write-wins.
	addToCartQuery = `
        INSERT INTO cart_items (id, user_id, product_id, quantity, is_wholesale)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id, product_id, is_wholesale)
        DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
        RETURNING ` + cartColumns

	updateQuantityQuery = `
        UPDATE cart_items SET quantity = $2 WHERE id = $1
        RETURNING ` + cartColumns

	removeItemQuery = `DELETE FROM cart_items WHERE id = $1`
	clearCartQuery  = `DELETE FROM cart_items WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID string) ([]CartItem, error) {
	rows, err := r.db.Query(listCartQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CartItem, 0)
	for rows.Next() {
		var it CartItem
		var p product.Product
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.IsWholesale, &it.CreatedAt,
			&p.ID, &p.Name, &p.NameUz, &p.NameRu, &p.NameEn,
			&p.Description, &p.DescriptionUz, &p.DescriptionRu, &p.DescriptionEn,
			&p.CategoryID, &p.RetailPrice, &p.WholesalePrice, &p.WholesaleMinQuantity,
			&p.StockQuantity, pq.Array(&p.Images), &p.VideoURL, &p.Rating, &p.ReviewCount,
			&p.IsActive, &p.IsFeatured, &p.IsNew, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		it.Product = &p
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Add(item CartItem) (CartItem, error) {
	row := r.db.QueryRow(addToCartQuery, uuid.NewString(), item.UserID, item.ProductID, item.Quantity, item.IsWholesale)
	return scanCartItem(row)
}

func (r *PostgresRepository) UpdateQuantity(id string, quantity int) (CartItem, error) {
	row := r.db.QueryRow(updateQuantityQuery, id, quantity)
	item, err := scanCartItem(row)
	if err == sql.ErrNoRows {
		return CartItem{}, ErrNotFound
	}
	return item, err
}

func (r *PostgresRepository) Remove(id string) error {
	res, err := r.db.Exec(removeItemQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Clear(userID string) error {
	_, err := r.db.Exec(clearCartQuery, userID)
	return err
}

func scanCartItem(row *sql.Row) (CartItem, error) {
	var it CartItem
	err := row.Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.IsWholesale, &it.CreatedAt)
	return it, err
}
