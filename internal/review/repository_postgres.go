package review

import (
	"database/sql"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listReviewsQuery = `
        SELECT r.id, r.user_id, r.product_id, r.rating, r.comment, r.is_verified, r.created_at,
               u.first_name, u.last_name
        FROM reviews r
        JOIN users u ON u.id = r.user_id
        WHERE r.product_id = $1
        ORDER BY r.created_at DESC`

	insertReviewQuery = `
        INSERT INTO reviews (id, user_id, product_id, rating, comment)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, user_id, product_id, rating, comment, is_verified, created_at`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repo *PostgresRepository) ListByProduct(productID string) ([]Review, error) {
	rows, err := repo.db.Query(listReviewsQuery, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var r Review
		var firstName, lastName sql.NullString
		if err := rows.Scan(&r.ID, &r.UserID, &r.ProductID, &r.Rating, &r.Comment, &r.IsVerified, &r.CreatedAt,
			&firstName, &lastName); err != nil {
			return nil, err
		}
		r.AuthorFirstName = firstName.String
		r.AuthorLastName = lastName.String
		out = append(out, r)
	}
	return out, rows.Err()
}

func (repo *PostgresRepository) Create(r Review) (Review, error) {
	row := repo.db.QueryRow(insertReviewQuery, uuid.NewString(), r.UserID, r.ProductID, r.Rating, r.Comment)
	var created Review
	err := row.Scan(&created.ID, &created.UserID, &created.ProductID, &created.Rating,
		&created.Comment, &created.IsVerified, &created.CreatedAt)
	return created, err
}
