package product

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `id, name, name_uz, name_ru, name_en,
		description, description_uz, description_ru, description_en,
		category_id, retail_price, wholesale_price, wholesale_min_quantity,
		stock_quantity, images, video_url, rating, review_count,
		is_active, is_featured, is_new, created_at, updated_at`

	insertProductQuery = `
		INSERT INTO products (id, name, name_uz, name_ru, name_en,
			description, description_uz, description_ru, description_en,
			category_id, retail_price, wholesale_price, wholesale_min_quantity,
			stock_quantity, images, video_url, is_featured, is_new)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING ` + productColumns

	updateProductQuery = `
		UPDATE products SET
			name = $1, name_uz = $2, name_ru = $3, name_en = $4,
			description = $5, description_uz = $6, description_ru = $7, description_en = $8,
			category_id = $9, retail_price = $10, wholesale_price = $11,
			wholesale_min_quantity = $12, stock_quantity = $13, images = $14,
			video_url = $15, is_active = $16, is_featured = $17, is_new = $18,
			updated_at = now()
		WHERE id = $19
		RETURNING ` + productColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List composes the WHERE clause from the filters. Inactive products are
// always excluded; Limit <= 0 means no LIMIT clause at all.
func (r *PostgresRepository) List(f Filters) ([]Product, error) {
	conditions := []string{"is_active = TRUE"}
	args := []any{}

	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if f.Featured {
		conditions = append(conditions, "is_featured = TRUE")
	}
	if f.IsNew {
		conditions = append(conditions, "is_new = TRUE")
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC`
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

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	row := r.db.QueryRow(insertProductQuery,
		p.ID, p.Name, p.NameUz, p.NameRu, p.NameEn,
		p.Description, p.DescriptionUz, p.DescriptionRu, p.DescriptionEn,
		p.CategoryID, p.RetailPrice, p.WholesalePrice, p.WholesaleMinQuantity,
		p.StockQuantity, pq.Array(p.Images), p.VideoURL, p.IsFeatured, p.IsNew,
	)
	return scanProduct(row)
}

func (r *PostgresRepository) Update(id string, p Product) (Product, error) {
	row := r.db.QueryRow(updateProductQuery,
		p.Name, p.NameUz, p.NameRu, p.NameEn,
		p.Description, p.DescriptionUz, p.DescriptionRu, p.DescriptionEn,
		p.CategoryID, p.RetailPrice, p.WholesalePrice, p.WholesaleMinQuantity,
		p.StockQuantity, pq.Array(p.Images), p.VideoURL, p.IsActive, p.IsFeatured, p.IsNew,
		id,
	)
	updated, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return updated, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p                                  Product
		desc, descUz, descRu, descEn, vurl sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.NameUz, &p.NameRu, &p.NameEn,
		&desc, &descUz, &descRu, &descEn,
		&p.CategoryID, &p.RetailPrice, &p.WholesalePrice, &p.WholesaleMinQuantity,
		&p.StockQuantity, pq.Array(&p.Images), &vurl, &p.Rating, &p.ReviewCount,
		&p.IsActive, &p.IsFeatured, &p.IsNew, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return Product{}, err
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	if descUz.Valid {
		p.DescriptionUz = &descUz.String
	}
	if descRu.Valid {
		p.DescriptionRu = &descRu.String
	}
	if descEn.Valid {
		p.DescriptionEn = &descEn.String
	}
	if vurl.Valid {
		p.VideoURL = &vurl.String
	}
	return p, nil
}
