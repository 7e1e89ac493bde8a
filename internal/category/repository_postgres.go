package category

import (
	"database/sql"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesQuery = `
		SELECT id, name, name_uz, name_ru, name_en, icon, parent_id, created_at
		FROM categories
		ORDER BY name ASC
	`
	insertCategoryQuery = `
		INSERT INTO categories (id, name, name_uz, name_ru, name_en, icon, parent_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, name, name_uz, name_ru, name_en, icon, parent_id, created_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(c Category) (Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	row := r.db.QueryRow(insertCategoryQuery, c.ID, c.Name, c.NameUz, c.NameRu, c.NameEn, c.Icon, c.ParentID)
	return scanCategory(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (Category, error) {
	var (
		c      Category
		icon   sql.NullString
		parent sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &c.NameUz, &c.NameRu, &c.NameEn, &icon, &parent, &c.CreatedAt); err != nil {
		return Category{}, err
	}
	if icon.Valid {
		c.Icon = &icon.String
	}
	if parent.Valid {
		c.ParentID = &parent.String
	}
	return c, nil
}
