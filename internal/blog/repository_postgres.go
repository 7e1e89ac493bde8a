package blog

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	postColumns = `id, title, title_uz, title_ru, title_en,
        content, content_uz, content_ru, content_en,
        slug, tags, is_published, published_at, featured_image,
        meta_description, generated_by_ai, created_at, updated_at`

	insertPostQuery = `
        INSERT INTO blog_posts (id, title, title_uz, title_ru, title_en,
            content, content_uz, content_ru, content_en,
            slug, tags, featured_image, meta_description, generated_by_ai)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        RETURNING ` + postColumns

	updatePostQuery = `
        UPDATE blog_posts SET
            title = $1, title_uz = $2, title_ru = $3, title_en = $4,
            content = $5, content_uz = $6, content_ru = $7, content_en = $8,
            slug = $9, tags = $10, featured_image = $11, meta_description = $12,
            updated_at = now()
        WHERE id = $13
        RETURNING ` + postColumns

	publishPostQuery = `
        UPDATE blog_posts SET is_published = TRUE, published_at = now(), updated_at = now()
        WHERE id = $1
        RETURNING ` + postColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(f Filters) ([]Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts`
	args := []any{}
	if f.PublishedOnly {
		query += ` WHERE is_published = TRUE`
	}
	query += ` ORDER BY created_at DESC`
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

	out := make([]Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Get(id string) (Post, error) {
	row := r.db.QueryRow(`SELECT `+postColumns+` FROM blog_posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return Post{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(p Post) (Post, error) {
	row := r.db.QueryRow(insertPostQuery,
		uuid.NewString(), p.Title, p.TitleUz, p.TitleRu, p.TitleEn,
		p.Content, p.ContentUz, p.ContentRu, p.ContentEn,
		p.Slug, pq.Array(p.Tags), p.FeaturedImage, p.MetaDescription, p.GeneratedByAI)
	created, err := scanPost(row)
	if isUniqueViolation(err) {
		return Post{}, ErrSlugExists
	}
	return created, err
}

func (r *PostgresRepository) Update(id string, p Post) (Post, error) {
	row := r.db.QueryRow(updatePostQuery,
		p.Title, p.TitleUz, p.TitleRu, p.TitleEn,
		p.Content, p.ContentUz, p.ContentRu, p.ContentEn,
		p.Slug, pq.Array(p.Tags), p.FeaturedImage, p.MetaDescription, id)
	updated, err := scanPost(row)
	if err == sql.ErrNoRows {
		return Post{}, ErrNotFound
	}
	if isUniqueViolation(err) {
		return Post{}, ErrSlugExists
	}
	return updated, err
}

func (r *PostgresRepository) Publish(id string) (Post, error) {
	row := r.db.QueryRow(publishPostQuery, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return Post{}, ErrNotFound
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.TitleUz, &p.TitleRu, &p.TitleEn,
		&p.Content, &p.ContentUz, &p.ContentRu, &p.ContentEn,
		&p.Slug, pq.Array(&p.Tags), &p.IsPublished, &p.PublishedAt,
		&p.FeaturedImage, &p.MetaDescription, &p.GeneratedByAI,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}
