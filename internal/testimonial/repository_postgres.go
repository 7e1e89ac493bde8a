package testimonial

import (
	"database/sql"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	testimonialColumns = `id, name, name_uz, name_ru, name_en,
        position, position_uz, position_ru, position_en,
        content, content_uz, content_ru, content_en,
        rating, avatar_url, is_active, created_at`

	listActiveQuery = `SELECT ` + testimonialColumns + `
        FROM testimonials WHERE is_active = TRUE ORDER BY created_at DESC`

	insertTestimonialQuery = `
        INSERT INTO testimonials (id, name, name_uz, name_ru, name_en,
            position, position_uz, position_ru, position_en,
            content, content_uz, content_ru, content_en, rating, avatar_url, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING ` + testimonialColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive() ([]Testimonial, error) {
	rows, err := r.db.Query(listActiveQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Testimonial, 0)
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.NameUz, &t.NameRu, &t.NameEn,
			&t.Position, &t.PositionUz, &t.PositionRu, &t.PositionEn,
			&t.Content, &t.ContentUz, &t.ContentRu, &t.ContentEn,
			&t.Rating, &t.AvatarURL, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(t Testimonial) (Testimonial, error) {
	row := r.db.QueryRow(insertTestimonialQuery,
		uuid.NewString(), t.Name, t.NameUz, t.NameRu, t.NameEn,
		t.Position, t.PositionUz, t.PositionRu, t.PositionEn,
		t.Content, t.ContentUz, t.ContentRu, t.ContentEn,
		t.Rating, t.AvatarURL, t.IsActive)

	var created Testimonial
	err := row.Scan(&created.ID, &created.Name, &created.NameUz, &created.NameRu, &created.NameEn,
		&created.Position, &created.PositionUz, &created.PositionRu, &created.PositionEn,
		&created.Content, &created.ContentUz, &created.ContentRu, &created.ContentEn,
		&created.Rating, &created.AvatarURL, &created.IsActive, &created.CreatedAt)
	return created, err
}
