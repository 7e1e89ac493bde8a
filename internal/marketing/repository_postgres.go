package marketing

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	messageColumns = `id, type, title, content, target_audience,
        scheduled_at, sent_at, status, generated_by_ai, created_at`

	insertMessageQuery = `
        INSERT INTO marketing_messages (id, type, title, content, target_audience, status, generated_by_ai)
        VALUES ($1, $2, $3, $4, $5, 'draft', $6)
        RETURNING ` + messageColumns

	scheduleMessageQuery = `
        UPDATE marketing_messages SET scheduled_at = $2, status = 'scheduled'
        WHERE id = $1
        RETURNING ` + messageColumns

	markSentQuery = `
        UPDATE marketing_messages SET sent_at = now(), status = 'sent'
        WHERE id = $1
        RETURNING ` + messageColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(f Filters) ([]Message, error) {
	conditions := []string{}
	args := []any{}

	if f.Type != "" {
		args = append(args, f.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + messageColumns + ` FROM marketing_messages`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(m Message) (Message, error) {
	row := r.db.QueryRow(insertMessageQuery,
		uuid.NewString(), m.Type, m.Title, m.Content, m.TargetAudience, m.GeneratedByAI)
	return scanMessage(row)
}

func (r *PostgresRepository) Schedule(id string, at time.Time) (Message, error) {
	m, err := scanMessage(r.db.QueryRow(scheduleMessageQuery, id, at))
	if err == sql.ErrNoRows {
		return Message{}, ErrNotFound
	}
	return m, err
}

func (r *PostgresRepository) MarkSent(id string) (Message, error) {
	m, err := scanMessage(r.db.QueryRow(markSentQuery, id))
	if err == sql.ErrNoRows {
		return Message{}, ErrNotFound
	}
	return m, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.Type, &m.Title, &m.Content, &m.TargetAudience,
		&m.ScheduledAt, &m.SentAt, &m.Status, &m.GeneratedByAI, &m.CreatedAt)
	return m, err
}
