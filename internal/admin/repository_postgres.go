package admin

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	isAdminQuery = `SELECT EXISTS (
        SELECT 1 FROM admin_users WHERE user_id = $1 AND is_active = TRUE)`

	insertAdminQuery = `
        INSERT INTO admin_users (id, user_id, role, permissions)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, role, permissions, is_active, created_at`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) IsAdmin(userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(isAdminQuery, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) Create(a AdminUser) (AdminUser, error) {
	if a.Role == "" {
		a.Role = RoleAdmin
	}
	row := r.db.QueryRow(insertAdminQuery, uuid.NewString(), a.UserID, a.Role, pq.Array(a.Permissions))

	var created AdminUser
	err := row.Scan(&created.ID, &created.UserID, &created.Role,
		pq.Array(&created.Permissions), &created.IsActive, &created.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return AdminUser{}, ErrAlreadyAdmin
	}
	return created, err
}
