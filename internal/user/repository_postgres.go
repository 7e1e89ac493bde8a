package user

import (
	"database/sql"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	selectUserColumns = `id, email, password, first_name, last_name, profile_image_url, created_at, updated_at`

	upsertUserQuery = `
		INSERT INTO users (id, email, password, first_name, last_name, profile_image_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,now(),now())
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = now()
		RETURNING ` + selectUserColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id string) (User, error) {
	row := r.db.QueryRow(`SELECT `+selectUserColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	row := r.db.QueryRow(`SELECT `+selectUserColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresRepository) Upsert(u User) (User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	row := r.db.QueryRow(upsertUserQuery, u.ID, u.Email, u.Password, u.FirstName, u.LastName, u.ProfileImageURL)
	return scanUser(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var (
		u        User
		password sql.NullString
		img      sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &password, &u.FirstName, &u.LastName, &img, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if password.Valid {
		u.Password = password.String
	}
	if img.Valid {
		u.ProfileImageURL = &img.String
	}
	return u, nil
}
