package seo

import (
	"database/sql"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	settingsColumns = `id, google_analytics_id, meta_pixel_id, custom_head_code,
        site_name, site_description, site_keywords, updated_at`

	getSettingsQuery = `SELECT ` + settingsColumns + ` FROM seo_settings LIMIT 1`

	insertSettingsQuery = `
        INSERT INTO seo_settings (id, google_analytics_id, meta_pixel_id, custom_head_code,
            site_name, site_description, site_keywords)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING ` + settingsColumns

	updateSettingsQuery = `
        UPDATE seo_settings SET google_analytics_id = $2, meta_pixel_id = $3,
            custom_head_code = $4, site_name = $5, site_description = $6,
            site_keywords = $7, updated_at = now()
        WHERE id = $1
        RETURNING ` + settingsColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get() (Settings, error) {
	s, err := scanSettings(r.db.QueryRow(getSettingsQuery))
	if err == sql.ErrNoRows {
		return Settings{}, nil
	}
	return s, err
}

// Upsert reads and writes inside one transaction so two concurrent saves
// cannot both take the insert branch.
func (r *PostgresRepository) Upsert(s Settings) (Settings, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Settings{}, err
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRow(`SELECT id FROM seo_settings LIMIT 1 FOR UPDATE`).Scan(&existingID)
	switch {
	case err == sql.ErrNoRows:
		row := tx.QueryRow(insertSettingsQuery, uuid.NewString(),
			s.GoogleAnalyticsID, s.MetaPixelID, s.CustomHeadCode,
			s.SiteName, s.SiteDescription, s.SiteKeywords)
		if s, err = scanSettings(row); err != nil {
			return Settings{}, err
		}
	case err != nil:
		return Settings{}, err
	default:
		row := tx.QueryRow(updateSettingsQuery, existingID,
			s.GoogleAnalyticsID, s.MetaPixelID, s.CustomHeadCode,
			s.SiteName, s.SiteDescription, s.SiteKeywords)
		if s, err = scanSettings(row); err != nil {
			return Settings{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSettings(row rowScanner) (Settings, error) {
	var s Settings
	err := row.Scan(&s.ID, &s.GoogleAnalyticsID, &s.MetaPixelID, &s.CustomHeadCode,
		&s.SiteName, &s.SiteDescription, &s.SiteKeywords, &s.UpdatedAt)
	return s, err
}
