package db

import "database/sql"

// schema contains every table the application needs. Statements are idempotent
// so startup can run them unconditionally.
//
// cart_items carries a unique index over (user_id, product_id, is_wholesale):
// adding an existing combination must increment the row, never duplicate it,
// and the index lets the repository express that as a single atomic upsert.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR PRIMARY KEY,
		email VARCHAR UNIQUE,
		password VARCHAR,
		first_name VARCHAR,
		last_name VARCHAR,
		profile_image_url VARCHAR,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id VARCHAR PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		name_uz VARCHAR(255) NOT NULL,
		name_ru VARCHAR(255) NOT NULL,
		name_en VARCHAR(255) NOT NULL,
		icon VARCHAR(100),
		parent_id VARCHAR,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		name_uz VARCHAR(255) NOT NULL,
		name_ru VARCHAR(255) NOT NULL,
		name_en VARCHAR(255) NOT NULL,
		description TEXT,
		description_uz TEXT,
		description_ru TEXT,
		description_en TEXT,
		category_id VARCHAR NOT NULL,
		retail_price NUMERIC(10,2) NOT NULL,
		wholesale_price NUMERIC(10,2) NOT NULL,
		wholesale_min_quantity INT NOT NULL DEFAULT 10,
		stock_quantity INT NOT NULL DEFAULT 0,
		images TEXT[],
		video_url VARCHAR,
		rating NUMERIC(3,2) NOT NULL DEFAULT 0,
		review_count INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		is_new BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id VARCHAR PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		product_id VARCHAR NOT NULL,
		quantity INT NOT NULL,
		is_wholesale BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, product_id, is_wholesale)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id VARCHAR PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		product_id VARCHAR NOT NULL,
		rating INT NOT NULL,
		comment TEXT,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id VARCHAR PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		name_uz VARCHAR(255) NOT NULL,
		name_ru VARCHAR(255) NOT NULL,
		name_en VARCHAR(255) NOT NULL,
		position VARCHAR(255),
		position_uz VARCHAR(255),
		position_ru VARCHAR(255),
		position_en VARCHAR(255),
		content TEXT NOT NULL,
		content_uz TEXT NOT NULL,
		content_ru TEXT NOT NULL,
		content_en TEXT NOT NULL,
		rating INT NOT NULL DEFAULT 5,
		avatar_url VARCHAR,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		total_amount NUMERIC(10,2) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		payment_status VARCHAR(50) NOT NULL DEFAULT 'pending',
		shipping_address TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id VARCHAR PRIMARY KEY,
		order_id VARCHAR NOT NULL,
		product_id VARCHAR NOT NULL,
		quantity INT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		is_wholesale BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id VARCHAR PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		title_uz VARCHAR(500) NOT NULL,
		title_ru VARCHAR(500) NOT NULL,
		title_en VARCHAR(500) NOT NULL,
		content TEXT NOT NULL,
		content_uz TEXT NOT NULL,
		content_ru TEXT NOT NULL,
		content_en TEXT NOT NULL,
		slug VARCHAR(500) NOT NULL UNIQUE,
		tags TEXT[],
		is_published BOOLEAN NOT NULL DEFAULT FALSE,
		published_at TIMESTAMPTZ,
		featured_image VARCHAR,
		meta_description TEXT,
		generated_by_ai BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS seo_settings (
		id VARCHAR PRIMARY KEY,
		google_analytics_id VARCHAR,
		meta_pixel_id VARCHAR,
		custom_head_code TEXT,
		site_name VARCHAR,
		site_description TEXT,
		site_keywords TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS marketing_messages (
		id VARCHAR PRIMARY KEY,
		type VARCHAR(50) NOT NULL,
		title VARCHAR(500),
		content TEXT NOT NULL,
		target_audience VARCHAR(100),
		scheduled_at TIMESTAMPTZ,
		sent_at TIMESTAMPTZ,
		status VARCHAR(50) NOT NULL DEFAULT 'draft',
		generated_by_ai BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id VARCHAR PRIMARY KEY,
		user_id VARCHAR NOT NULL UNIQUE,
		role VARCHAR(50) NOT NULL DEFAULT 'admin',
		permissions TEXT[],
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates all tables if they do not exist yet.
func Migrate(conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
