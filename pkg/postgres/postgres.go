package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/bookmybox/backend/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL,
			is_admin BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS boxes (
			id SERIAL PRIMARY KEY,
			owner_id INTEGER REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			sport VARCHAR(100) NOT NULL,
			location VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			rating NUMERIC(3,2) DEFAULT 0.0,
			capacity INTEGER DEFAULT 1,
			status VARCHAR(10) DEFAULT 'pending',
			rejection_reason TEXT DEFAULT '',
			description TEXT DEFAULT '',
			is_featured BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			box_id INTEGER NOT NULL REFERENCES boxes(id),
			user_id INTEGER NOT NULL REFERENCES users(id),
			date DATE NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			duration INTEGER NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL,
			payment_status VARCHAR(50) DEFAULT 'Pending',
			booking_status VARCHAR(50) DEFAULT 'Confirmed',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			box_id INTEGER NOT NULL REFERENCES boxes(id),
			user_id INTEGER NOT NULL REFERENCES users(id),
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// The slot-uniqueness guarantee: at most one Confirmed booking may
		// hold a (box, date, start_time) key. Cancelled rows keep their key
		// free for rebooking, hence the partial index.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot_unique
			ON bookings(box_id, date, start_time)
			WHERE booking_status = 'Confirmed'`,

		`CREATE INDEX IF NOT EXISTS idx_bookings_box_date ON bookings(box_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_boxes_status ON boxes(status)`,
		`CREATE INDEX IF NOT EXISTS idx_boxes_owner_id ON boxes(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_box_id ON reviews(box_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
