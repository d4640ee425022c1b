package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"miniEvents/internal/config"
	"miniEvents/internal/models"
	"miniEvents/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Put(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (
			id, title, description, date, location, image_url,
			creator_fid, creator_name, creator_address, attendees,
			category, max_attendees, price, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			date = EXCLUDED.date,
			location = EXCLUDED.location,
			image_url = EXCLUDED.image_url,
			creator_name = EXCLUDED.creator_name,
			creator_address = EXCLUDED.creator_address,
			attendees = EXCLUDED.attendees,
			category = EXCLUDED.category,
			max_attendees = EXCLUDED.max_attendees,
			price = EXCLUDED.price`

	_, err := s.DB.ExecContext(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Date,
		event.Location,
		event.ImageURL,
		event.CreatorFid,
		event.CreatorName,
		event.CreatorAddress,
		pq.Array(event.Attendees),
		event.Category,
		event.MaxAttendees,
		event.Price,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put event: %w", err)
	}

	return nil
}

func (s *Storage) Get(ctx context.Context, id string) (*models.Event, error) {
	query := `
		SELECT id, title, description, date, location, image_url,
		       creator_fid, creator_name, creator_address, attendees,
		       category, max_attendees, price, created_at
		FROM events
		WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) List(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, title, description, date, location, image_url,
		       creator_fid, creator_name, creator_address, attendees,
		       category, max_attendees, price, created_at
		FROM events
		ORDER BY date ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var event models.Event
	var attendees pq.Int64Array

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Location,
		&event.ImageURL,
		&event.CreatorFid,
		&event.CreatorName,
		&event.CreatorAddress,
		&attendees,
		&event.Category,
		&event.MaxAttendees,
		&event.Price,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.Attendees = make([]int64, len(attendees))
	copy(event.Attendees, attendees)

	return &event, nil
}
