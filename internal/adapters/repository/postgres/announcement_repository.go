package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

type announcementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) ports.AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	query := `
		INSERT INTO announcements (user_id, item, place, time, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, a.UserID, a.Item, a.Place, a.Time, a.Type).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to insert announcement: %w", err)
	}
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id int64) (*domain.Announcement, error) {
	query := `SELECT id, user_id, item, place, time, type FROM announcements WHERE id = $1`
	var a domain.Announcement
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.UserID, &a.Item, &a.Place, &a.Time, &a.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return &a, nil
}

func (r *announcementRepository) GetAll(ctx context.Context) ([]domain.Announcement, error) {
	query := `SELECT id, user_id, item, place, time, type FROM announcements ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	return r.scanAnnouncements(rows)
}

func (r *announcementRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Announcement, error) {
	query := `SELECT id, user_id, item, place, time, type FROM announcements WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get announcements by user: %w", err)
	}
	defer rows.Close()

	return r.scanAnnouncements(rows)
}

func (r *announcementRepository) GetByType(ctx context.Context, itemType bool) ([]domain.Announcement, error) {
	query := `SELECT id, user_id, item, place, time, type FROM announcements WHERE type = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, itemType)
	if err != nil {
		return nil, fmt.Errorf("failed to get announcements by type: %w", err)
	}
	defer rows.Close()

	return r.scanAnnouncements(rows)
}

func (r *announcementRepository) scanAnnouncements(rows *sql.Rows) ([]domain.Announcement, error) {
	var announcements []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Item, &a.Place, &a.Time, &a.Type); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcements: %w", err)
	}
	return announcements, nil
}
