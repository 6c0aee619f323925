package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

type responseRepository struct {
	db *sql.DB
}

func NewResponseRepository(db *sql.DB) ports.ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(ctx context.Context, resp *domain.Response) error {
	query := `
		INSERT INTO responses (announcement_id, responding_user_id, message, time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, resp.AnnouncementID, resp.RespondingUserID, resp.Message, resp.Time).Scan(&resp.ID)
	if err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}
	return nil
}

func (r *responseRepository) GetByAnnouncement(ctx context.Context, announcementID int64) ([]domain.Response, error) {
	query := `
		SELECT id, announcement_id, responding_user_id, message, time
		FROM responses
		WHERE announcement_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, announcementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get responses by announcement: %w", err)
	}
	defer rows.Close()

	return r.scanResponses(rows)
}

func (r *responseRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Response, error) {
	query := `
		SELECT id, announcement_id, responding_user_id, message, time
		FROM responses
		WHERE responding_user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get responses by user: %w", err)
	}
	defer rows.Close()

	return r.scanResponses(rows)
}

func (r *responseRepository) scanResponses(rows *sql.Rows) ([]domain.Response, error) {
	var responses []domain.Response
	for rows.Next() {
		var resp domain.Response
		if err := rows.Scan(&resp.ID, &resp.AnnouncementID, &resp.RespondingUserID, &resp.Message, &resp.Time); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responses: %w", err)
	}
	return responses, nil
}
