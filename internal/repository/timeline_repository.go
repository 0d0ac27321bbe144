package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/aabiskar/portfolio-backend/internal/model"
)

type TimelineRepo struct{ DB *sql.DB }

func NewTimelineRepo(db *sql.DB) *TimelineRepo { return &TimelineRepo{DB: db} }

// Create inserts a timeline entry and fills in its generated ID.
func (r *TimelineRepo) Create(ctx context.Context, t *model.Timeline) error {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO timelines (id, title, description, time_from, time_to, created_at) VALUES (?,?,?,?,?,?)",
		t.ID, t.Title, t.Description, t.Timeline.From, t.Timeline.To, t.CreatedAt)
	return err
}

// List returns all timeline entries, newest first.
func (r *TimelineRepo) List(ctx context.Context) ([]model.Timeline, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, title, description, time_from, time_to, created_at FROM timelines ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Timeline{}
	for rows.Next() {
		var t model.Timeline
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Timeline.From, &t.Timeline.To, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Delete removes a timeline entry; ErrNotFound when no row matched.
func (r *TimelineRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM timelines WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
