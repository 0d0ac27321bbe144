package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/aabiskar/portfolio-backend/internal/model"
)

type MessageRepo struct{ DB *sql.DB }

func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{DB: db} }

// Create inserts a contact message and fills in its generated ID.
func (r *MessageRepo) Create(ctx context.Context, m *model.Message) error {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO messages (id, sender_name, email, subject, message, created_at) VALUES (?,?,?,?,?,?)",
		m.ID, m.SenderName, m.Email, m.Subject, m.Message, m.CreatedAt)
	return err
}

// List returns all messages, newest first.
func (r *MessageRepo) List(ctx context.Context) ([]model.Message, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, sender_name, email, subject, message, created_at FROM messages ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.SenderName, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Delete removes a message; ErrNotFound when no row matched.
func (r *MessageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM messages WHERE id=?", id)
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
