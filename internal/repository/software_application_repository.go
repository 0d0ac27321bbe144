package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aabiskar/portfolio-backend/internal/model"
)

type SoftwareApplicationRepo struct{ DB *sql.DB }

func NewSoftwareApplicationRepo(db *sql.DB) *SoftwareApplicationRepo {
	return &SoftwareApplicationRepo{DB: db}
}

// Create inserts a software application and fills in its generated ID.
func (r *SoftwareApplicationRepo) Create(ctx context.Context, a *model.SoftwareApplication) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO software_applications (id, name, svg_public_id, svg_url, created_at) VALUES (?,?,?,?,?)",
		a.ID, a.Name, a.Svg.PublicID, a.Svg.URL, a.CreatedAt)
	return err
}

// List returns all software applications in insertion order.
func (r *SoftwareApplicationRepo) List(ctx context.Context) ([]model.SoftwareApplication, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, svg_public_id, svg_url, created_at FROM software_applications ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.SoftwareApplication{}
	for rows.Next() {
		var a model.SoftwareApplication
		if err := rows.Scan(&a.ID, &a.Name, &a.Svg.PublicID, &a.Svg.URL, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID fetches one software application or ErrNotFound.
func (r *SoftwareApplicationRepo) GetByID(ctx context.Context, id string) (model.SoftwareApplication, error) {
	var a model.SoftwareApplication
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, svg_public_id, svg_url, created_at FROM software_applications WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Name, &a.Svg.PublicID, &a.Svg.URL, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SoftwareApplication{}, ErrNotFound
	}
	return a, err
}

// Delete removes a software application; ErrNotFound when no row matched.
func (r *SoftwareApplicationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM software_applications WHERE id=?", id)
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
