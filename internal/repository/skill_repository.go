package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aabiskar/portfolio-backend/internal/model"
)

type SkillRepo struct{ DB *sql.DB }

func NewSkillRepo(db *sql.DB) *SkillRepo { return &SkillRepo{DB: db} }

const skillCols = "id, title, proficiency, svg_public_id, svg_url, created_at, updated_at"

// Create inserts a skill and fills in its generated ID.
func (r *SkillRepo) Create(ctx context.Context, s *model.Skill) error {
	s.ID = uuid.NewString()
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO skills (id, title, proficiency, svg_public_id, svg_url, created_at, updated_at) VALUES (?,?,?,?,?,?,?)",
		s.ID, s.Title, s.Proficiency, s.Svg.PublicID, s.Svg.URL, s.CreatedAt, s.UpdatedAt)
	return err
}

// List returns all skills in insertion order.
func (r *SkillRepo) List(ctx context.Context) ([]model.Skill, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+skillCols+" FROM skills ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Skill{}
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Title, &s.Proficiency, &s.Svg.PublicID, &s.Svg.URL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID fetches one skill or ErrNotFound.
func (r *SkillRepo) GetByID(ctx context.Context, id string) (model.Skill, error) {
	var s model.Skill
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+skillCols+" FROM skills WHERE id=? LIMIT 1",
		id).Scan(&s.ID, &s.Title, &s.Proficiency, &s.Svg.PublicID, &s.Svg.URL, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Skill{}, ErrNotFound
	}
	return s, err
}

// Update persists a merged skill record.
func (r *SkillRepo) Update(ctx context.Context, s *model.Skill) error {
	s.UpdatedAt = time.Now().UTC()
	res, err := r.DB.ExecContext(ctx,
		"UPDATE skills SET title=?, proficiency=?, svg_public_id=?, svg_url=?, updated_at=? WHERE id=?",
		s.Title, s.Proficiency, s.Svg.PublicID, s.Svg.URL, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a skill; ErrNotFound when no row matched.
func (r *SkillRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM skills WHERE id=?", id)
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
