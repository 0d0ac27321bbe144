package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aabiskar/portfolio-backend/internal/model"
)

type ProjectRepo struct{ DB *sql.DB }

func NewProjectRepo(db *sql.DB) *ProjectRepo { return &ProjectRepo{DB: db} }

const projectCols = "id, title, description, git_repo_link, project_link, technologies, stack, deployed, banner_public_id, banner_url, created_at, updated_at"

// Create inserts a project and fills in its generated ID.
func (r *ProjectRepo) Create(ctx context.Context, p *model.Project) error {
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now

	tech, err := json.Marshal(p.Technologies)
	if err != nil {
		return err
	}
	stack, err := json.Marshal(p.Stack)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO projects (id, title, description, git_repo_link, project_link, technologies, stack, deployed, banner_public_id, banner_url, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)",
		p.ID, p.Title, p.Description, p.GitRepoLink, p.ProjectLink, tech, stack, p.Deployed,
		p.ProjectBanner.PublicID, p.ProjectBanner.URL, p.CreatedAt, p.UpdatedAt)
	return err
}

// List returns all projects, newest first.
func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+projectCols+" FROM projects ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches one project or ErrNotFound.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (model.Project, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+projectCols+" FROM projects WHERE id=? LIMIT 1", id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, ErrNotFound
	}
	return p, err
}

// Update persists a merged project record.
func (r *ProjectRepo) Update(ctx context.Context, p *model.Project) error {
	p.UpdatedAt = time.Now().UTC()

	tech, err := json.Marshal(p.Technologies)
	if err != nil {
		return err
	}
	stack, err := json.Marshal(p.Stack)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE projects SET title=?, description=?, git_repo_link=?, project_link=?, technologies=?, stack=?, deployed=?, banner_public_id=?, banner_url=?, updated_at=? WHERE id=?",
		p.Title, p.Description, p.GitRepoLink, p.ProjectLink, tech, stack, p.Deployed,
		p.ProjectBanner.PublicID, p.ProjectBanner.URL, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a project; ErrNotFound when no row matched.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM projects WHERE id=?", id)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	var tech, stack []byte
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.GitRepoLink, &p.ProjectLink,
		&tech, &stack, &p.Deployed, &p.ProjectBanner.PublicID, &p.ProjectBanner.URL,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Project{}, err
	}
	if err := json.Unmarshal(tech, &p.Technologies); err != nil {
		return model.Project{}, err
	}
	if err := json.Unmarshal(stack, &p.Stack); err != nil {
		return model.Project{}, err
	}
	return p, nil
}
