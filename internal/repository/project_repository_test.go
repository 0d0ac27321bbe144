package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aabiskar/portfolio-backend/internal/model"
)

func projectRows(ps ...model.Project) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "git_repo_link", "project_link",
		"technologies", "stack", "deployed", "banner_public_id", "banner_url",
		"created_at", "updated_at",
	})
	for _, p := range ps {
		rows.AddRow(p.ID, p.Title, p.Description, p.GitRepoLink, p.ProjectLink,
			`["Go","Echo"]`, `["Go","React"]`, p.Deployed,
			p.ProjectBanner.PublicID, p.ProjectBanner.URL, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func TestProjectRepoGetByID_DecodesJSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	stored := model.Project{
		ID:        "a1d2e3f4-0000-4000-8000-000000000001",
		Title:     "Portfolio Backend",
		Deployed:  true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	mock.ExpectQuery("SELECT .+ FROM projects WHERE id=").
		WithArgs(stored.ID).
		WillReturnRows(projectRows(stored))

	repo := NewProjectRepo(db)
	got, err := repo.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Echo"}, got.Technologies)
	assert.Equal(t, []string{"Go", "React"}, got.Stack)
	assert.True(t, got.Deployed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepoGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM projects WHERE id=").
		WillReturnRows(projectRows())

	repo := NewProjectRepo(db)
	_, err = repo.GetByID(context.Background(), "a1d2e3f4-0000-4000-8000-000000000099")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepoCreate_EncodesJSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO projects").
		WithArgs(sqlmock.AnyArg(), "Portfolio Backend", "desc", "git", "live",
			[]byte(`["Go","Echo"]`), []byte(`["Go","React"]`), true,
			"PROJECT_IMAGES/banner", "https://cdn.test/banner",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := model.Project{
		Title:         "Portfolio Backend",
		Description:   "desc",
		GitRepoLink:   "git",
		ProjectLink:   "live",
		Technologies:  []string{"Go", "Echo"},
		Stack:         []string{"Go", "React"},
		Deployed:      true,
		ProjectBanner: model.Media{PublicID: "PROJECT_IMAGES/banner", URL: "https://cdn.test/banner"},
	}
	repo := NewProjectRepo(db)
	require.NoError(t, repo.Create(context.Background(), &p))
	assert.NotEmpty(t, p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepoUpdate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE projects SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewProjectRepo(db)
	err = repo.Update(context.Background(), &model.Project{
		ID:           "a1d2e3f4-0000-4000-8000-000000000099",
		Technologies: []string{"Go"},
		Stack:        []string{"Go"},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM projects WHERE id=").
		WithArgs("a1d2e3f4-0000-4000-8000-000000000001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM projects WHERE id=").
		WithArgs("a1d2e3f4-0000-4000-8000-000000000001").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewProjectRepo(db)
	require.NoError(t, repo.Delete(context.Background(), "a1d2e3f4-0000-4000-8000-000000000001"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "a1d2e3f4-0000-4000-8000-000000000001"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
