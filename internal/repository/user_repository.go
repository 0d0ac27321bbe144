package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aabiskar/portfolio-backend/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "id, full_name, email, phone, about_me, password_hash, avatar_public_id, avatar_url, resume_public_id, resume_url, portfolio_url, github_url, instagram_url, facebook_url, twitter_url, linkedin_url, created_at, updated_at"

// Create inserts the admin user and fills in the generated ID. The email
// column is unique; a duplicate surfaces as *DuplicateError.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.ID = uuid.NewString()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now

	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, full_name, email, phone, about_me, password_hash, avatar_public_id, avatar_url, resume_public_id, resume_url, portfolio_url, github_url, instagram_url, facebook_url, twitter_url, linkedin_url, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)",
		u.ID, u.FullName, u.Email, u.Phone, u.AboutMe, u.PasswordHash,
		u.Avatar.PublicID, u.Avatar.URL, u.Resume.PublicID, u.Resume.URL,
		u.PortfolioURL, u.GithubURL, u.InstagramURL, u.FacebookURL, u.TwitterURL, u.LinkedInURL,
		u.CreatedAt, u.UpdatedAt)
	if isDuplicate(err) {
		return &DuplicateError{Field: "email"}
	}
	return err
}

// Count reports how many user rows exist. Registration is a one-time
// bootstrap; a second register call is rejected by the handler.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}

// GetByEmail fetches a user by normalized email, password hash included,
// for credential checks.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.getWhere(ctx, "email=?", email)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.getWhere(ctx, "id=?", id)
}

func (r *UserRepo) getWhere(ctx context.Context, cond string, arg any) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE "+cond+" LIMIT 1", arg).
		Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.AboutMe, &u.PasswordHash,
			&u.Avatar.PublicID, &u.Avatar.URL, &u.Resume.PublicID, &u.Resume.URL,
			&u.PortfolioURL, &u.GithubURL, &u.InstagramURL, &u.FacebookURL, &u.TwitterURL, &u.LinkedInURL,
			&u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// UpdateProfile persists the merged profile fields and media references.
func (r *UserRepo) UpdateProfile(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.UpdatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET full_name=?, email=?, phone=?, about_me=?, avatar_public_id=?, avatar_url=?, resume_public_id=?, resume_url=?, portfolio_url=?, github_url=?, instagram_url=?, facebook_url=?, twitter_url=?, linkedin_url=?, updated_at=? WHERE id=?",
		u.FullName, u.Email, u.Phone, u.AboutMe,
		u.Avatar.PublicID, u.Avatar.URL, u.Resume.PublicID, u.Resume.URL,
		u.PortfolioURL, u.GithubURL, u.InstagramURL, u.FacebookURL, u.TwitterURL, u.LinkedInURL,
		u.UpdatedAt, u.ID)
	if isDuplicate(err) {
		return &DuplicateError{Field: "email"}
	}
	return err
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET password_hash=?, updated_at=? WHERE id=?",
		hash, time.Now().UTC(), id)
	return err
}

// SetResetToken stores the hashed reset token and its expiry.
func (r *UserRepo) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET reset_token_hash=?, reset_token_expires=? WHERE id=?",
		tokenHash, expires, id)
	return err
}

// ClearResetToken wipes any stored reset token, making it single-use.
func (r *UserRepo) ClearResetToken(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET reset_token_hash=NULL, reset_token_expires=NULL WHERE id=?", id)
	return err
}

// GetByResetToken fetches the user holding a non-expired reset token hash.
// ErrNotFound covers both a wrong token and an elapsed window.
func (r *UserRepo) GetByResetToken(ctx context.Context, tokenHash string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE reset_token_hash=? AND reset_token_expires > ? LIMIT 1",
		tokenHash, time.Now().UTC()).
		Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.AboutMe, &u.PasswordHash,
			&u.Avatar.PublicID, &u.Avatar.URL, &u.Resume.PublicID, &u.Resume.URL,
			&u.PortfolioURL, &u.GithubURL, &u.InstagramURL, &u.FacebookURL, &u.TwitterURL, &u.LinkedInURL,
			&u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}
