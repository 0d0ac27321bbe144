package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aabiskar/portfolio-backend/internal/apperr"
	"github.com/aabiskar/portfolio-backend/internal/config"
	"github.com/aabiskar/portfolio-backend/internal/logger"
	"github.com/aabiskar/portfolio-backend/internal/middleware"
	"github.com/aabiskar/portfolio-backend/internal/model"
	"github.com/aabiskar/portfolio-backend/internal/repository"
	"github.com/aabiskar/portfolio-backend/internal/utils"
)

const (
	avatarFolder = "AVATARS"
	resumeFolder = "MY_RESUME"
)

// UserStore is the persistence surface the user handlers need.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	Count(ctx context.Context) (int, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	UpdateProfile(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id, hash string) error
	SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	ClearResetToken(ctx context.Context, id string) error
	GetByResetToken(ctx context.Context, tokenHash string) (model.User, error)
}

// MailSender delivers transactional mail. Implemented by mailer.Mailer.
type MailSender interface {
	Send(to, subject, body string) error
}

type UserHandler struct {
	Cfg   *config.Config
	Users UserStore
	Media MediaStorage
	Mail  MailSender
}

func NewUserHandler(cfg *config.Config, users UserStore, media MediaStorage, mail MailSender) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users, Media: media, Mail: mail}
}

// sendToken signs a session token, sets it as an http-only cookie and
// writes the login response envelope.
func (h *UserHandler) sendToken(c echo.Context, status int, message string, u model.User) error {
	st, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, h.Cfg.JWTExpireDays)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    st.Token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.Cfg.CookieExpireDays) * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   h.Cfg.Env == "prod",
	})
	return c.JSON(status, echo.Map{
		"success": true,
		"message": message,
		"user":    u,
		"token":   st.Token,
	})
}

// Register handles POST /api/v1/user/register (multipart). The portfolio
// has exactly one admin; once a user row exists further registrations
// are refused.
func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	n, err := h.Users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.New("User Already Registered!", 400)
	}

	avatar, ok := formFile(c, "avatar")
	if !ok {
		return apperr.New("Avatar Required!", 400)
	}
	resume, ok := formFile(c, "resume")
	if !ok {
		return apperr.New("Resume Required!", 400)
	}

	u := model.User{
		FullName:     strings.TrimSpace(c.FormValue("fullName")),
		Email:        strings.TrimSpace(c.FormValue("email")),
		Phone:        strings.TrimSpace(c.FormValue("phone")),
		AboutMe:      strings.TrimSpace(c.FormValue("aboutMe")),
		PortfolioURL: strings.TrimSpace(c.FormValue("portfolioURL")),
		GithubURL:    strings.TrimSpace(c.FormValue("githubURL")),
		InstagramURL: strings.TrimSpace(c.FormValue("instagramURL")),
		FacebookURL:  strings.TrimSpace(c.FormValue("facebookURL")),
		TwitterURL:   strings.TrimSpace(c.FormValue("twitterURL")),
		LinkedInURL:  strings.TrimSpace(c.FormValue("linkedInURL")),
	}
	password := c.FormValue("password")
	if u.FullName == "" || u.Email == "" || u.Phone == "" || u.AboutMe == "" ||
		password == "" || u.PortfolioURL == "" {
		return apperr.New("Please Fill Full Form!", 400)
	}

	hash, err := utils.HashPassword(password, h.Cfg.BcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash

	// Registration is atomic with respect to storage: if the resume
	// upload fails the already stored avatar is removed again.
	u.Avatar, err = h.Media.Upload(ctx, avatarFolder, avatar)
	if err != nil {
		logger.Log.Errorf("avatar upload failed: %v", err)
		return apperr.New("Failed to upload avatar!", 500)
	}
	u.Resume, err = h.Media.Upload(ctx, resumeFolder, resume)
	if err != nil {
		logger.Log.Errorf("resume upload failed: %v", err)
		if derr := h.Media.Delete(ctx, u.Avatar.PublicID); derr != nil {
			logger.Log.Warnf("rollback avatar %s: %v", u.Avatar.PublicID, derr)
		}
		return apperr.New("Failed to upload resume!", 500)
	}

	if err := h.Users.Create(ctx, &u); err != nil {
		return err
	}
	return h.sendToken(c, http.StatusCreated, "User Registered!", u)
}

type loginReq struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login handles POST /api/v1/user/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return apperr.New("Email and Password are Required!", 400)
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return apperr.New("Email and Password are Required!", 400)
	}

	u, err := h.Users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Invalid Email or Password!", 401)
		}
		return err
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return apperr.New("Invalid Email or Password!", 401)
	}
	return h.sendToken(c, http.StatusOK, "Logged In", u)
}

// Logout handles GET /api/v1/user/logout. The session cookie is replaced
// with an already expired one.
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   h.Cfg.Env == "prod",
	})
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Logged Out",
	})
}

// GetUser handles GET /api/v1/user/me.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}
	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    u,
	})
}

// UpdateProfile handles PUT /api/v1/user/update/me (multipart). Text
// fields replace stored values; avatar and resume are swapped by
// deleting the old asset before uploading the new one.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := currentUserID(c)
	if err != nil {
		return err
	}
	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if v := strings.TrimSpace(c.FormValue("fullName")); v != "" {
		u.FullName = v
	}
	if v := strings.TrimSpace(c.FormValue("email")); v != "" {
		u.Email = v
	}
	if v := strings.TrimSpace(c.FormValue("phone")); v != "" {
		u.Phone = v
	}
	if v := strings.TrimSpace(c.FormValue("aboutMe")); v != "" {
		u.AboutMe = v
	}
	if v := strings.TrimSpace(c.FormValue("portfolioURL")); v != "" {
		u.PortfolioURL = v
	}
	if v := strings.TrimSpace(c.FormValue("githubURL")); v != "" {
		u.GithubURL = v
	}
	if v := strings.TrimSpace(c.FormValue("instagramURL")); v != "" {
		u.InstagramURL = v
	}
	if v := strings.TrimSpace(c.FormValue("facebookURL")); v != "" {
		u.FacebookURL = v
	}
	if v := strings.TrimSpace(c.FormValue("twitterURL")); v != "" {
		u.TwitterURL = v
	}
	if v := strings.TrimSpace(c.FormValue("linkedInURL")); v != "" {
		u.LinkedInURL = v
	}

	if avatar, ok := formFile(c, "avatar"); ok {
		if u.Avatar.PublicID != "" {
			if err := h.Media.Delete(ctx, u.Avatar.PublicID); err != nil {
				logger.Log.Warnf("delete old avatar %s: %v", u.Avatar.PublicID, err)
			}
		}
		media, err := h.Media.Upload(ctx, avatarFolder, avatar)
		if err != nil {
			logger.Log.Errorf("avatar upload failed: %v", err)
			return apperr.New("Failed to upload avatar!", 500)
		}
		u.Avatar = media
	}
	if resume, ok := formFile(c, "resume"); ok {
		if u.Resume.PublicID != "" {
			if err := h.Media.Delete(ctx, u.Resume.PublicID); err != nil {
				logger.Log.Warnf("delete old resume %s: %v", u.Resume.PublicID, err)
			}
		}
		media, err := h.Media.Upload(ctx, resumeFolder, resume)
		if err != nil {
			logger.Log.Errorf("resume upload failed: %v", err)
			return apperr.New("Failed to upload resume!", 500)
		}
		u.Resume = media
	}

	if err := h.Users.UpdateProfile(ctx, &u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Profile Updated!",
		"user":    u,
	})
}

type updatePasswordReq struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
	ConfirmPassword string `json:"confirmedNewPassword" form:"confirmedNewPassword"`
}

// UpdatePassword handles PUT /api/v1/user/update/password.
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req updatePasswordReq
	if err := c.Bind(&req); err != nil {
		return apperr.New("Please Fill All Fields.", 400)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return apperr.New("Please Fill All Fields.", 400)
	}

	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(u.PasswordHash, req.CurrentPassword) {
		return apperr.New("Incorrect Current Password!", 400)
	}
	if req.NewPassword != req.ConfirmPassword {
		return apperr.New("New Password And Confirm New Password Do Not Match!", 400)
	}

	hash, err := utils.HashPassword(req.NewPassword, h.Cfg.BcryptCost)
	if err != nil {
		return err
	}
	if err := h.Users.UpdatePassword(c.Request().Context(), id, hash); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Password Updated!",
	})
}

// GetUserForPortfolio handles GET /api/v1/user/portfolio/:id, the public
// profile used by the portfolio frontend.
func (h *UserHandler) GetUserForPortfolio(c echo.Context) error {
	id, err := paramID(c, "User ID")
	if err != nil {
		return err
	}
	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("User not found", 404)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    u,
	})
}

type forgotPasswordReq struct {
	Email string `json:"email" form:"email"`
}

// ForgotPassword handles POST /api/v1/user/password/forgot. A random
// reset token is mailed to the user; only its hash is stored and it
// expires after fifteen minutes.
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	ctx := c.Request().Context()
	var req forgotPasswordReq
	if err := c.Bind(&req); err != nil {
		return apperr.New("Email is required", 400)
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return apperr.New("Email is required", 400)
	}

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("User not found!", 404)
		}
		return err
	}

	rt, err := utils.NewResetToken()
	if err != nil {
		return err
	}
	if err := h.Users.SetResetToken(ctx, u.ID, utils.HashResetRaw(rt.Raw), rt.Exp); err != nil {
		return err
	}

	resetURL := h.Cfg.DashboardURL + "/password/reset/" + rt.Raw
	body := fmt.Sprintf("Your Reset Password Token is:\n\n%s\n\nIf you've not requested this email then, please ignore it.", resetURL)
	if err := h.Mail.Send(u.Email, "Personal Portfolio Dashboard Password Recovery", body); err != nil {
		logger.Log.Errorf("send reset mail to %s: %v", u.Email, err)
		if cerr := h.Users.ClearResetToken(ctx, u.ID); cerr != nil {
			logger.Log.Warnf("clear reset token for %s: %v", u.ID, cerr)
		}
		return apperr.New("Failed to send email. Please try again later.", 500)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Email sent to %s successfully.", u.Email),
	})
}

type resetPasswordReq struct {
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmedNewPassword" form:"confirmedNewPassword"`
}

// ResetPassword handles PUT /api/v1/user/password/reset/:token. The
// token is single use; it is cleared as soon as the password changes.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()

	u, err := h.Users.GetByResetToken(ctx, utils.HashResetRaw(c.Param("token")))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Reset Password Token is invalid or has expired", 400)
		}
		return err
	}

	var req resetPasswordReq
	if err := c.Bind(&req); err != nil {
		return apperr.New("Password and Confirmed Password do not match", 400)
	}
	if req.Password == "" || req.Password != req.ConfirmPassword {
		return apperr.New("Password and Confirmed Password do not match", 400)
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return err
	}
	if err := h.Users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return err
	}
	if err := h.Users.ClearResetToken(ctx, u.ID); err != nil {
		return err
	}
	return h.sendToken(c, http.StatusOK, "Password reset successfully", u)
}
