// Package middleware provides shared request processing for handlers.
package middleware

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/aabiskar/portfolio-backend/internal/apperr"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// Auth returns an Echo middleware that validates the session token from
// the http-only cookie (falling back to a Bearer header for API clients)
// and stores the authenticated user id in the request context under
// "user_id". Token parse failures are returned as-is so the centralized
// responder can distinguish malformed from expired tokens.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if ck, err := c.Cookie(SessionCookieName); err == nil {
				raw = ck.Value
			}
			if raw == "" {
				if auth := c.Request().Header.Get("Authorization"); len(auth) > 7 && auth[:7] == "Bearer " {
					raw = auth[7:]
				}
			}
			if raw == "" {
				return apperr.New("User Not Authenticated!", 401)
			}

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil {
				return err // classified by the error responder
			}
			if !tok.Valid {
				return jwt.ErrTokenUnverifiable
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return jwt.ErrTokenInvalidClaims
			}
			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				return jwt.ErrTokenInvalidClaims
			}

			c.Set("user_id", sub)
			return next(c)
		}
	}
}
