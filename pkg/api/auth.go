package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// Context keys set by the auth middleware.
const (
	ctxUser       = "auth_user"
	ctxIsSysAdmin = "auth_is_sys_admin"
)

// principal is the resolved identity of one request. Session principals come
// from an HS256 JWT signed with the process secret; token principals come
// from a stored access token.
type principal struct {
	userID     string
	isSession  bool
	tokenOrgID string // set for organization tokens, empty otherwise
}

// resolvePrincipal parses the bearer credential. JWT decode is tried first;
// anything that is not a valid session token is looked up as an access token.
func (s *Server) resolvePrincipal(c *echo.Context) (*principal, error) {
	header := c.Request().Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer credentials")
	}

	if userID, err := parseSessionToken(s.secret, raw); err == nil {
		return &principal{userID: userID, isSession: true}, nil
	}

	row, err := s.tokens.Resolve(c.Request().Context(), raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired credentials")
	}
	return &principal{userID: row.UserID, tokenOrgID: row.OrganizationID}, nil
}

// requireAccount guards /v0/account paths: session tokens and account-level
// access tokens only.
func (s *Server) requireAccount(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		p, err := s.resolvePrincipal(c)
		if err != nil {
			return err
		}
		if !p.isSession && p.tokenOrgID != "" {
			return echo.NewHTTPError(http.StatusUnauthorized,
				"organization tokens cannot access account endpoints")
		}
		return s.attachUser(c, next, p)
	}
}

// requireOrg guards /v0/orgs/:org_id paths: access tokens bound to the path's
// organization, or session tokens of organization members. System
// administrators pass regardless of membership.
func (s *Server) requireOrg(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		orgID := c.Param("org_id")
		p, err := s.resolvePrincipal(c)
		if err != nil {
			return err
		}
		if !p.isSession {
			if p.tokenOrgID != orgID {
				return echo.NewHTTPError(http.StatusUnauthorized,
					"token is not valid for this organization")
			}
			return s.attachUser(c, next, p)
		}

		user, err := s.users.Get(c.Request().Context(), p.userID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
		}
		if !services.IsSystemAdmin(user) {
			org, err := s.orgs.Get(c.Request().Context(), orgID)
			if err != nil {
				return mapServiceError(err)
			}
			if models.MemberRole(org.Members, p.userID) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized,
					"user is not a member of this organization")
			}
		}
		c.Set(ctxUser, user)
		c.Set(ctxIsSysAdmin, services.IsSystemAdmin(user))
		return next(c)
	}
}

// attachUser loads the principal's user row into the request context.
func (s *Server) attachUser(c *echo.Context, next echo.HandlerFunc, p *principal) error {
	user, err := s.users.Get(c.Request().Context(), p.userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
	}
	c.Set(ctxUser, user)
	c.Set(ctxIsSysAdmin, services.IsSystemAdmin(user))
	return next(c)
}

// currentUser returns the authenticated user attached by the middleware.
func currentUser(c *echo.Context) *ent.User {
	u, _ := c.Get(ctxUser).(*ent.User)
	return u
}

func isSysAdmin(c *echo.Context) bool {
	b, _ := c.Get(ctxIsSysAdmin).(bool)
	return b
}

// parseSessionToken validates an HS256 session JWT and returns the subject.
func parseSessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing session token: %w", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected session token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("session token has no subject")
	}
	return sub, nil
}

// signSessionToken mints a session JWT for a user id.
func signSessionToken(secret, userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
