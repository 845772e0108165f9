package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/api/middleware"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/session"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// IAuthAPI is the slice of the upstream client the auth handler uses.
type IAuthAPI interface {
	Login(ctx context.Context, emailOrPhone, password string) (*upstream.LoginResult, error)
	Register(ctx context.Context, in upstream.RegisterInput) (*upstream.RegisterResult, error)
	Logout(ctx context.Context) error
}

// AuthHandler handles login, signup, logout and session bootstrap.
type AuthHandler struct {
	api      IAuthAPI
	sessions session.IManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(api IAuthAPI, sessions session.IManager) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login. Credentials are forwarded verbatim; only
// the issued token is kept, inside a redis session record named by the
// returned console JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	result, err := h.api.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		respondMutationError(c, err)
		return
	}

	_, token, err := h.sessions.Create(c.Request.Context(), result.Token, result.Admin)
	if err != nil {
		log.Printf("Failed to create session for admin %s: %v", result.Admin.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": result.Admin})
}

type registerRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register handles POST /auth/register. The upstream completes email
// verification out of band, so no session is created here.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, phone number and password are required"})
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	result, err := h.api.Register(c.Request.Context(), upstream.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"userId": result.UserID, "user": result.Admin})
}

// Logout handles POST /auth/logout on a guarded route. The upstream logout
// is best-effort; the session record goes away regardless.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	rec, ok := session.RecordFrom(ctx)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"redirect": middleware.LoginRedirect})
		return
	}

	if err := h.api.Logout(ctx); err != nil && !errors.Is(err, upstream.ErrUnauthenticated) {
		log.Printf("Upstream logout failed for session %s: %v", rec.ID, err)
	}
	if err := h.sessions.Destroy(ctx, rec.ID); err != nil {
		log.Printf("Failed to destroy session %s on logout: %v", rec.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"redirect": middleware.LoginRedirect})
}

// Session handles GET /auth/session, the bootstrap probe: it re-validates a
// stored credential against the upstream and reports the guard state so the
// front end can route. Authenticated admins on a login screen get sent home,
// everyone without a live session gets sent to login.
func (h *AuthHandler) Session(c *gin.Context) {
	res := h.sessions.Resolve(c.Request.Context(), middleware.BearerToken(c))
	if res.State != session.StateAuthenticated {
		c.JSON(http.StatusOK, gin.H{
			"state":    res.State,
			"redirect": middleware.LoginRedirect,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":    res.State,
		"user":     res.Admin,
		"redirect": "/",
	})
}
