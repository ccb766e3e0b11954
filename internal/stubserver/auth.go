package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"healthshop-client/internal/domain"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *api) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		errorJSON(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal error")
		return
	}
	u, ok := a.store.addUser(user{
		User: domain.User{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Role:      domain.RoleUser,
		},
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if !ok {
		errorJSON(c, http.StatusBadRequest, "Email already registered")
		return
	}
	c.JSON(http.StatusOK, a.authResponse(u))
}

func (a *api) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	u, ok := a.store.userByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		errorJSON(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	c.JSON(http.StatusOK, a.authResponse(u))
}

func (a *api) me(c *gin.Context) {
	u, ok := a.store.userByID(currentUserID(c))
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, u.User)
}

func (a *api) authResponse(u *user) domain.AuthResponse {
	return domain.AuthResponse{
		Token:     a.sessions.Issue(u.ID),
		Type:      "Bearer",
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		Role:      u.Role,
	}
}
