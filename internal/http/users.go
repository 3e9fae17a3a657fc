package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcircle/server/internal/entities"
)

// UserStore defines database operations for registration and login.
type UserStore interface {
	Register(email, name, password string) (*entities.User, error)
	Authenticate(email, password string) (*entities.User, error)
	FindByID(userID string) (*entities.User, error)
	SearchByName(fragment string) ([]entities.UserSummary, error)
}

type UsersController struct {
	store UserStore
}

func NewUsersController(store UserStore) *UsersController {
	return &UsersController{store: store}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
// POST /api/users/register
func (uc *UsersController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := uc.store.Register(req.Email, req.Name, req.Password)
	if err != nil {
		respondCoreError(c, err, "register user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user registered", "user": user})
}

// Login verifies credentials. Unknown email and wrong password produce the
// same response.
// POST /api/users/login
func (uc *UsersController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := uc.store.Authenticate(req.Email, req.Password)
	if err != nil {
		respondCoreError(c, err, "authenticate user")
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "authenticated", "user": user})
}

// GetUser returns one user record.
// GET /api/users/:id
func (uc *UsersController) GetUser(c *gin.Context) {
	user, err := uc.store.FindByID(c.Param("id"))
	if err != nil {
		respondCoreError(c, err, "get user")
		return
	}
	if user == nil {
		respondNotFound(c, "user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// SearchUsers finds users by name fragment for the friend picker.
// GET /api/users/search?q=ali
func (uc *UsersController) SearchUsers(c *gin.Context) {
	results, err := uc.store.SearchByName(c.Query("q"))
	if err != nil {
		respondCoreError(c, err, "search users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": results})
}
