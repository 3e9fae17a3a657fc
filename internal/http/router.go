package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcircle/server/internal/database"
)

// Controllers bundles the route handlers wired by the composition root.
type Controllers struct {
	Books   *BooksController
	Users   *UsersController
	Shelf   *ShelfController
	Friends *FriendsController
}

// SetupRouter registers all API routes. The route layer only parses
// requests, dispatches into the repositories and serializes the result.
func SetupRouter(ctrl Controllers, db *database.Database) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/books", ctrl.Books.AddBook)
		api.GET("/books/:id", ctrl.Books.GetBook)
		api.DELETE("/books/:id", ctrl.Books.DeleteBook)

		api.POST("/users/register", ctrl.Users.Register)
		api.POST("/users/login", ctrl.Users.Login)
		api.GET("/users/search", ctrl.Users.SearchUsers)
		api.GET("/users/:id", ctrl.Users.GetUser)

		api.PUT("/shelf", ctrl.Shelf.UpsertAnnotation)
		api.GET("/shelf/:userID", ctrl.Shelf.GetShelf)

		api.POST("/friends", ctrl.Friends.AddFriend)
		api.DELETE("/friends", ctrl.Friends.RemoveFriend)
		api.GET("/friends/:ownerID", ctrl.Friends.ListFriends)
	}

	return router
}
