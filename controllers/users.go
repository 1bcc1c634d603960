package controllers

import (
	"net/http"

	constants "Asteria/constants/graph"
	models "Asteria/models/graph"
	"Asteria/services/store"

	"github.com/gin-gonic/gin"
)

// @Summary Create a user
// @Description Creates a user node. Usernames are unique; a duplicate is rejected.
// @Tags users
// @Accept json
// @Produce json
// @Param user body graph.User true "User to create"
// @Success 201 {object} object{created=bool}
// @Failure 400 {object} object{created=bool}
// @Router /api/users [post]
func CreateUser(gs *store.GraphStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"created": false})
			return
		}

		if err := gs.CreateUser(c.Request.Context(), user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"created": false})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"created": true})
	}
}

// @Summary List users
// @Description Returns users whose fields start with the given filters. Empty filters match everyone.
// @Tags users
// @Produce json
// @Param name query string false "Name prefix"
// @Param surname query string false "Surname prefix"
// @Param username query string false "Username prefix"
// @Success 200 {object} object{users=[]graph.User}
// @Router /api/users [get]
func GetUsers(gs *store.GraphStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.User{
			Name:     c.Query("name"),
			Surname:  c.Query("surname"),
			Username: c.Query("username"),
		}

		users, err := gs.ListUsers(c.Request.Context(), filter)
		if err != nil {
			users = []models.User{}
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// @Summary Delete a user
// @Description Removes the user node and all of its edges.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 204 {object} object{deleted=bool}
// @Failure 400 {object} object{deleted=bool}
// @Router /api/users/{username} [delete]
func DeleteUser(gs *store.GraphStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		if err := gs.DeleteUser(c.Request.Context(), username); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"deleted": false})
			return
		}
		c.JSON(http.StatusNoContent, gin.H{"deleted": true})
	}
}

// @Summary Update a user
// @Description Hard-replaces the user's properties, keyed on the username in the path.
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Current username"
// @Param user body graph.User true "Replacement user"
// @Success 204 {object} object{updated=bool}
// @Failure 400 {object} object{updated=bool}
// @Router /api/users/{username} [put]
func UpdateUser(gs *store.GraphStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"updated": false})
			return
		}
		if user.Username == "" {
			user.Username = constants.AnonymousUsername
		}

		if err := gs.UpdateUser(c.Request.Context(), user, username); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"updated": false})
			return
		}
		c.JSON(http.StatusNoContent, gin.H{"updated": true})
	}
}
