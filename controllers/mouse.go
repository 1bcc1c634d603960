package controllers

import (
	"net/http"
	"strconv"

	"Asteria/models"
	"Asteria/services/mousestore"

	"github.com/gin-gonic/gin"
)

// @Summary List mouses
// @Tags mouses
// @Produce json
// @Success 200 {object} object{mouses=[]models.Mouse}
// @Router /api/mouses [get]
func GetMouses(ms *mousestore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"mouses": ms.List()})
	}
}

// @Summary Create a mouse
// @Tags mouses
// @Accept json
// @Produce json
// @Param mouse body models.Mouse true "Mouse to create; the id is assigned by the server"
// @Success 201 {object} models.Mouse
// @Failure 400 {object} object{error=string}
// @Router /api/mouses [post]
func CreateMouse(ms *mousestore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var mouse models.Mouse
		if err := c.ShouldBindJSON(&mouse); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mouse"})
			return
		}
		c.JSON(http.StatusCreated, ms.Create(mouse))
	}
}

// @Summary Update a mouse
// @Tags mouses
// @Accept json
// @Produce json
// @Param id path int true "Mouse id"
// @Param mouse body models.Mouse true "Replacement mouse"
// @Success 204 {object} object{updated=bool}
// @Failure 400 {object} object{updated=bool}
// @Router /api/mouses/{id} [put]
func UpdateMouse(ms *mousestore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"updated": false})
			return
		}

		var mouse models.Mouse
		if err := c.ShouldBindJSON(&mouse); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"updated": false})
			return
		}

		if !ms.Update(id, mouse) {
			c.JSON(http.StatusBadRequest, gin.H{"updated": false})
			return
		}
		c.JSON(http.StatusNoContent, gin.H{"updated": true})
	}
}

// @Summary Delete a mouse
// @Tags mouses
// @Produce json
// @Param id path int true "Mouse id"
// @Success 204 {object} object{deleted=bool}
// @Failure 400 {object} object{deleted=bool}
// @Router /api/mouses/{id} [delete]
func DeleteMouse(ms *mousestore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"deleted": false})
			return
		}

		if !ms.Delete(id) {
			c.JSON(http.StatusBadRequest, gin.H{"deleted": false})
			return
		}
		c.JSON(http.StatusNoContent, gin.H{"deleted": true})
	}
}
