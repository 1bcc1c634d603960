package controllers

import (
	"net/http"

	models "Asteria/models/graph"
	"Asteria/services/store"

	"github.com/gin-gonic/gin"
)

// @Summary Create a country
// @Description Creates a country node. Country names are unique.
// @Tags countries
// @Accept json
// @Produce json
// @Param country body graph.Country true "Country to create"
// @Success 201 {object} object{created=bool}
// @Failure 400 {object} object{created=bool}
// @Router /api/countries [post]
func CreateCountry(gs *store.GraphStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var country models.Country
		if err := c.ShouldBindJSON(&country); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"created": false})
			return
		}

		if err := gs.CreateCountry(c.Request.Context(), country); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"created": false})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"created": true})
	}
}
