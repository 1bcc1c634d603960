package controllers

import (
	"net/http"

	"Asteria/services/store"

	"github.com/gin-gonic/gin"
)

// @Summary Count graph nodes
// @Description Diagnostic: total number of nodes in the graph.
// @Tags nodes
// @Produce json
// @Success 200 {object} object{nodeCount=integer}
// @Failure 400 {object} object{error=string}
// @Router /api/nodes [get]
func CountNodes(gs *store.GraphStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		nodeCount, err := gs.CountNodes(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not count nodes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"nodeCount": nodeCount})
	}
}
