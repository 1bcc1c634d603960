package controllers

import (
	"net/http"

	models "Asteria/models/graph"
	"Asteria/services/leaderboard"
	"Asteria/services/store"

	"github.com/gin-gonic/gin"
)

// @Summary Get the leaderboard
// @Description Folds every game listing into per-user totals: score, play count, duration in minutes and last-seen country.
// @Tags leaderboards
// @Produce json
// @Success 200 {object} graph.Leaderboard
// @Router /api/leaderboards [get]
func GetLeaderboards(gs *store.GraphStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := gs.ListGameListings(c.Request.Context())
		if err != nil {
			listings = []models.GameListing{}
		}
		c.JSON(http.StatusOK, leaderboard.Aggregate(listings))
	}
}
