package controllers

import (
	"log"
	"net/http"

	constants "Asteria/constants/graph"
	models "Asteria/models/graph"
	"Asteria/services/store"

	"github.com/gin-gonic/gin"
)

// SaveGameRequest is the composite body posted by the game client after a
// finished round: the round itself, who played it and where they play from.
type SaveGameRequest struct {
	Game    models.Game    `json:"game"`
	User    models.User    `json:"user"`
	Country models.Country `json:"country"`
}

// @Summary Save a played game
// @Description Creates the user, the country and the residence edge best-effort, then the game node linked to the user. Only the game creation decides the status; earlier steps may leave partial state.
// @Tags games
// @Accept json
// @Produce json
// @Param request body SaveGameRequest true "Game, player and country"
// @Success 201 {object} object{createdGame=graph.Game}
// @Failure 400 {object} object{createdGame=object}
// @Router /api/games [post]
func CreateGame(gs *store.GraphStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"createdGame": nil})
			return
		}
		if req.User.Username == "" {
			req.User.Username = constants.AnonymousUsername
		}

		ctx := c.Request.Context()

		// The first three steps are best-effort: the user and country usually
		// exist already, in which case the creates hit the uniqueness
		// constraints. There is no rollback across the steps.
		if err := gs.CreateUser(ctx, req.User); err != nil {
			log.Printf("saveGame: user step: %v", err)
		}
		if err := gs.CreateCountry(ctx, req.Country); err != nil {
			log.Printf("saveGame: country step: %v", err)
		}
		if err := gs.SetUserCountry(ctx, req.Country, req.User); err != nil {
			log.Printf("saveGame: residence step: %v", err)
		}

		createdGame, err := gs.CreateGame(ctx, req.Game, req.User)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"createdGame": nil})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"createdGame": createdGame})
	}
}

// @Summary List game listings
// @Description Returns every game joined with its scoring user and that user's current country. Games or users missing either edge are excluded.
// @Tags games
// @Produce json
// @Success 200 {object} object{games=[]graph.GameListing}
// @Router /api/games [get]
func GetGames(gs *store.GraphStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		games, err := gs.ListGameListings(c.Request.Context())
		if err != nil {
			games = []models.GameListing{}
		}
		c.JSON(http.StatusOK, gin.H{"games": games})
	}
}
