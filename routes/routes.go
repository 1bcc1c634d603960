package routes

import (
	"Asteria/controllers"
	"Asteria/services/mousestore"
	"Asteria/services/store"
	utils "Asteria/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, gs *store.GraphStore) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The mouse demo resource lives in-process only
	ms := mousestore.New()

	api := router.Group("/api")

	api.GET("/nodes", controllers.CountNodes(gs))

	users := api.Group("/users")
	{
		users.GET("", controllers.GetUsers(gs))

		users.POST("", controllers.CreateUser(gs))

		users.PUT("/:username", controllers.UpdateUser(gs))

		users.DELETE("/:username", controllers.DeleteUser(gs))
	}

	api.POST("/countries", controllers.CreateCountry(gs))

	games := api.Group("/games")
	{
		games.GET("", controllers.GetGames(gs))

		games.POST("", controllers.CreateGame(gs))
	}

	api.GET("/leaderboards", controllers.GetLeaderboards(gs))

	mouses := api.Group("/mouses")
	{
		mouses.GET("", controllers.GetMouses(ms))

		mouses.POST("", controllers.CreateMouse(ms))

		mouses.PUT("/:id", controllers.UpdateMouse(ms))

		mouses.DELETE("/:id", controllers.DeleteMouse(ms))
	}
}
