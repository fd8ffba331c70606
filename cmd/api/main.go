package main

import (
	"context"
	"net/http"

	"foodtrucks-api/internal/cache"
	"foodtrucks-api/internal/config"
	"foodtrucks-api/internal/handler"
	"foodtrucks-api/internal/metrics"
	"foodtrucks-api/internal/middleware"
	"foodtrucks-api/internal/repository"
	"foodtrucks-api/internal/service"

	_ "foodtrucks-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			SF Mobile Food Facilities API
//	@version		1.0
//	@description	Search and proximity lookup over San Francisco mobile food facility permits.

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Optional response cache; nil when REDIS_ADDR is not configured.
	respCache := cache.New(config.RedisAddr, config.CacheTTL)

	// Initialize layers
	repo := repository.NewRepository(conn)

	searchService := service.NewSearchService(repo)
	nearestService := service.NewNearestService(repo)
	mapService := service.NewMapService(repo)

	searchHandler := handler.NewSearchHandler(searchService)
	nearestHandler := handler.NewNearestHandler(nearestService, respCache)
	mapHandler := handler.NewMapHandler(mapService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	foodtrucks := r.Group("/foodtrucks")
	{
		foodtrucks.GET("/search/name", searchHandler.SearchByName)
		foodtrucks.GET("/search/street", searchHandler.SearchByStreet)
		foodtrucks.GET("/nearest", nearestHandler.Nearest)
		foodtrucks.GET("/geojson", mapHandler.GeoJSON)
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static map UI, same as the dataset's original frontend.
	r.StaticFile("/", config.UIDir+"/index.html")

	r.Run(config.ServerAddress)
}
