package handler

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/naka-gawa/github-profile-card/internal/config"
)

// NewRouter creates and configures the main application router.
func NewRouter(cfg *config.Config, composer CardComposer, store CounterStore, logger *log.Logger) *gin.Engine {
	ch := NewCardHandler(composer)
	sh := NewStatsHandler(store, logger)

	r := gin.New()
	r.Use(gin.LoggerWithWriter(logger.Writer()))
	r.Use(gin.Recovery())
	// Cards are embedded from arbitrary pages and the stats API is called from the browser.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	api := r.Group("/api")
	api.GET("/generate", RateLimit(cfg.CardRateLimit, cfg.CardRateBurst), ch.Generate)
	api.GET("/stats", sh.Handle)

	return r
}
