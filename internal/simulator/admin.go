package simulator

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danmuck/ledgerctl/internal/observability"
)

var startedAt = time.Now()

// NewAdminRouter serves health, the active device profile and prometheus
// metrics for a daemonized simulator.
func NewAdminRouter(sim *Simulator) *gin.Engine {
	observability.RegisterMetrics()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Middleware: keep it lean
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(startedAt).String(),
			"service": "speculosd",
		})
	})
	r.GET("/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, sim.Profile())
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
