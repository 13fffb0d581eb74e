package http

import (
	"net/http"

	"github.com/Apple-More/order-service/configs"
	"github.com/Apple-More/order-service/internal/adapter/http/middleware"
	"github.com/Apple-More/order-service/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *OrderHandler, ident *middleware.Identity) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/public/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "Order service is online"})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1", ident.Extract())
	{
		v1.POST("/", h.CreateOrder)
		v1.GET("/", h.ListOrders)
		v1.GET("/user", ident.Require(), h.ListOrdersByUser)
		v1.PATCH("/:order_id", h.ConfirmPayment)
	}

	return r
}

// NewServer wraps the engine in an http.Server carrying the configured
// connection timeouts.
func NewServer(cfg configs.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
}
