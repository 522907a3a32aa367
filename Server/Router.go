package Server

import (
	"Encore/Utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter builds the keep-alive web server: status page, health, metrics and the outcome feed.
func NewRouter(Hub *Hub) *gin.Engine {

	gin.SetMode(gin.ReleaseMode)

	Router := gin.New()
	Router.Use(gin.Recovery())

	Router.GET("/", func(Context *gin.Context) {

		Context.String(http.StatusOK, "Music bot is running!")

	})

	Router.GET("/health", func(Context *gin.Context) {

		Context.JSON(http.StatusOK, gin.H{"status": "ok", "subscribers": Hub.Count()})

	})

	Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	Router.GET("/API/Events", Hub.HandleSocket)

	return Router

}

// Start serves Router on Port until Ctx ends, then shuts down gracefully.
func Start(Ctx context.Context, Router *gin.Engine, Port int) error {

	WebServer := &http.Server{

		Addr:              fmt.Sprintf(":%d", Port),
		Handler:           Router,
		ReadHeaderTimeout: 10 * time.Second,

	}

	Failed := make(chan error, 1)

	go func() {

		Utils.Logger.Info("Web server listening", zap.Int("port", Port))

		if ErrorServing := WebServer.ListenAndServe(); ErrorServing != nil && !errors.Is(ErrorServing, http.ErrServerClosed) {

			Failed <- ErrorServing

		}

		close(Failed)

	}()

	select {

		case ErrorServing := <-Failed:

			return ErrorServing

		case <-Ctx.Done():

			ShutdownContext, CancelFunc := context.WithTimeout(context.Background(), 5*time.Second)
			defer CancelFunc()

			return WebServer.Shutdown(ShutdownContext)

	}

}
