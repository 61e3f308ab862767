package api

import (
	"customer-portal/config"
	"customer-portal/routes"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		logger, err := config.NewLogger(cfg)
		if err != nil {
			logger = zap.NewNop()
		}

		handlers, err := routes.NewHandlers(cfg, logger, config.ConnectRedis(cfg, logger))
		if err != nil {
			initErr = err
			return
		}
		router, initErr = routes.NewRouter(cfg, logger, handlers)
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, initErr.Error(), http.StatusInternalServerError)
		return
	}
	router.ServeHTTP(w, r)
}
