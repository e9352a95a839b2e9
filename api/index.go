package handler

import (
	"context"
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	"net/http"
	"sync"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler serves the API as a single serverless function. The desk is started on the first call
// and lives as long as the instance does.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		logger.UseJSONOutput(cfg)

		server := di.InitializeService()
		server.Lifecycle.Start(context.Background())

		handler = server.Handler()
	})

	r.RequestURI = r.URL.String()

	handler.ServeHTTP(w, r)
}
