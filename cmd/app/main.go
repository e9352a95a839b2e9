package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

// @title Front Desk API
// @version 1.0
// @description Hotel front desk: store connection, room availability and stay dates.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	logger.UseJSONOutput(cfg)

	http := di.InitializeService()
	http.Serve()
}
