package di

import (
	"frontdesk/config"
	"frontdesk/infras/postgres"
	connectionService "frontdesk/internal/domains/connection/service"
	"frontdesk/shared/daterange"
)

// provideStore hands repositories the connection owned by the connection service.
func provideStore(conn connectionService.Connection) postgres.Provider {
	return conn
}

func provideOverlap(cfg *config.Config) daterange.Overlap {
	return daterange.ParseOverlap(cfg.App.Overlap)
}
