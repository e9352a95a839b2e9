package http

import (
	"context"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	connectionService "frontdesk/internal/domains/connection/service"
	"frontdesk/internal/domains/desk/events"
	deskService "frontdesk/internal/domains/desk/service"
	"frontdesk/internal/domains/timeframe"

	"github.com/rs/zerolog/log"
)

// Lifecycle starts and stops what outlives a single request.
type Lifecycle struct {
	desk       deskService.Desk
	publisher  events.Publisher
	conn       connectionService.Connection
	timeframes *timeframe.Set
	kafka      kafka.Client
	otel       otel.Otel
}

func NewLifecycle(
	desk deskService.Desk,
	publisher events.Publisher,
	conn connectionService.Connection,
	timeframes *timeframe.Set,
	kafka kafka.Client,
	otel otel.Otel,
) *Lifecycle {
	return &Lifecycle{
		desk:       desk,
		publisher:  publisher,
		conn:       conn,
		timeframes: timeframes,
		kafka:      kafka,
		otel:       otel,
	}
}

// Start attaches the publisher before the desk so an automatic connect is already published.
func (l *Lifecycle) Start(ctx context.Context) {
	l.publisher.Attach(l.conn, l.timeframes)
	l.publisher.Start(ctx)
	l.desk.Start(ctx)
}

// Stop disconnects the desk, drains pending events and flushes telemetry.
func (l *Lifecycle) Stop(ctx context.Context) {
	l.desk.Stop(ctx)
	l.publisher.Stop()

	if l.kafka != nil {
		if err := l.kafka.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client")
		}
	}

	if err := l.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down tracer provider")
	}
}
