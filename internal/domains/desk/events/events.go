// Package events forwards connection and timeframe notifications to Kafka so other services can
// follow what the desk is doing. Listeners only enqueue; a single worker does the sending.
package events

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	connectionModel "frontdesk/internal/domains/connection/model"
	connectionDto "frontdesk/internal/domains/connection/model/dto"
	connectionService "frontdesk/internal/domains/connection/service"
	"frontdesk/internal/domains/timeframe"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"sync"

	"github.com/rs/zerolog/log"
)

const queueSize = 64

// TimeframeChange is the payload published when a date pair changes.
type TimeframeChange struct {
	Timeframe timeframe.ID `json:"timeframe"`
	From      string       `json:"from"`
	To        string       `json:"to"`
	At        string       `json:"at"`
}

func NewTimeframeChange(event timeframe.Event) TimeframeChange {
	return TimeframeChange{
		Timeframe: event.ID,
		From:      event.Range.FromString(),
		To:        event.Range.ToString(),
		At:        timezone.Format(timezone.Now(), constant.TimeFormat),
	}
}

type Publisher interface {
	Attach(conn connectionService.Connection, timeframes *timeframe.Set)
	Start(ctx context.Context)
	Stop()
	ConnectionChanged(ctx context.Context, state connectionModel.State)
	TimeframeChanged(ctx context.Context, event timeframe.Event)
}

type envelope struct {
	topic   string
	message kafka.Message
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
	otel   otel.Otel

	queue chan envelope
	done  chan struct{}

	mu      sync.RWMutex
	closed  bool
	started bool
	handles []func()
}

// New returns a publisher. A nil client turns every method into a no-op, which is how a desk
// without Kafka runs.
func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
		otel:   otel,
		queue:  make(chan envelope, queueSize),
		done:   make(chan struct{}),
	}
}

func (p *publisherImpl) Attach(conn connectionService.Connection, timeframes *timeframe.Set) {
	if p.client == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	handle := conn.Subscribe(p.ConnectionChanged)
	p.handles = append(p.handles, func() { conn.Unsubscribe(handle) })

	for _, v := range timeframes.All() {
		handle := v.Subscribe(p.TimeframeChanged)
		p.handles = append(p.handles, func() { v.Unsubscribe(handle) })
	}
}

func (p *publisherImpl) Start(ctx context.Context) {
	if p.client == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.closed {
		return
	}

	p.started = true

	go p.run(context.WithoutCancel(ctx))

	log.Info().
		Str("connectionTopic", p.cfg.Kafka.Topics.Connection).
		Str("timeframeTopic", p.cfg.Kafka.Topics.Timeframe).
		Msg("desk event publisher started")
}

// Stop detaches from every source, then waits until queued events are handed to Kafka.
func (p *publisherImpl) Stop() {
	p.mu.Lock()

	if p.closed {
		p.mu.Unlock()

		return
	}

	for _, unsubscribe := range p.handles {
		unsubscribe()
	}

	p.handles = nil
	p.closed = true
	started := p.started

	close(p.queue)
	p.mu.Unlock()

	if started {
		<-p.done
	}

	log.Info().Msg("desk event publisher stopped")
}

func (p *publisherImpl) ConnectionChanged(_ context.Context, state connectionModel.State) {
	p.enqueue(p.cfg.Kafka.Topics.Connection, kafka.Message{
		Key:   connectionModel.EntityName,
		Value: connectionDto.NewStateChange(state),
	})
}

func (p *publisherImpl) TimeframeChanged(_ context.Context, event timeframe.Event) {
	p.enqueue(p.cfg.Kafka.Topics.Timeframe, kafka.Message{
		Key:   string(event.ID),
		Value: NewTimeframeChange(event),
	})
}

func (p *publisherImpl) enqueue(topic string, message kafka.Message) {
	if p.client == nil {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return
	}

	select {
	case p.queue <- envelope{topic: topic, message: message}:
	default:
		log.Warn().Str("topic", topic).Str("key", message.Key).Msg("desk event queue is full, dropping event")
	}
}

func (p *publisherImpl) run(ctx context.Context) {
	defer close(p.done)

	for env := range p.queue {
		p.send(ctx, env)
	}
}

func (p *publisherImpl) send(ctx context.Context, env envelope) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".desk.Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"topic": env.topic,
		"key":   env.message.Key,
	})

	if err := p.client.SendMessages(ctx, env.topic, env.message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", env.topic).Msg("failed to publish desk event")
	}
}
