package events_test

import (
	"context"
	"errors"
	"frontdesk/config"
	"frontdesk/infras/kafka"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	pgMocks "frontdesk/infras/postgres/mocks"
	connectionModel "frontdesk/internal/domains/connection/model"
	connectionDto "frontdesk/internal/domains/connection/model/dto"
	connectionService "frontdesk/internal/domains/connection/service"
	"frontdesk/internal/domains/desk/events"
	"frontdesk/internal/domains/timeframe"
	"frontdesk/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topics.Connection = "frontdesk.connection"
	cfg.Kafka.Topics.Timeframe = "frontdesk.timeframe"

	return cfg
}

func TestPublisher_ConnectionChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	dialer := pgMocks.NewMockDialer(ctrl)

	conn := connectionService.New(dialer, mocks.NewOtel())
	publisher := events.New(testConfig(), client, mocks.NewOtel())
	publisher.Attach(conn, timeframe.NewSet())
	publisher.Start(context.Background())

	var published []connectionModel.State

	record := func(_ context.Context, topic string, messages ...kafka.Message) error {
		assert.Equal(t, "frontdesk.connection", topic)
		require.Len(t, messages, 1)
		assert.Equal(t, connectionModel.EntityName, messages[0].Key)

		change, ok := messages[0].Value.(connectionDto.StateChange)
		require.True(t, ok)

		published = append(published, change.State)

		return nil
	}

	dialer.EXPECT().Dial(gomock.Any()).Return(nil, errors.New("connection refused"))
	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(record).Times(2)

	conn.Connect(context.Background())
	publisher.Stop()

	assert.Equal(t, []connectionModel.State{connectionModel.Connecting, connectionModel.ConnectionFailed}, published)
}

func TestPublisher_TimeframeChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	set := timeframe.NewSet()
	publisher := events.New(testConfig(), client, mocks.NewOtel())
	publisher.Attach(connectionService.New(pgMocks.NewMockDialer(ctrl), mocks.NewOtel()), set)
	publisher.Start(context.Background())

	var changes []events.TimeframeChange

	client.EXPECT().
		SendMessages(gomock.Any(), "frontdesk.timeframe", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			change, ok := messages[0].Value.(events.TimeframeChange)
			require.True(t, ok)
			assert.Equal(t, string(change.Timeframe), messages[0].Key)

			changes = append(changes, change)

			return errors.New("broker unavailable")
		}).
		Times(2)

	from := timezone.Date(2024, time.June, 10)
	to := timezone.Date(2024, time.June, 5)

	require.NoError(t, set.Availability.SetFrom(context.Background(), &from))
	// rejected edits publish nothing
	require.Error(t, set.Availability.SetTo(context.Background(), &to))
	require.NoError(t, set.Bookings.SetTo(context.Background(), &to))

	publisher.Stop()

	require.Len(t, changes, 2)
	assert.Equal(t, events.TimeframeChange{Timeframe: timeframe.Availability, From: "2024-06-10", At: changes[0].At}, changes[0])
	assert.Equal(t, events.TimeframeChange{Timeframe: timeframe.Bookings, To: "2024-06-05", At: changes[1].At}, changes[1])
}

func TestPublisher_StopDetaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	set := timeframe.NewSet()
	publisher := events.New(testConfig(), client, mocks.NewOtel())
	publisher.Attach(connectionService.New(pgMocks.NewMockDialer(ctrl), mocks.NewOtel()), set)
	publisher.Start(context.Background())
	publisher.Stop()
	publisher.Stop()

	day := timezone.Date(2024, time.June, 1)

	// no SendMessages expected
	require.NoError(t, set.Bookings.SetFrom(context.Background(), &day))
}

func TestPublisher_WithoutClient(t *testing.T) {
	set := timeframe.NewSet()
	publisher := events.New(testConfig(), nil, mocks.NewOtel())
	publisher.Attach(connectionService.New(nil, mocks.NewOtel()), set)
	publisher.Start(context.Background())

	day := timezone.Date(2024, time.June, 1)

	assert.NotPanics(t, func() {
		require.NoError(t, set.Bookings.SetFrom(context.Background(), &day))
		publisher.TimeframeChanged(context.Background(), timeframe.Event{ID: timeframe.Bookings})
		publisher.Stop()
	})
}
