package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct{ mock.Mock }

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockMessageWriter) Close() error {
	return m.Called().Error(0)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Run("one keyed message per event", func(t *testing.T) {
		ctx := context.Background()
		routeID := kernel.NewUUID()
		at := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
		event := route.RouteCompleted{RouteID: routeID, Name: "North Valley", Stops: 4, At: at}

		var written []kafka.Message
		writer := new(MockMessageWriter)
		writer.On("WriteMessages", ctx, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()

		publisher := events.NewKafkaPublisherWithWriter(writer, "fulfillment.events")
		require.NoError(t, publisher.Publish(ctx, event))

		require.Len(t, written, 1)
		msg := written[0]
		assert.Equal(t, routeID.String(), string(msg.Key))
		assert.Equal(t, at, msg.Time)
		assert.Contains(t, msg.Headers, kafka.Header{Key: "event-type", Value: []byte(route.RouteCompletedEventName)})

		var body struct {
			Type        string         `json:"type"`
			AggregateID string         `json:"aggregateId"`
			Data        map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg.Value, &body))
		assert.Equal(t, route.RouteCompletedEventName, body.Type)
		assert.Equal(t, routeID.String(), body.AggregateID)
		assert.Equal(t, "North Valley", body.Data["name"])
		assert.EqualValues(t, 4, body.Data["stops"])
		writer.AssertExpectations(t)
	})

	t.Run("nothing to write", func(t *testing.T) {
		writer := new(MockMessageWriter)
		publisher := events.NewKafkaPublisherWithWriter(writer, "fulfillment.events")

		require.NoError(t, publisher.Publish(context.Background()))
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("writer failure names the topic", func(t *testing.T) {
		ctx := context.Background()
		writer := new(MockMessageWriter)
		writer.On("WriteMessages", ctx, mock.Anything).Return(errors.New("leader not available")).Once()

		publisher := events.NewKafkaPublisherWithWriter(writer, "fulfillment.events")
		err := publisher.Publish(ctx, testEvent{id: kernel.NewUUID(), at: time.Now()})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "fulfillment.events")
	})
}
