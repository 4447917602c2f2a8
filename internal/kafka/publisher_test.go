package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"japantune/internal/kafka/mocks"
	"japantune/internal/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	writer := mocks.NewMockMessageWriter(ctrl)
	publisher := &AuditPublisher{writer: writer}

	event := model.AuditEvent{
		Entity:   model.TableUsers,
		EntityID: 4,
		Action:   model.ActionDelete,
		Actor:    "admin",
		Rows:     6,
		At:       time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		assert.Equal(t, "users:4", string(msgs[0].Key))

		var got model.AuditEvent
		require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
		_, err := uuid.Parse(got.ID)
		assert.NoError(t, err)
		assert.Equal(t, event.Action, got.Action)
		assert.Equal(t, event.Rows, got.Rows)
		assert.Equal(t, "admin", got.Actor)
		return nil
	})

	assert.NoError(t, publisher.Publish(context.Background(), event))
}

func TestAuditPublisher_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	writer := mocks.NewMockMessageWriter(ctrl)
	publisher := &AuditPublisher{writer: writer}

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	err := publisher.Publish(context.Background(), model.AuditEvent{ID: "fixed", Entity: model.TableCars, EntityID: 1})
	assert.Error(t, err)
}
