package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStore_Log(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts event with timestamp", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.Log(context.Background(), Event{
			Category:  CategoryAdmin,
			EventType: EventRoleChanged,
			Actor:     "admin@example.com",
			Target:    "member@example.com",
			Success:   true,
		})
		assert.NoError(mt, err)

		started := mt.GetStartedEvent()
		if assert.NotNil(mt, started) {
			assert.Equal(mt, "insert", started.CommandName)
			doc := started.Command.Lookup("documents").Array().Index(0).Value().Document()
			assert.Equal(mt, "role_changed", doc.Lookup("event_type").StringValue())
			assert.False(mt, doc.Lookup("timestamp").Time().IsZero())
		}
	})

	mt.Run("surfaces write errors", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := store.Log(context.Background(), Event{Category: CategoryPayment, EventType: EventPaymentReconciled})
		assert.Error(mt, err)
	})

	mt.Run("creates indexes", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "createdCollectionAutomatically", Value: true}))

		assert.NoError(mt, store.EnsureIndexes(context.Background()))
	})
}
