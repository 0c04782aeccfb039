// File: database/repository/order/subscribe.go
package orderRepo

import (
	"context"

	"tiffin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// subscribe opens a change stream matched by streamMatch, delivers the
// current result of queryFilter immediately, and re-runs the full query on
// every matching commit. The store's commit order is preserved because
// events are consumed from a single stream. Errors are reported through
// onError without closing the subscription; a broken stream ends delivery
// and the caller re-subscribes on reconnect.
func (r *mongoOrderRepo) subscribe(queryFilter, streamMatch bson.M, onChange func([]models.Order), onError func(error)) (Unsubscribe, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: streamMatch}}}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		cancel()
		return nil, err
	}

	go func() {
		defer stream.Close(context.Background())

		if orders, err := r.findNewestFirst(ctx, queryFilter); err != nil {
			onError(err)
		} else {
			onChange(orders)
		}

		for stream.Next(ctx) {
			orders, err := r.findNewestFirst(ctx, queryFilter)
			if err != nil {
				onError(err)
				continue
			}
			onChange(orders)
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			onError(err)
		}
	}()

	return Unsubscribe(cancel), nil
}

func (r *mongoOrderRepo) SubscribeByDate(kitchenID, dateID string, onChange func([]models.Order), onError func(error)) (Unsubscribe, error) {
	queryFilter := bson.M{"kitchenId": kitchenID, "dateId": dateID}
	streamMatch := bson.M{
		"fullDocument.kitchenId": kitchenID,
		"fullDocument.dateId":    dateID,
	}
	return r.subscribe(queryFilter, streamMatch, onChange, onError)
}

func (r *mongoOrderRepo) SubscribeByUser(kitchenID, userID, phoneNumber string, onChange func([]models.Order), onError func(error)) (Unsubscribe, error) {
	queryFilter := userFilter(kitchenID, userID, phoneNumber)

	streamMatch := bson.M{"fullDocument.kitchenId": kitchenID}
	if phoneNumber == "" {
		streamMatch["fullDocument.userId"] = userID
	} else {
		streamMatch["$or"] = []bson.M{
			{"fullDocument.userId": userID},
			{"fullDocument.phoneNumber": phoneNumber},
		}
	}
	return r.subscribe(queryFilter, streamMatch, onChange, onError)
}
