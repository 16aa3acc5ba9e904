package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (dbService *StoreDBService) createIndexForAnalyticsEvents() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionAnalyticsEvents().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "eventType", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "createdAt", Value: -1}},
			},
		},
	)
	return err
}

func (dbService *StoreDBService) TrackAnalyticsEvent(event AnalyticsEvent) (AnalyticsEvent, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	res, err := dbService.collectionAnalyticsEvents().InsertOne(ctx, event)
	if err != nil {
		return event, err
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return event, nil
}

func (dbService *StoreDBService) CountAnalyticsEventsByType(eventType string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionAnalyticsEvents().CountDocuments(ctx, bson.M{"eventType": eventType})
}
