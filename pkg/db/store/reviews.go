package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *StoreDBService) CreateReview(review Review) (Review, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	res, err := dbService.collectionReviews().InsertOne(ctx, review)
	if err != nil {
		return review, err
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return review, nil
}

func (dbService *StoreDBService) GetReviews() ([]Review, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionReviews().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (dbService *StoreDBService) UpdateReview(reviewID string, update Review) (Review, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return Review{}, err
	}

	set := bson.M{
		"customerName": update.CustomerName,
		"rating":       update.Rating,
		"comment":      update.Comment,
		"visible":      update.Visible,
		"updatedAt":    time.Now(),
	}

	var review Review
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = dbService.collectionReviews().FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&review)
	return review, err
}

func (dbService *StoreDBService) DeleteReview(reviewID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return err
	}
	_, err = dbService.collectionReviews().DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
