package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *StoreDBService) CreateTopping(topping Topping) (Topping, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if topping.CreatedAt.IsZero() {
		topping.CreatedAt = time.Now()
	}

	res, err := dbService.collectionToppings().InsertOne(ctx, topping)
	if err != nil {
		return topping, err
	}
	topping.ID = res.InsertedID.(primitive.ObjectID)
	return topping, nil
}

func (dbService *StoreDBService) GetToppings() ([]Topping, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := dbService.collectionToppings().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	toppings := []Topping{}
	if err := cursor.All(ctx, &toppings); err != nil {
		return nil, err
	}
	return toppings, nil
}

func (dbService *StoreDBService) CountToppings() (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionToppings().CountDocuments(ctx, bson.M{})
}
