package store

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *StoreDBService) createIndexForOrders() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionOrders().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "createdAt", Value: -1}},
			},
			{
				Keys: bson.D{{Key: "status", Value: 1}},
			},
			{
				Keys:    bson.D{{Key: "idempotencyKey", Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true),
			},
		},
	)
	return err
}

func (dbService *StoreDBService) CreateOrder(order Order) (Order, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := dbService.collectionOrders().InsertOne(ctx, order)
	return order, err
}

func (dbService *StoreDBService) GetOrder(orderID string) (Order, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var order Order
	err := dbService.collectionOrders().FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
	return order, err
}

func (dbService *StoreDBService) GetOrderByIdempotencyKey(key string) (Order, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var order Order
	err := dbService.collectionOrders().FindOne(ctx, bson.M{"idempotencyKey": key}).Decode(&order)
	return order, err
}

func (dbService *StoreDBService) UpdateOrderStatus(orderID string, status string) (Order, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}

	var order Order
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := dbService.collectionOrders().FindOneAndUpdate(ctx, bson.M{"_id": orderID}, update, opts).Decode(&order)
	return order, err
}

// GetOrders returns all orders, newest first.
func (dbService *StoreDBService) GetOrders() ([]Order, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionOrders().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (dbService *StoreDBService) GetRecentOrders(limit int) ([]Order, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := dbService.collectionOrders().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (dbService *StoreDBService) CountOrders() (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionOrders().CountDocuments(ctx, bson.M{})
}

func (dbService *StoreDBService) CountOrdersByStatus() ([]OrderStatusCount, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := dbService.collectionOrders().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := []OrderStatusCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// GetOrderAmountsByStatus returns the totalAmount values of all orders with
// the given status. Summation is done by the caller with decimal arithmetic.
func (dbService *StoreDBService) GetOrderAmountsByStatus(status string) ([]string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"totalAmount": 1})
	cursor, err := dbService.collectionOrders().Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	amounts := []string{}
	for cursor.Next(ctx) {
		var doc struct {
			TotalAmount string `bson:"totalAmount"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		amounts = append(amounts, doc.TotalAmount)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return amounts, nil
}

func IsErrNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
