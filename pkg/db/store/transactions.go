package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *StoreDBService) createIndexForTransactions() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionTransactions().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "orderId", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "createdAt", Value: -1}},
			},
			{
				Keys: bson.D{{Key: "paymentMethod", Value: 1}},
			},
		},
	)
	return err
}

func (dbService *StoreDBService) CreateTransaction(transaction Transaction) (Transaction, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}

	res, err := dbService.collectionTransactions().InsertOne(ctx, transaction)
	if err != nil {
		return transaction, err
	}
	transaction.ID = res.InsertedID.(primitive.ObjectID)
	return transaction, nil
}

func (dbService *StoreDBService) GetTransaction(transactionID string) (Transaction, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var transaction Transaction
	objID, err := primitive.ObjectIDFromHex(transactionID)
	if err != nil {
		return transaction, err
	}
	err = dbService.collectionTransactions().FindOne(ctx, bson.M{"_id": objID}).Decode(&transaction)
	return transaction, err
}

func (dbService *StoreDBService) GetTransactionByOrderID(orderID string) (Transaction, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var transaction Transaction
	err := dbService.collectionTransactions().FindOne(ctx, bson.M{"orderId": orderID}).Decode(&transaction)
	return transaction, err
}

func (dbService *StoreDBService) UpdateTransactionStatus(transactionID string, status string, capturedAt time.Time) (Transaction, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(transactionID)
	if err != nil {
		return Transaction{}, err
	}

	set := bson.M{"status": status}
	if !capturedAt.IsZero() {
		set["capturedAt"] = capturedAt
	}

	var transaction Transaction
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = dbService.collectionTransactions().FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&transaction)
	return transaction, err
}

// GetTransactions returns all transactions, newest first. The stored document
// never contains raw card data, so no projection is needed to keep the
// response non-sensitive.
func (dbService *StoreDBService) GetTransactions() ([]Transaction, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionTransactions().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	transactions := []Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (dbService *StoreDBService) CountTransactionsByPaymentMethod(paymentMethod string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionTransactions().CountDocuments(ctx, bson.M{"paymentMethod": paymentMethod})
}
