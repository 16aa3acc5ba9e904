package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/acai-prime/store-backend/pkg/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_PRODUCTS         = "products"
	COLLECTION_NAME_TOPPINGS         = "toppings"
	COLLECTION_NAME_ORDERS           = "orders"
	COLLECTION_NAME_TRANSACTIONS     = "transactions"
	COLLECTION_NAME_ANALYTICS_EVENTS = "analyticsEvents"
	COLLECTION_NAME_REVIEWS          = "reviews"
)

type StoreDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewStoreDBService(configs db.DBConfig) (*StoreDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	sDBSc := &StoreDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}
	return sDBSc, nil
}

func (dbService *StoreDBService) getDBName() string {
	return dbService.DBNamePrefix + "acai-store"
}

func (dbService *StoreDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *StoreDBService) collectionProducts() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_PRODUCTS)
}

func (dbService *StoreDBService) collectionToppings() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_TOPPINGS)
}

func (dbService *StoreDBService) collectionOrders() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_ORDERS)
}

func (dbService *StoreDBService) collectionTransactions() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_TRANSACTIONS)
}

func (dbService *StoreDBService) collectionAnalyticsEvents() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_ANALYTICS_EVENTS)
}

func (dbService *StoreDBService) collectionReviews() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_REVIEWS)
}

func (dbService *StoreDBService) CreateDefaultIndexes() {
	if err := dbService.createIndexForOrders(); err != nil {
		slog.Error("Error creating indexes for orders", slog.String("error", err.Error()))
	}
	if err := dbService.createIndexForTransactions(); err != nil {
		slog.Error("Error creating indexes for transactions", slog.String("error", err.Error()))
	}
	if err := dbService.createIndexForAnalyticsEvents(); err != nil {
		slog.Error("Error creating indexes for analytics events", slog.String("error", err.Error()))
	}
}
