package adminuser

import (
	"context"
	"log/slog"
	"time"

	"github.com/acai-prime/store-backend/pkg/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	COLLECTION_NAME_ADMIN_USERS = "adminUsers"
)

type AdminUserDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewAdminUserDBService(configs db.DBConfig) (*AdminUserDBService, error) {
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

	auDBSc := &AdminUserDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}
	return auDBSc, nil
}

func (dbService *AdminUserDBService) getDBName() string {
	return dbService.DBNamePrefix + "acai-store_admin"
}

func (dbService *AdminUserDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *AdminUserDBService) collectionAdminUsers() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_ADMIN_USERS)
}

func (dbService *AdminUserDBService) CreateDefaultIndexes() {
	if err := dbService.createIndexForAdminUsers(); err != nil {
		slog.Error("Error creating indexes for admin users", slog.String("error", err.Error()))
	}
}
