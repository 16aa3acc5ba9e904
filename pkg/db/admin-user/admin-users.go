package adminuser

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	LastLoginAt  time.Time          `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
}

func (dbService *AdminUserDBService) createIndexForAdminUsers() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionAdminUsers().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	)
	return err
}

func (dbService *AdminUserDBService) CreateAdminUser(user AdminUser) (AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	res, err := dbService.collectionAdminUsers().InsertOne(ctx, user)
	if err != nil {
		return user, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (dbService *AdminUserDBService) GetAdminUserByEmail(email string) (AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user AdminUser
	err := dbService.collectionAdminUsers().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (dbService *AdminUserDBService) GetAdminUser(userID string) (AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user AdminUser
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return user, err
	}
	err = dbService.collectionAdminUsers().FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	return user, err
}

func (dbService *AdminUserDBService) UpdateLastLoginAt(userID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}
	_, err = dbService.collectionAdminUsers().UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"lastLoginAt": time.Now()}},
	)
	return err
}

func (dbService *AdminUserDBService) CountAdminUsers() (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionAdminUsers().CountDocuments(ctx, bson.M{})
}
