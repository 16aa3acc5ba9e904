package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *StoreDBService) CreateProduct(product Product) (Product, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	res, err := dbService.collectionProducts().InsertOne(ctx, product)
	if err != nil {
		return product, err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (dbService *StoreDBService) GetProduct(productID string) (Product, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var product Product
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return product, err
	}
	err = dbService.collectionProducts().FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	return product, err
}

func (dbService *StoreDBService) GetProducts() ([]Product, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionProducts().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (dbService *StoreDBService) CountProducts() (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionProducts().CountDocuments(ctx, bson.M{})
}

func (dbService *StoreDBService) UpdateProduct(productID string, update Product) (Product, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return Product{}, err
	}

	set := bson.M{
		"name":        update.Name,
		"description": update.Description,
		"price":       update.Price,
		"size":        update.Size,
		"image":       update.Image,
		"promoBadge":  update.PromoBadge,
		"available":   update.Available,
		"updatedAt":   time.Now(),
	}

	var product Product
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = dbService.collectionProducts().FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&product)
	return product, err
}

func (dbService *StoreDBService) DeleteProduct(productID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return err
	}
	_, err = dbService.collectionProducts().DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
