package models

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BusinessColName = "businesses"

type BusinessRepo interface {
	InsertBusiness(ctx context.Context, business *Business) error
	FindBusinessByID(ctx context.Context, id string) (*Business, error)
	UpdateBusinessFields(ctx context.Context, id string, fields map[string]any) (*Business, error)
	DeleteBusiness(ctx context.Context, id string) error
	ListBusinesses(ctx context.Context, filter BusinessFilter) ([]Business, int64, error)
}

func (mdb *MongodbRepo) InsertBusiness(ctx context.Context, business *Business) error {
	col, err := mdb.GetCollection(ctx, BusinessColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if business.ID.IsZero() {
		business.ID = primitive.NewObjectID()
	}
	if _, err := col.InsertOne(ctx, business); err != nil {
		return fmt.Errorf("error inserting business: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) FindBusinessByID(ctx context.Context, id string) (*Business, error) {
	col, err := mdb.GetCollection(ctx, BusinessColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var business Business
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&business)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding business: %v", err)
	}
	return &business, nil
}

func (mdb *MongodbRepo) UpdateBusinessFields(ctx context.Context, id string, fields map[string]any) (*Business, error) {
	col, err := mdb.GetCollection(ctx, BusinessColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Business
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating business: %v", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeleteBusiness(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, BusinessColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting business: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) ListBusinesses(ctx context.Context, filter BusinessFilter) ([]Business, int64, error) {
	col, err := mdb.GetCollection(ctx, BusinessColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{}
	if filter.Sector != "" {
		query["sector"] = filter.Sector
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = []bson.M{
			{"name": pattern},
			{"description": pattern},
		}
	}

	total, err := col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting businesses: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Page-1) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing businesses: %v", err)
	}
	defer cursor.Close(ctx)

	businesses := []Business{}
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, 0, fmt.Errorf("error decoding businesses: %v", err)
	}
	return businesses, total, nil
}
