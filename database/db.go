package database

import (
	"context"
	"time"

	"haulify/config"
	"haulify/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const databaseName = "haulify"

// MongoClient is the global MongoDB client, set once by InitDB.
var MongoClient *mongo.Client

// InitDB connects the global Mongo client and verifies the connection
// against the primary before any repository is constructed.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		utils.GetLogger().Sugar().Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	utils.GetLogger().Info("connected to MongoDB")
}

// Database returns the application database all repositories hang their
// collections off.
func Database() *mongo.Database {
	return MongoClient.Database(databaseName)
}
