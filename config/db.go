package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var (
	DB          *sql.DB
	MongoDB     *mongo.Database
	MongoClient *mongo.Client
)

const (
	maxRetries = 5
	retryDelay = 5 * time.Second
)

// InitDBWithRetry attempts to connect to PostgreSQL with retries
func InitDBWithRetry(maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = InitDB()
		if err == nil {
			return nil
		}
		log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryDelay)
	}
	return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func InitDB() error {
	dbParams := map[string]string{
		"dbname":   os.Getenv("DB_NAME"),
		"user":     os.Getenv("DB_USER"),
		"password": os.Getenv("DB_PASSWORD"),
		"host":     os.Getenv("DB_HOST"),
		"port":     os.Getenv("DB_PORT"),
		"sslmode":  os.Getenv("DB_SSL_MODE"),
	}

	log.Printf("DB Host: %s", dbParams["host"])
	log.Printf("DB Port: %s", dbParams["port"])
	log.Printf("DB Name: %s", dbParams["dbname"])
	log.Printf("DB User: %s", dbParams["user"])

	// Use default values if environment variables are not set
	if dbParams["dbname"] == "" {
		dbParams["dbname"] = "campaigndb"
	}
	if dbParams["user"] == "" {
		dbParams["user"] = "postgres"
	}
	if dbParams["host"] == "" {
		dbParams["host"] = "localhost"
	}
	if dbParams["port"] == "" {
		dbParams["port"] = "5432"
	}
	if dbParams["sslmode"] == "" {
		if strings.Contains(dbParams["host"], "aivencloud.com") {
			dbParams["sslmode"] = "require"
		} else {
			dbParams["sslmode"] = "disable"
		}
	}

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dbParams["host"], dbParams["port"], dbParams["user"],
		dbParams["password"], dbParams["dbname"], dbParams["sslmode"])

	log.Printf("Connecting to PostgreSQL with sslmode=%s", dbParams["sslmode"])

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening PostgreSQL database: %v", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = DB.PingContext(ctx); err != nil {
		return fmt.Errorf("error connecting to PostgreSQL database: %v", err)
	}

	log.Printf("Successfully connected to PostgreSQL database: %s", dbParams["dbname"])

	// The registry tables feed report generation; fail fast if they are missing
	for _, table := range []string{"local_bodies", "voters", "coordinators"} {
		var tableExists bool
		err = DB.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_name = $1
			)`, table).Scan(&tableExists)
		if err != nil {
			return fmt.Errorf("error checking %s table: %v", table, err)
		}
		if !tableExists {
			return fmt.Errorf("%s table does not exist in the database", table)
		}
	}

	log.Printf("Verified registry tables exist")
	return nil
}

// InitPostgreSQL creates the lookup indexes the report queries depend on
func InitPostgreSQL() error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_local_bodies_location ON local_bodies (type, district, org_district, mandal)`,
		`CREATE INDEX IF NOT EXISTS idx_voters_location ON voters (district, org_district, mandal, booth)`,
		`CREATE INDEX IF NOT EXISTS idx_coordinators_phone ON coordinators (phone_number)`,
	}

	for _, idx := range indexes {
		_, err := DB.Exec(idx)
		if err != nil {
			return fmt.Errorf("failed to create index: %v", err)
		}
	}

	return nil
}

// ConnectWithRetry attempts to connect to MongoDB with retries
func ConnectWithRetry(maxRetries int) error {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return fmt.Errorf("MONGO_URI environment variable is required but not set")
	}

	var err error
	for i := 0; i < maxRetries; i++ {
		err = connectMongo(mongoURI)
		if err == nil {
			return nil
		}
		log.Printf("Failed to connect to MongoDB (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryDelay)
	}
	return fmt.Errorf("failed to connect after %d attempts: %v", maxRetries, err)
}

// connectMongo initializes the MongoDB connection
func connectMongo(uri string) error {
	clientOptions := options.Client().ApplyURI(uri).
		SetMaxPoolSize(100).
		SetMinPoolSize(20).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetSocketTimeout(30 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority())).
		SetReadConcern(readconcern.Majority()).
		SetReadPreference(readpref.Primary())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	MongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("error connecting to MongoDB: %v", err)
	}

	if err = MongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("error pinging MongoDB: %v", err)
	}

	dbName := os.Getenv("MONGO_DB_NAME")
	if dbName == "" {
		dbName = "campaign_sessions"
	}
	MongoDB = MongoClient.Database(dbName)
	log.Printf("Successfully connected to MongoDB database: %s", dbName)

	if err := createSessionIndexes(ctx); err != nil {
		return fmt.Errorf("error creating session indexes: %v", err)
	}

	return nil
}

func createSessionIndexes(ctx context.Context) error {
	sessions := MongoDB.Collection("sessions")

	// Mongo evicts expired sessions on its own; created_at + 24h mirrors the
	// login window the auth store enforces.
	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("session_token_idx"),
		},
		{
			Keys:    bson.D{{Key: "phone_number", Value: 1}},
			Options: options.Index().SetName("session_phone_idx"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(86400).SetName("session_ttl_idx"),
		},
	}

	if _, err := sessions.Indexes().DropAll(ctx); err != nil {
		log.Printf("Warning: Failed to drop existing session indexes: %v", err)
	}

	_, err := sessions.Indexes().CreateMany(ctx, sessionIndexes)
	if err != nil {
		return fmt.Errorf("error creating session indexes: %v", err)
	}
	log.Printf("Successfully created session indexes")

	return nil
}

// Health check functions
func CheckMongoHealth() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := MongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB health check failed: %v", err)
	}
	return nil
}

func CheckPostgresHealth() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := DB.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %v", err)
	}
	return nil
}

// Graceful shutdown
func CloseDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if DB != nil {
		if err := DB.Close(); err != nil {
			log.Printf("Error closing PostgreSQL connection: %v", err)
		}
	}

	if MongoClient != nil {
		if err := MongoClient.Disconnect(ctx); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}
}
