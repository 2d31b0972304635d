package record

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
)

// Collection keys of the durable key-value layout. Each key maps to one
// document holding the full ordered list for that collection.
const (
	KeyTasks        = "tasks"
	KeyTransactions = "transactions"
	KeyInventory    = "inventory"
	KeyProduction   = "production"
	KeyAlerts       = "alerts"
	KeyInitialized  = "initialized-flag"
)

// Store persists one ordered entity list per collection key plus the
// one-time seeding flag. Reads of a missing key return an empty list.
type Store interface {
	ReadTasks(ctx context.Context) ([]models.Task, error)
	WriteTasks(ctx context.Context, items []models.Task) error
	ReadTransactions(ctx context.Context) ([]models.Transaction, error)
	WriteTransactions(ctx context.Context, items []models.Transaction) error
	ReadInventory(ctx context.Context) ([]models.InventoryItem, error)
	WriteInventory(ctx context.Context, items []models.InventoryItem) error
	ReadProduction(ctx context.Context) ([]models.ProductionRecord, error)
	WriteProduction(ctx context.Context, items []models.ProductionRecord) error
	ReadAlerts(ctx context.Context) ([]models.Alert, error)
	WriteAlerts(ctx context.Context, items []models.Alert) error
	Initialized(ctx context.Context) (bool, error)
	MarkInitialized(ctx context.Context) error
}

// MongoStore implements Store on a single MongoDB collection, one document
// per key: {_id: <key>, items: [...]}.
type MongoStore struct {
	client   *mongo.Client
	dbName   string
	collName string
	logger   *zap.Logger
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri, dbName string, logger *zap.Logger) (*MongoStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client:   client,
		dbName:   dbName,
		collName: "records",
		logger:   logger,
	}, nil
}

// Close closes the MongoDB connection.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(s.collName)
}

type listDoc[T any] struct {
	Key   string `bson:"_id"`
	Items []T    `bson:"items"`
}

type flagDoc struct {
	Key   string `bson:"_id"`
	Value bool   `bson:"value"`
}

// readList loads the list stored under key. A missing document yields an
// empty list; a document that fails to decode is treated the same way, so a
// corrupt value never surfaces as an error to readers.
func readList[T any](ctx context.Context, s *MongoStore, key string) ([]T, error) {
	raw, err := s.collection().FindOne(ctx, bson.M{"_id": key}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", key, err)
	}

	var doc listDoc[T]
	if err := bson.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("corrupt collection value, treating as empty", zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	return doc.Items, nil
}

func writeList[T any](ctx context.Context, s *MongoStore, key string, items []T) error {
	doc := listDoc[T]{Key: key, Items: items}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection().ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}

func (s *MongoStore) ReadTasks(ctx context.Context) ([]models.Task, error) {
	return readList[models.Task](ctx, s, KeyTasks)
}

func (s *MongoStore) WriteTasks(ctx context.Context, items []models.Task) error {
	return writeList(ctx, s, KeyTasks, items)
}

func (s *MongoStore) ReadTransactions(ctx context.Context) ([]models.Transaction, error) {
	return readList[models.Transaction](ctx, s, KeyTransactions)
}

func (s *MongoStore) WriteTransactions(ctx context.Context, items []models.Transaction) error {
	return writeList(ctx, s, KeyTransactions, items)
}

func (s *MongoStore) ReadInventory(ctx context.Context) ([]models.InventoryItem, error) {
	return readList[models.InventoryItem](ctx, s, KeyInventory)
}

func (s *MongoStore) WriteInventory(ctx context.Context, items []models.InventoryItem) error {
	return writeList(ctx, s, KeyInventory, items)
}

func (s *MongoStore) ReadProduction(ctx context.Context) ([]models.ProductionRecord, error) {
	return readList[models.ProductionRecord](ctx, s, KeyProduction)
}

func (s *MongoStore) WriteProduction(ctx context.Context, items []models.ProductionRecord) error {
	return writeList(ctx, s, KeyProduction, items)
}

func (s *MongoStore) ReadAlerts(ctx context.Context) ([]models.Alert, error) {
	return readList[models.Alert](ctx, s, KeyAlerts)
}

func (s *MongoStore) WriteAlerts(ctx context.Context, items []models.Alert) error {
	return writeList(ctx, s, KeyAlerts, items)
}

// Initialized reports whether the one-time seed has already run. A corrupt
// flag document counts as absent.
func (s *MongoStore) Initialized(ctx context.Context) (bool, error) {
	raw, err := s.collection().FindOne(ctx, bson.M{"_id": KeyInitialized}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read flag %s: %w", KeyInitialized, err)
	}

	var doc flagDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("corrupt flag value, treating as unset", zap.String("key", KeyInitialized), zap.Error(err))
		return false, nil
	}
	return doc.Value, nil
}

// MarkInitialized sets the seed flag. The flag is never cleared.
func (s *MongoStore) MarkInitialized(ctx context.Context) error {
	doc := flagDoc{Key: KeyInitialized, Value: true}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection().ReplaceOne(ctx, bson.M{"_id": KeyInitialized}, doc, opts); err != nil {
		return fmt.Errorf("write flag %s: %w", KeyInitialized, err)
	}
	return nil
}
