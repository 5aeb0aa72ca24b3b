package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AnshRaj112/dashfi-server/internal/models"
	"github.com/AnshRaj112/dashfi-server/pkg/logging"
)

// RecentTransactionLimit caps the transactions list the dashboard shows.
const RecentTransactionLimit = 50

// DashboardStore reads the dashboard collections, optionally through a cache.
type DashboardStore struct {
	db     *mongo.Database
	cache  *Cache
	logger *logging.Logger
}

func NewDashboardStore(db *mongo.Database, cache *Cache, logger *logging.Logger) *DashboardStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &DashboardStore{db: db, cache: cache, logger: logger}
}

// KPIs returns every KPI document.
func (s *DashboardStore) KPIs(ctx context.Context) ([]models.KPI, error) {
	kpis := []models.KPI{}
	err := s.findAll(ctx, models.KPICollection, options.Find(), &kpis)
	return kpis, err
}

// Products returns every product.
func (s *DashboardStore) Products(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.findAll(ctx, models.ProductCollection, options.Find(), &products); err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Transactions == nil {
			products[i].Transactions = []primitive.ObjectID{}
		}
	}
	return products, nil
}

// Transactions returns the most recent transactions, newest first.
func (s *DashboardStore) Transactions(ctx context.Context) ([]models.Transaction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(RecentTransactionLimit)
	transactions := []models.Transaction{}
	if err := s.findAll(ctx, models.TransactionCollection, opts, &transactions); err != nil {
		return nil, err
	}
	for i := range transactions {
		if transactions[i].ProductIDs == nil {
			transactions[i].ProductIDs = []primitive.ObjectID{}
		}
	}
	return transactions, nil
}

// Invalidate drops cached reads for the given collections.
func (s *DashboardStore) Invalidate(ctx context.Context, collections ...string) error {
	return s.cache.Delete(ctx, collections...)
}

// findAll decodes every document of collection into dest (a pointer to a
// slice). Cache failures are logged and fall through to MongoDB.
func (s *DashboardStore) findAll(ctx context.Context, collection string, opts *options.FindOptions, dest any) error {
	if hit, err := s.cache.Get(ctx, collection, dest); err != nil {
		s.logger.Warn("cache read failed", "collection", collection, "error", err)
	} else if hit {
		return nil
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}

	if err := s.cache.Set(ctx, collection, dest); err != nil {
		s.logger.Warn("cache write failed", "collection", collection, "error", err)
	}
	return nil
}
