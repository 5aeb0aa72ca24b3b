// Package seed loads the bundled sample dataset into MongoDB.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AnshRaj112/dashfi-server/internal/models"
)

//go:embed data.json
var bundled []byte

// Dataset is one full set of dashboard documents.
type Dataset struct {
	KPIs         []models.KPI         `json:"kpis"`
	Products     []models.Product     `json:"products"`
	Transactions []models.Transaction `json:"transactions"`
}

// Load decodes the bundled dataset and stamps missing timestamps with now.
func Load(now time.Time) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(bundled, &ds); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	for i := range ds.KPIs {
		stamp(&ds.KPIs[i].CreatedAt, &ds.KPIs[i].UpdatedAt, now)
	}
	for i := range ds.Products {
		stamp(&ds.Products[i].CreatedAt, &ds.Products[i].UpdatedAt, now)
	}
	for i := range ds.Transactions {
		// Later entries are newer so the recent-first listing is stable.
		stamp(&ds.Transactions[i].CreatedAt, &ds.Transactions[i].UpdatedAt, now.Add(time.Duration(i)*time.Second))
	}
	return &ds, nil
}

func stamp(created, updated *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now.UTC()
	}
	if updated.IsZero() {
		*updated = *created
	}
}

// Result counts inserted documents per collection.
type Result struct {
	KPIs         int
	Products     int
	Transactions int
}

// Run inserts ds into db. With drop, the three collections are emptied first.
func Run(ctx context.Context, db *mongo.Database, ds *Dataset, drop bool) (Result, error) {
	var res Result
	var err error

	if drop {
		for _, name := range []string{models.KPICollection, models.ProductCollection, models.TransactionCollection} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				return res, fmt.Errorf("drop %s: %w", name, err)
			}
		}
	}

	if res.KPIs, err = insertMany(ctx, db.Collection(models.KPICollection), ds.KPIs); err != nil {
		return res, err
	}
	if res.Products, err = insertMany(ctx, db.Collection(models.ProductCollection), ds.Products); err != nil {
		return res, err
	}
	if res.Transactions, err = insertMany(ctx, db.Collection(models.TransactionCollection), ds.Transactions); err != nil {
		return res, err
	}
	return res, nil
}

// Invalidator drops cached reads of whole collections.
type Invalidator interface {
	Invalidate(ctx context.Context, collections ...string) error
}

// Refresh is Run followed by invalidating the cached reads of the seeded
// collections, so running servers stop serving the previous data. A nil
// inv skips invalidation.
func Refresh(ctx context.Context, db *mongo.Database, ds *Dataset, drop bool, inv Invalidator) (Result, error) {
	res, err := Run(ctx, db, ds, drop)
	if err != nil {
		return res, err
	}
	if inv == nil {
		return res, nil
	}
	if err := inv.Invalidate(ctx, models.KPICollection, models.ProductCollection, models.TransactionCollection); err != nil {
		return res, fmt.Errorf("invalidate cache: %w", err)
	}
	return res, nil
}

func insertMany[T any](ctx context.Context, coll *mongo.Collection, docs []T) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	out, err := coll.InsertMany(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", coll.Name(), err)
	}
	return len(out.InsertedIDs), nil
}
