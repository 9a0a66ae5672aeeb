package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReportRepository implements forum.ReportRepository for MongoDB.
type MongoReportRepository struct {
	collection *mongo.Collection
}

// NewMongoReportRepository creates a new MongoReportRepository
func NewMongoReportRepository(db *mongo.Database) *MongoReportRepository {
	return &MongoReportRepository{collection: db.Collection("reports")}
}

// Create inserts a new report document
func (r *MongoReportRepository) Create(ctx context.Context, report *models.Report) error {
	if _, err := r.collection.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("reports: failed inserting report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by its application id
func (r *MongoReportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("report %s: %w", id, forum.ErrNotFound)
		}
		return nil, fmt.Errorf("reports: failed finding report: %w", err)
	}
	return &report, nil
}

// GetByTarget retrieves the report document grouping complaints against one target
func (r *MongoReportRepository) GetByTarget(ctx context.Context, kind models.TargetKind, targetID string) (*models.Report, error) {
	var report models.Report
	err := r.collection.FindOne(ctx, bson.M{"target_kind": kind, "target_id": targetID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("report for %s %s: %w", kind, targetID, forum.ErrNotFound)
		}
		return nil, fmt.Errorf("reports: failed finding report: %w", err)
	}
	return &report, nil
}

// List retrieves a page of reports, newest first, optionally filtered by status
func (r *MongoReportRepository) List(ctx context.Context, status models.ReportStatus, opts forum.ListOptions) ([]models.Report, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	findOptions := options.Find().
		SetSkip(opts.Skip()).
		SetLimit(opts.Limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("reports: failed finding reports: %w", err)
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("reports: failed reading reports from cursor: %w", err)
	}
	return reports, nil
}

// AddEntry appends one reporter's entry to an existing report
func (r *MongoReportRepository) AddEntry(ctx context.Context, id string, entry models.ReportEntry) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$push": bson.M{"entries": entry},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("reports: failed appending entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("report %s: %w", id, forum.ErrNotFound)
	}
	return nil
}

// SetStatus updates the moderation status of a report
func (r *MongoReportRepository) SetStatus(ctx context.Context, id string, status models.ReportStatus) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("reports: failed updating status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("report %s: %w", id, forum.ErrNotFound)
	}
	return nil
}

// Delete removes a report document by id
func (r *MongoReportRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("reports: failed deleting report: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("report %s: %w", id, forum.ErrNotFound)
	}
	return nil
}
