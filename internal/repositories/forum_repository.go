package repositories

import (
	"context"
	"fmt"

	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoForumRepository implements forum.ForumRepository for MongoDB.
type MongoForumRepository struct {
	collection *mongo.Collection
}

// NewMongoForumRepository creates a new MongoForumRepository
func NewMongoForumRepository(db *mongo.Database) *MongoForumRepository {
	return &MongoForumRepository{collection: db.Collection("job_forums")}
}

// Create inserts a new job forum document
func (r *MongoForumRepository) Create(ctx context.Context, f *models.JobForum) error {
	if _, err := r.collection.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("forums: failed inserting forum: %w", err)
	}
	return nil
}

// GetByID retrieves a forum by its application id
func (r *MongoForumRepository) GetByID(ctx context.Context, id string) (*models.JobForum, error) {
	var f models.JobForum
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("forum %s: %w", id, forum.ErrNotFound)
		}
		return nil, fmt.Errorf("forums: failed finding forum: %w", err)
	}
	return &f, nil
}

// GetByJob retrieves the forum attached to one job, if any
func (r *MongoForumRepository) GetByJob(ctx context.Context, jobID string) (*models.JobForum, error) {
	var f models.JobForum
	err := r.collection.FindOne(ctx, bson.M{"job_id": jobID}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("forum for job %s: %w", jobID, forum.ErrNotFound)
		}
		return nil, fmt.Errorf("forums: failed finding forum: %w", err)
	}
	return &f, nil
}

// List retrieves a page of forums, newest first
func (r *MongoForumRepository) List(ctx context.Context, opts forum.ListOptions) ([]models.JobForum, error) {
	findOptions := options.Find().
		SetSkip(opts.Skip()).
		SetLimit(opts.Limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("forums: failed finding forums: %w", err)
	}
	defer cursor.Close(ctx)

	forums := []models.JobForum{}
	if err := cursor.All(ctx, &forums); err != nil {
		return nil, fmt.Errorf("forums: failed reading forums from cursor: %w", err)
	}
	return forums, nil
}

// PushPost appends a post id to the cache list of the job's forum
func (r *MongoForumRepository) PushPost(ctx context.Context, jobID, postID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"job_id": jobID},
		bson.M{"$push": bson.M{"posts": postID}})
	if err != nil {
		return fmt.Errorf("forums: failed pushing post id: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("forum for job %s: %w", jobID, forum.ErrNotFound)
	}
	return nil
}

// PullPost removes a post id from the cache list of the job's forum
func (r *MongoForumRepository) PullPost(ctx context.Context, jobID, postID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"job_id": jobID},
		bson.M{"$pull": bson.M{"posts": postID}})
	if err != nil {
		return fmt.Errorf("forums: failed pulling post id: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("forum for job %s: %w", jobID, forum.ErrNotFound)
	}
	return nil
}

// PushMember appends an actor to the forum's member list
func (r *MongoForumRepository) PushMember(ctx context.Context, id string, member models.Actor) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$push": bson.M{"members": member}})
	if err != nil {
		return fmt.Errorf("forums: failed pushing member: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("forum %s: %w", id, forum.ErrNotFound)
	}
	return nil
}

// Delete removes a forum document by id
func (r *MongoForumRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("forums: failed deleting forum: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("forum %s: %w", id, forum.ErrNotFound)
	}
	return nil
}
