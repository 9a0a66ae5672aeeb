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

// MongoPostRepository implements forum.PostRepository for MongoDB. All
// lookups go through the application-assigned id field, never the native
// _id, so documents stay addressable across stores.
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// Create inserts a new post document
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("posts: failed inserting post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its application id
func (r *MongoPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("post %s: %w", id, forum.ErrNotFound)
		}
		return nil, fmt.Errorf("posts: failed finding post: %w", err)
	}
	return &post, nil
}

// List retrieves a page of posts under the requested ordering
func (r *MongoPostRepository) List(ctx context.Context, opts forum.ListOptions) ([]models.Post, error) {
	return r.list(ctx, bson.M{}, opts)
}

// ListByJob retrieves a page of posts attached to one job
func (r *MongoPostRepository) ListByJob(ctx context.Context, jobID string, opts forum.ListOptions) ([]models.Post, error) {
	return r.list(ctx, bson.M{"job_id": jobID}, opts)
}

func (r *MongoPostRepository) list(ctx context.Context, filter bson.M, opts forum.ListOptions) ([]models.Post, error) {
	posts := []models.Post{}

	// Sorting by like or comment volume needs the array sizes, which a
	// plain Find cannot sort on.
	switch opts.Sort {
	case forum.SortMostLiked, forum.SortMostCommented:
		sizeField, sourceField := "like_count", "$likes"
		if opts.Sort == forum.SortMostCommented {
			sizeField, sourceField = "comment_count", "$comments"
		}
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$match", Value: filter}},
			bson.D{{Key: "$addFields", Value: bson.M{sizeField: bson.M{"$size": bson.M{"$ifNull": bson.A{sourceField, bson.A{}}}}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: sizeField, Value: -1}, {Key: "created_at", Value: -1}}}},
			bson.D{{Key: "$skip", Value: opts.Skip()}},
			bson.D{{Key: "$limit", Value: opts.Limit}},
		}
		cursor, err := r.collection.Aggregate(ctx, pipeline)
		if err != nil {
			return nil, fmt.Errorf("posts: failed aggregating posts: %w", err)
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &posts); err != nil {
			return nil, fmt.Errorf("posts: failed reading posts from cursor: %w", err)
		}
		return posts, nil
	default:
		findOptions := options.Find().
			SetSkip(opts.Skip()).
			SetLimit(opts.Limit).
			SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := r.collection.Find(ctx, filter, findOptions)
		if err != nil {
			return nil, fmt.Errorf("posts: failed finding posts: %w", err)
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &posts); err != nil {
			return nil, fmt.Errorf("posts: failed reading posts from cursor: %w", err)
		}
		return posts, nil
	}
}

// Update replaces the mutable fields of a post document
func (r *MongoPostRepository) Update(ctx context.Context, post *models.Post) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": post.ID}, bson.M{"$set": post})
	if err != nil {
		return fmt.Errorf("posts: failed updating post: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post %s: %w", post.ID, forum.ErrNotFound)
	}
	return nil
}

// Delete removes a post document by id
func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("posts: failed deleting post: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("post %s: %w", id, forum.ErrNotFound)
	}
	return nil
}

// DeleteMany removes every post whose id is in ids. Ids that no longer
// match anything are skipped, which keeps bulk cascades idempotent.
func (r *MongoPostRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.collection.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("posts: failed bulk deleting posts: %w", err)
	}
	return nil
}

// PushComment appends a comment id to the post's cache list
func (r *MongoPostRepository) PushComment(ctx context.Context, postID, commentID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": postID},
		bson.M{"$push": bson.M{"comments": commentID}})
	if err != nil {
		return fmt.Errorf("posts: failed pushing comment id: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post %s: %w", postID, forum.ErrNotFound)
	}
	return nil
}

// PullComment removes a comment id from the post's cache list
func (r *MongoPostRepository) PullComment(ctx context.Context, postID, commentID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": postID},
		bson.M{"$pull": bson.M{"comments": commentID}})
	if err != nil {
		return fmt.Errorf("posts: failed pulling comment id: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post %s: %w", postID, forum.ErrNotFound)
	}
	return nil
}
