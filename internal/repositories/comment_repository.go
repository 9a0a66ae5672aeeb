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

// MongoCommentRepository implements forum.CommentRepository for MongoDB.
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

// Create inserts a new comment document
func (r *MongoCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("comments: failed inserting comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by its application id
func (r *MongoCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("comment %s: %w", id, forum.ErrNotFound)
		}
		return nil, fmt.Errorf("comments: failed finding comment: %w", err)
	}
	return &comment, nil
}

// ListByPost retrieves a page of comments by their post_id foreign field
func (r *MongoCommentRepository) ListByPost(ctx context.Context, postID string, opts forum.ListOptions) ([]models.Comment, error) {
	findOptions := options.Find().
		SetSkip(opts.Skip()).
		SetLimit(opts.Limit).
		SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"post_id": postID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("comments: failed finding comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("comments: failed reading comments from cursor: %w", err)
	}
	return comments, nil
}

// IDsByPost collects the ids of every comment under one post
func (r *MongoCommentRepository) IDsByPost(ctx context.Context, postID string) ([]string, error) {
	return r.ids(ctx, bson.M{"post_id": postID})
}

// IDsByPosts collects the ids of every comment under any of the posts
func (r *MongoCommentRepository) IDsByPosts(ctx context.Context, postIDs []string) ([]string, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	return r.ids(ctx, bson.M{"post_id": bson.M{"$in": postIDs}})
}

func (r *MongoCommentRepository) ids(ctx context.Context, filter bson.M) ([]string, error) {
	findOptions := options.Find().SetProjection(bson.M{"id": 1, "_id": 0})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("comments: failed finding comment ids: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("comments: failed reading comment ids from cursor: %w", err)
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// Update replaces the mutable fields of a comment document
func (r *MongoCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": comment.ID}, bson.M{"$set": comment})
	if err != nil {
		return fmt.Errorf("comments: failed updating comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("comment %s: %w", comment.ID, forum.ErrNotFound)
	}
	return nil
}

// Delete removes a comment document by id
func (r *MongoCommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("comments: failed deleting comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("comment %s: %w", id, forum.ErrNotFound)
	}
	return nil
}

// DeleteByPost removes every comment under one post
func (r *MongoCommentRepository) DeleteByPost(ctx context.Context, postID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"post_id": postID}); err != nil {
		return fmt.Errorf("comments: failed bulk deleting comments: %w", err)
	}
	return nil
}

// DeleteByPosts removes every comment under any of the posts
func (r *MongoCommentRepository) DeleteByPosts(ctx context.Context, postIDs []string) error {
	if len(postIDs) == 0 {
		return nil
	}
	if _, err := r.collection.DeleteMany(ctx, bson.M{"post_id": bson.M{"$in": postIDs}}); err != nil {
		return fmt.Errorf("comments: failed bulk deleting comments: %w", err)
	}
	return nil
}

// PushReply appends a reply id to the comment's cache list
func (r *MongoCommentRepository) PushReply(ctx context.Context, commentID, replyID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": commentID},
		bson.M{"$push": bson.M{"replies": replyID}})
	if err != nil {
		return fmt.Errorf("comments: failed pushing reply id: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("comment %s: %w", commentID, forum.ErrNotFound)
	}
	return nil
}

// PullReply removes a reply id from the comment's cache list
func (r *MongoCommentRepository) PullReply(ctx context.Context, commentID, replyID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": commentID},
		bson.M{"$pull": bson.M{"replies": replyID}})
	if err != nil {
		return fmt.Errorf("comments: failed pulling reply id: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("comment %s: %w", commentID, forum.ErrNotFound)
	}
	return nil
}
