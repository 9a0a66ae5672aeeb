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

// MongoReplyRepository implements forum.ReplyRepository for MongoDB.
type MongoReplyRepository struct {
	collection *mongo.Collection
}

// NewMongoReplyRepository creates a new MongoReplyRepository
func NewMongoReplyRepository(db *mongo.Database) *MongoReplyRepository {
	return &MongoReplyRepository{collection: db.Collection("replies")}
}

// Create inserts a new reply document
func (r *MongoReplyRepository) Create(ctx context.Context, reply *models.Reply) error {
	if _, err := r.collection.InsertOne(ctx, reply); err != nil {
		return fmt.Errorf("replies: failed inserting reply: %w", err)
	}
	return nil
}

// GetByID retrieves a reply by its application id
func (r *MongoReplyRepository) GetByID(ctx context.Context, id string) (*models.Reply, error) {
	var reply models.Reply
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&reply)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("reply %s: %w", id, forum.ErrNotFound)
		}
		return nil, fmt.Errorf("replies: failed finding reply: %w", err)
	}
	return &reply, nil
}

// ListByComment retrieves a page of replies by their comment_id foreign field
func (r *MongoReplyRepository) ListByComment(ctx context.Context, commentID string, opts forum.ListOptions) ([]models.Reply, error) {
	findOptions := options.Find().
		SetSkip(opts.Skip()).
		SetLimit(opts.Limit).
		SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"comment_id": commentID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("replies: failed finding replies: %w", err)
	}
	defer cursor.Close(ctx)

	replies := []models.Reply{}
	if err := cursor.All(ctx, &replies); err != nil {
		return nil, fmt.Errorf("replies: failed reading replies from cursor: %w", err)
	}
	return replies, nil
}

// Update replaces the mutable fields of a reply document
func (r *MongoReplyRepository) Update(ctx context.Context, reply *models.Reply) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": reply.ID}, bson.M{"$set": reply})
	if err != nil {
		return fmt.Errorf("replies: failed updating reply: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reply %s: %w", reply.ID, forum.ErrNotFound)
	}
	return nil
}

// Delete removes a reply document by id
func (r *MongoReplyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("replies: failed deleting reply: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("reply %s: %w", id, forum.ErrNotFound)
	}
	return nil
}

// DeleteByComments removes every reply under any of the comments
func (r *MongoReplyRepository) DeleteByComments(ctx context.Context, commentIDs []string) error {
	if len(commentIDs) == 0 {
		return nil
	}
	if _, err := r.collection.DeleteMany(ctx, bson.M{"comment_id": bson.M{"$in": commentIDs}}); err != nil {
		return fmt.Errorf("replies: failed bulk deleting replies: %w", err)
	}
	return nil
}
