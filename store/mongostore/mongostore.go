// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package mongostore keeps polls and choices in two MongoDB collections.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

const (
	pollCollection   = "poll"
	choiceCollection = "choice"
)

type pollDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	ExpireAt string             `bson:"expireAt"`
}

func (d pollDoc) model() models.Poll {
	return models.Poll{ID: d.ID.Hex(), Title: d.Title, ExpireAt: d.ExpireAt}
}

// pollId is stored as the hex string the client sent
type choiceDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	PollID string             `bson:"pollId"`
	Votes  int64              `bson:"votes"`
}

func (d choiceDoc) model() models.Choice {
	return models.Choice{ID: d.ID.Hex(), PollID: d.PollID, Title: d.Title, VoteCount: d.Votes}
}

type Store struct {
	client  *mongo.Client
	polls   *mongo.Collection
	choices *mongo.Collection
}

// Open connects to uri, verifies the connection and ensures indexes.
// timeout bounds server selection and every operation on the client.
func Open(ctx context.Context, uri, dbName string, timeout time.Duration) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(dbName)
	s := &Store{
		client:  client,
		polls:   db.Collection(pollCollection),
		choices: db.Collection(choiceCollection),
	}

	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return s, nil
}

// EnsureIndexes creates the unique title index and the pollId lookup index.
// Safe to call multiple times.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.choices.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "pollId", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create choice indexes: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Drop removes both collections. Used by tests.
func (s *Store) Drop(ctx context.Context) error {
	return s.polls.Database().Drop(ctx)
}

func (s *Store) InsertPoll(ctx context.Context, poll models.Poll) (models.Poll, error) {
	doc := pollDoc{ID: primitive.NewObjectID(), Title: poll.Title, ExpireAt: poll.ExpireAt}
	if _, err := s.polls.InsertOne(ctx, doc); err != nil {
		return models.Poll{}, fmt.Errorf("failed to insert poll: %w", err)
	}
	return doc.model(), nil
}

func (s *Store) FindPoll(ctx context.Context, id string) (models.Poll, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Poll{}, store.ErrNotFound
	}

	var doc pollDoc
	if err := s.polls.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return models.Poll{}, notFound(err, "poll")
	}
	return doc.model(), nil
}

func (s *Store) ListPolls(ctx context.Context) ([]models.Poll, error) {
	cursor, err := s.polls.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}

	var docs []pollDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}

	polls := make([]models.Poll, 0, len(docs))
	for _, d := range docs {
		polls = append(polls, d.model())
	}
	return polls, nil
}

func (s *Store) InsertChoice(ctx context.Context, choice models.Choice) (models.Choice, error) {
	doc := choiceDoc{
		ID:     primitive.NewObjectID(),
		Title:  choice.Title,
		PollID: choice.PollID,
		Votes:  choice.VoteCount,
	}
	if _, err := s.choices.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Choice{}, store.ErrDuplicate
		}
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}
	return doc.model(), nil
}

func (s *Store) FindChoice(ctx context.Context, id string) (models.Choice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Choice{}, store.ErrNotFound
	}
	return s.findChoice(ctx, bson.M{"_id": oid})
}

func (s *Store) FindChoiceByTitle(ctx context.Context, title string) (models.Choice, error) {
	return s.findChoice(ctx, bson.M{"title": title})
}

func (s *Store) findChoice(ctx context.Context, filter bson.M) (models.Choice, error) {
	var doc choiceDoc
	if err := s.choices.FindOne(ctx, filter).Decode(&doc); err != nil {
		return models.Choice{}, notFound(err, "choice")
	}
	return doc.model(), nil
}

func (s *Store) ListChoicesByPoll(ctx context.Context, pollID string) ([]models.Choice, error) {
	cursor, err := s.choices.Find(ctx, bson.M{"pollId": pollID})
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}

	var docs []choiceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}

	choices := make([]models.Choice, 0, len(docs))
	for _, d := range docs {
		choices = append(choices, d.model())
	}
	return choices, nil
}

// IncrementVotes applies $inc server-side and returns the updated document.
func (s *Store) IncrementVotes(ctx context.Context, choiceID string) (models.Choice, error) {
	oid, err := primitive.ObjectIDFromHex(choiceID)
	if err != nil {
		return models.Choice{}, store.ErrNotFound
	}

	var doc choiceDoc
	err = s.choices.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"votes": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return models.Choice{}, notFound(err, "choice")
	}
	return doc.model(), nil
}

func notFound(err error, what string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return fmt.Errorf("failed to query %s: %w", what, err)
}
