package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-solver-api/identity"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository errors shared by the repo package.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// AgentRepo handles the persistence of agent accounts.
type AgentRepo struct {
	collection *mongo.Collection
}

// NewAgentRepo creates a new AgentRepo with the given MongoDB client, database name, and collection name.
func NewAgentRepo(client *mongo.Client, dbName, collectionName string) *AgentRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &AgentRepo{
		collection: collection,
	}
}

// Save inserts or updates an agent in the repository.
// If the agent already exists, it updates the existing record.
// If the agent does not exist, it adds a new record.
func (a *AgentRepo) Save(agent *identity.Agent) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": agent.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     agent.Username,
			"passwordHash": agent.PasswordHash,
			"solved":       agent.Solved,
			"updatedAt":    time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := a.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("username %w", ErrConflict)
		}
		return fmt.Errorf("unexpected error: %v", err)
	}

	return nil
}

// ByID retrieves an agent by their ID.
// Returns an error if the agent is not found or if an unexpected error occurs.
func (a *AgentRepo) ByID(id uuid.UUID) (*identity.Agent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var agent identity.Agent
	if err := a.collection.FindOne(ctx, filter).Decode(&agent); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("agent %w", ErrNotFound)
		}
		return nil, fmt.Errorf("unexpected error: %v", err)
	}
	return &agent, nil
}

// ByUsername retrieves an agent by their username.
// Returns an error if the agent is not found or if an unexpected error occurs.
func (a *AgentRepo) ByUsername(username string) (*identity.Agent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"username": username}
	var agent identity.Agent
	if err := a.collection.FindOne(ctx, filter).Decode(&agent); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("agent %w", ErrNotFound)
		}
		return nil, fmt.Errorf("unexpected error: %v", err)
	}
	return &agent, nil
}
