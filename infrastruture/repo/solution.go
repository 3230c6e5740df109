package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/puzzle"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SolutionRepo handles the persistence of computed solutions, one per maze.
type SolutionRepo struct {
	collection *mongo.Collection
}

// solutionDoc is the BSON shape of a stored solution. Moves are stored as
// their wire names.
type solutionDoc struct {
	MazeID    uuid.UUID `bson:"_id"`
	Moves     []string  `bson:"moves"`
	Complete  bool      `bson:"complete"`
	CreatedAt time.Time `bson:"createdAt"`
}

// NewSolutionRepo creates a new SolutionRepo with the given MongoDB client, database name, and collection name.
func NewSolutionRepo(client *mongo.Client, dbName, collectionName string) *SolutionRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SolutionRepo{
		collection: collection,
	}
}

// Save inserts or replaces the solution of a maze.
func (s *SolutionRepo) Save(solution *puzzle.Solution) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	moves := make([]string, len(solution.Moves))
	for i, d := range solution.Moves {
		moves[i] = d.String()
	}

	filter := bson.M{"_id": solution.MazeID}
	update := bson.M{
		"$set": bson.M{
			"moves":     moves,
			"complete":  solution.Complete,
			"createdAt": solution.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("unexpected error: %v", err)
	}

	return nil
}

// ByMazeID retrieves the stored solution of a maze.
func (s *SolutionRepo) ByMazeID(id uuid.UUID) (*puzzle.Solution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var doc solutionDoc
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("solution %w", ErrNotFound)
		}
		return nil, fmt.Errorf("unexpected error: %v", err)
	}

	moves := make([]maze.Direction, len(doc.Moves))
	for i, name := range doc.Moves {
		d, err := maze.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("solution %s: %v", doc.MazeID, err)
		}
		moves[i] = d
	}

	return &puzzle.Solution{
		MazeID:    doc.MazeID,
		Moves:     moves,
		Complete:  doc.Complete,
		CreatedAt: doc.CreatedAt,
	}, nil
}
