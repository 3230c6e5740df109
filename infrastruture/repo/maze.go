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

// MazeRepo handles the persistence of maze records. Wall grids are stored
// in the same nested shape maze files use, so stored documents stay
// readable by the upstream tooling.
type MazeRepo struct {
	collection *mongo.Collection
}

// mazeDoc is the BSON shape of a stored maze record.
type mazeDoc struct {
	ID         uuid.UUID   `bson:"_id"`
	Difficulty string      `bson:"difficulty"`
	Width      int         `bson:"width"`
	Height     int         `bson:"height"`
	Grid       [][]cellDoc `bson:"grid"`
	Start      maze.Point  `bson:"start"`
	Goal       maze.Point  `bson:"goal"`
	Note       string      `bson:"specialInstructions,omitempty"`
}

type cellDoc struct {
	Walls wallsDoc `bson:"walls"`
}

type wallsDoc struct {
	Top    bool `bson:"top"`
	Bottom bool `bson:"bottom"`
	Left   bool `bson:"left"`
	Right  bool `bson:"right"`
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze record keyed by its ID.
func (m *MazeRepo) Save(record *puzzle.Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"difficulty":          record.Difficulty,
			"width":               record.Maze.Width,
			"height":              record.Maze.Height,
			"grid":                gridToDoc(record.Maze),
			"start":               record.Start,
			"goal":                record.Goal,
			"specialInstructions": record.Note,
			"updatedAt":           time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("unexpected error: %v", err)
	}

	return nil
}

// ByID retrieves a maze record by its ID.
func (m *MazeRepo) ByID(id uuid.UUID) (*puzzle.Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var doc mazeDoc
	if err := m.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("maze %w", ErrNotFound)
		}
		return nil, fmt.Errorf("unexpected error: %v", err)
	}

	return docToRecord(&doc)
}

// ByDifficulty retrieves every maze record of one difficulty tier, in a
// stable order.
func (m *MazeRepo) ByDifficulty(difficulty string) ([]*puzzle.Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"difficulty": difficulty}
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %v", err)
	}

	var docs []mazeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("unexpected error: %v", err)
	}

	records := make([]*puzzle.Record, 0, len(docs))
	for i := range docs {
		record, err := docToRecord(&docs[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// gridToDoc converts a wall grid to its stored shape.
func gridToDoc(m *maze.Maze) [][]cellDoc {
	grid := make([][]cellDoc, m.Height)
	for y := range grid {
		grid[y] = make([]cellDoc, m.Width)
		for x := range grid[y] {
			cell := m.Grid[y][x]
			grid[y][x] = cellDoc{Walls: wallsDoc{
				Top:    cell.TopWall,
				Bottom: cell.BottomWall,
				Left:   cell.LeftWall,
				Right:  cell.RightWall,
			}}
		}
	}
	return grid
}

// docToRecord rebuilds a maze record from its stored shape.
func docToRecord(doc *mazeDoc) (*puzzle.Record, error) {
	grid, err := maze.New(doc.Width, doc.Height)
	if err != nil {
		return nil, fmt.Errorf("maze %s: %v", doc.ID, err)
	}

	for y := 0; y < doc.Height && y < len(doc.Grid); y++ {
		for x := 0; x < doc.Width && x < len(doc.Grid[y]); x++ {
			walls := doc.Grid[y][x].Walls
			grid.Grid[y][x] = maze.Cell{
				TopWall:    walls.Top,
				BottomWall: walls.Bottom,
				LeftWall:   walls.Left,
				RightWall:  walls.Right,
			}
		}
	}

	return puzzle.NewRecord(puzzle.RecordConfig{
		ID:         doc.ID,
		Difficulty: doc.Difficulty,
		Maze:       grid,
		Start:      doc.Start,
		Goal:       doc.Goal,
		Note:       doc.Note,
	})
}
