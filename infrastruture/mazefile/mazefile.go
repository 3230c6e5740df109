/*
Package mazefile decodes maze evaluation files and encodes solution files.

A maze file is a JSON document of the shape

	{"mazes": {"simple": [...], "easy": [...], ...}}

with each maze carrying its UUID, dimensions, per-cell wall flags and start
and goal cells. Tiers are read in their fixed order; unknown tier keys are
ignored. Start defaults to (0,0) and goal falls back to the legacy "end"
field, then to the bottom-right cell, matching the files produced upstream.

A solution file maps maze UUIDs to move name arrays; an empty array records
that no route was found.
*/
package mazefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/puzzle"
	"github.com/google/uuid"
)

// ErrBadDocument is returned when a maze file cannot be decoded into
// records.
var ErrBadDocument = errors.New("malformed maze document")

// document is the top level wire shape of a maze file.
type document struct {
	Mazes map[string][]mazeEntry `json:"mazes"`
}

// mazeEntry is the wire shape of one maze.
type mazeEntry struct {
	ID     string        `json:"id"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Grid   [][]cellEntry `json:"grid"`
	Start  *maze.Point   `json:"start"`
	Goal   *maze.Point   `json:"goal"`
	End    *maze.Point   `json:"end"` // legacy alias for goal
	Note   string        `json:"specialInstructions"`
}

type cellEntry struct {
	Walls wallsEntry `json:"walls"`
}

type wallsEntry struct {
	Top    bool `json:"top"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
}

// Decode reads a maze file and returns its records in tier order, file
// order within each tier.
func Decode(r io.Reader) ([]*puzzle.Record, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	var records []*puzzle.Record
	for _, difficulty := range puzzle.Difficulties() {
		for idx, entry := range doc.Mazes[difficulty] {
			record, err := entry.toRecord(difficulty)
			if err != nil {
				return nil, fmt.Errorf("%s maze %d: %w", difficulty, idx, err)
			}
			records = append(records, record)
		}
	}

	return records, nil
}

// EncodeSolutions writes a solution file mapping maze IDs to move name
// arrays. Mazes without a route are written with an empty array. Keys are
// emitted in sorted order, so output is reproducible.
func EncodeSolutions(w io.Writer, solutions map[uuid.UUID][]maze.Direction) error {
	out := make(map[string][]string, len(solutions))
	for id, moves := range solutions {
		names := make([]string, 0, len(moves))
		for _, d := range moves {
			names = append(names, d.String())
		}
		out[id.String()] = names
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	if _, err := w.Write(encoded); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// toRecord validates one wire entry and builds its record.
func (e *mazeEntry) toRecord(difficulty string) (*puzzle.Record, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad id %q", ErrBadDocument, e.ID)
	}

	grid, err := maze.New(e.Width, e.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	if len(e.Grid) != e.Height {
		return nil, fmt.Errorf("%w: grid has %d rows, want %d", ErrBadDocument, len(e.Grid), e.Height)
	}
	for y, row := range e.Grid {
		if len(row) != e.Width {
			return nil, fmt.Errorf("%w: grid row %d has %d cells, want %d", ErrBadDocument, y, len(row), e.Width)
		}
		for x, cell := range row {
			grid.Grid[y][x] = maze.Cell{
				TopWall:    cell.Walls.Top,
				BottomWall: cell.Walls.Bottom,
				LeftWall:   cell.Walls.Left,
				RightWall:  cell.Walls.Right,
			}
		}
	}

	start := maze.Point{X: 0, Y: 0}
	if e.Start != nil {
		start = *e.Start
	}

	goal := maze.Point{X: e.Width - 1, Y: e.Height - 1}
	switch {
	case e.Goal != nil:
		goal = *e.Goal
	case e.End != nil:
		goal = *e.End
	}

	return puzzle.NewRecord(puzzle.RecordConfig{
		ID:         id,
		Difficulty: difficulty,
		Maze:       grid,
		Start:      start,
		Goal:       goal,
		Note:       e.Note,
	})
}
