// Package solveapi provides structures for maze solving requests and responses.
package solveapi

import (
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/puzzle"
)

// SolveRequest carries optional waypoints and the strict flag for one solve
// run. With strict set, every waypoint must be reachable in order.
type SolveRequest struct {
	Waypoints []maze.Point `json:"waypoints"`
	Strict    bool         `json:"strict"`
}

// BatchSolveRequest selects a difficulty tier for queued solving.
type BatchSolveRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
}

// ReplayRequest carries a move sequence to check against a maze. An empty
// sequence is a legal submission; it solves only a maze that starts on its
// goal.
type ReplayRequest struct {
	Moves []maze.Direction `json:"moves"`
}

// WallsResponse represents one cell's wall flags.
type WallsResponse struct {
	Top    bool `json:"top"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
}

// CellResponse represents one grid cell.
type CellResponse struct {
	Walls WallsResponse `json:"walls"`
}

// MazeResponse represents one maze record, walls included, so solving
// clients can plan routes without another round trip.
type MazeResponse struct {
	ID         string           `json:"id"`
	Difficulty string           `json:"difficulty"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Grid       [][]CellResponse `json:"grid"`
	Start      maze.Point       `json:"start"`
	Goal       maze.Point       `json:"goal"`
	Note       string           `json:"specialInstructions,omitempty"`
}

func newMazeResponse(record *puzzle.Record) *MazeResponse {
	grid := make([][]CellResponse, record.Maze.Height)
	for y := range grid {
		row := make([]CellResponse, record.Maze.Width)
		for x := range row {
			cell := record.Maze.Grid[y][x]
			row[x] = CellResponse{Walls: WallsResponse{
				Top:    cell.TopWall,
				Bottom: cell.BottomWall,
				Left:   cell.LeftWall,
				Right:  cell.RightWall,
			}}
		}
		grid[y] = row
	}

	return &MazeResponse{
		ID:         record.ID.String(),
		Difficulty: record.Difficulty,
		Width:      record.Maze.Width,
		Height:     record.Maze.Height,
		Grid:       grid,
		Start:      record.Start,
		Goal:       record.Goal,
		Note:       record.Note,
	}
}

// SolutionResponse represents a stored solution. Moves encode as an array
// of move names; an empty array records that no route was found.
type SolutionResponse struct {
	MazeID    string           `json:"maze_id"`
	Moves     []maze.Direction `json:"moves"`
	Complete  bool             `json:"complete"`
	CreatedAt time.Time        `json:"created_at"`
}

func newSolutionResponse(solution *puzzle.Solution) *SolutionResponse {
	moves := solution.Moves
	if moves == nil {
		moves = []maze.Direction{}
	}

	return &SolutionResponse{
		MazeID:    solution.MazeID.String(),
		Moves:     moves,
		Complete:  solution.Complete,
		CreatedAt: solution.CreatedAt,
	}
}

// VerdictResponse represents the outcome of replaying a move sequence.
type VerdictResponse struct {
	MazeID  string     `json:"maze_id"`
	End     maze.Point `json:"end"`
	Reached bool       `json:"reached"`
	Steps   int        `json:"steps"`
	Fault   string     `json:"fault,omitempty"`
}

func newVerdictResponse(verdict *puzzle.Verdict) *VerdictResponse {
	return &VerdictResponse{
		MazeID:  verdict.MazeID.String(),
		End:     verdict.End,
		Reached: verdict.Reached,
		Steps:   verdict.Steps,
		Fault:   verdict.Fault,
	}
}
