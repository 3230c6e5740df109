package solveapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	identityapi "github.com/beka-birhanu/maze-solver-api/api/identity"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/puzzle"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSolver struct {
	records       map[uuid.UUID]*puzzle.Record
	solutions     map[uuid.UUID]*puzzle.Solution
	importRecords []*puzzle.Record
	importErr     error

	lastWaypoints []maze.Point
	lastStrict    bool
	lastAgentID   uuid.UUID
}

func newFakeSolver() *fakeSolver {
	return &fakeSolver{
		records:   make(map[uuid.UUID]*puzzle.Record),
		solutions: make(map[uuid.UUID]*puzzle.Solution),
	}
}

func (f *fakeSolver) Import(r io.Reader) ([]*puzzle.Record, error) {
	if _, err := io.ReadAll(r); err != nil {
		return nil, err
	}
	if f.importErr != nil {
		return nil, f.importErr
	}
	return f.importRecords, nil
}

func (f *fakeSolver) Maze(id uuid.UUID) (*puzzle.Record, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return record, nil
}

func (f *fakeSolver) ByDifficulty(difficulty string) ([]*puzzle.Record, error) {
	if err := puzzle.ValidateDifficulty(difficulty); err != nil {
		return nil, err
	}
	var matches []*puzzle.Record
	for _, record := range f.records {
		if record.Difficulty == difficulty {
			matches = append(matches, record)
		}
	}
	return matches, nil
}

func (f *fakeSolver) Solve(id uuid.UUID, waypoints []maze.Point, strict bool) (*puzzle.Solution, error) {
	f.lastWaypoints = waypoints
	f.lastStrict = strict
	solution, ok := f.solutions[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return solution, nil
}

func (f *fakeSolver) SolveBatch(string, []uuid.UUID) {}

func (f *fakeSolver) Solution(id uuid.UUID) (*puzzle.Solution, error) {
	solution, ok := f.solutions[id]
	if !ok {
		return nil, errors.New("solution not found")
	}
	return solution, nil
}

func (f *fakeSolver) Replay(mazeID, agentID uuid.UUID, moves []maze.Direction) (*puzzle.Verdict, error) {
	f.lastAgentID = agentID
	record, ok := f.records[mazeID]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return &puzzle.Verdict{
		MazeID:  mazeID,
		End:     record.Goal,
		Reached: true,
		Steps:   len(moves),
	}, nil
}

type fakeDispatcher struct {
	difficulty string
	ids        []uuid.UUID
	err        error
}

func (f *fakeDispatcher) Enqueue(_ context.Context, difficulty string, ids ...uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.difficulty = difficulty
	f.ids = ids
	return nil
}

func (f *fakeDispatcher) SetSolveHandler(func(difficulty string, ids []uuid.UUID)) {}

// corridorRecord builds a 2x1 maze whose only opening joins its two cells.
func corridorRecord(t *testing.T) *puzzle.Record {
	t.Helper()

	m, err := maze.New(2, 1)
	assert.NoError(t, err)
	assert.NoError(t, m.OpenWall(maze.Point{X: 0, Y: 0}, maze.Right))

	record, err := puzzle.NewRecord(puzzle.RecordConfig{
		Difficulty: puzzle.DifficultySimple,
		Maze:       m,
		Start:      maze.Point{X: 0, Y: 0},
		Goal:       maze.Point{X: 1, Y: 0},
	})
	assert.NoError(t, err)
	return record
}

// newTestRouter wires the controller the way the real router does, with the
// authorization middleware replaced by one that injects the given claims.
func newTestRouter(sc *SolveController, claims map[string]interface{}) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	public := engine.Group("/v1")
	sc.RegisterPublic(public)

	protected := engine.Group("/v1")
	protected.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(identityapi.ContextAgentClaims, claims)
		}
		c.Next()
	})
	sc.RegisterProtected(protected)

	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestMazeRoutes(t *testing.T) {
	solver := newFakeSolver()
	record := corridorRecord(t)
	solver.records[record.ID] = record
	solver.solutions[record.ID] = &puzzle.Solution{
		MazeID:   record.ID,
		Moves:    []maze.Direction{maze.Right},
		Complete: true,
	}

	controller, err := NewSolveController(solver, &fakeDispatcher{})
	assert.NoError(t, err)
	engine := newTestRouter(controller, nil)

	t.Run("Returns a maze with its walls", func(t *testing.T) {
		w := getPath(t, engine, "/v1/mazes/"+record.ID.String())

		assert.Equal(t, http.StatusOK, w.Code)
		var response MazeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, record.ID.String(), response.ID)
		assert.Equal(t, 2, response.Width)
		assert.True(t, response.Grid[0][0].Walls.Top)
		assert.False(t, response.Grid[0][0].Walls.Right)
	})

	t.Run("Missing maze is a 404", func(t *testing.T) {
		w := getPath(t, engine, "/v1/mazes/"+uuid.NewString())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed id is a 400", func(t *testing.T) {
		w := getPath(t, engine, "/v1/mazes/not-a-uuid")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Returns the stored solution with move names", func(t *testing.T) {
		w := getPath(t, engine, "/v1/mazes/"+record.ID.String()+"/solution")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"RIGHT"`)
		assert.Contains(t, w.Body.String(), `"complete":true`)
	})

	t.Run("Renders the maze with the path overlaid", func(t *testing.T) {
		w := getPath(t, engine, "/v1/mazes/"+record.ID.String()+"/render?path=true")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "S")
		assert.Contains(t, w.Body.String(), "G")
		assert.Contains(t, w.Body.String(), "+---+")
	})

	t.Run("Renders the compact wall view", func(t *testing.T) {
		w := getPath(t, engine, "/v1/mazes/"+record.ID.String()+"/render?view=walls")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "+-+-+")
	})

	t.Run("Exports solutions keyed by maze id", func(t *testing.T) {
		w := getPath(t, engine, "/v1/solve/export?difficulty="+puzzle.DifficultySimple)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), record.ID.String())
		assert.Contains(t, w.Body.String(), `"RIGHT"`)
	})
}

func TestSolveRoutes(t *testing.T) {
	newEngine := func(t *testing.T) (*fakeSolver, *fakeDispatcher, *gin.Engine) {
		t.Helper()

		solver := newFakeSolver()
		dispatcher := &fakeDispatcher{}
		controller, err := NewSolveController(solver, dispatcher)
		assert.NoError(t, err)
		return solver, dispatcher, newTestRouter(controller, nil)
	}

	t.Run("Passes waypoints and the strict flag through", func(t *testing.T) {
		solver, _, engine := newEngine(t)
		record := corridorRecord(t)
		solver.records[record.ID] = record
		solver.solutions[record.ID] = &puzzle.Solution{MazeID: record.ID, Moves: []maze.Direction{maze.Right}, Complete: true}

		w := postJSON(t, engine, "/v1/mazes/"+record.ID.String()+"/solve", `{"waypoints": [{"x": 1, "y": 0}], "strict": true}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []maze.Point{{X: 1, Y: 0}}, solver.lastWaypoints)
		assert.True(t, solver.lastStrict)
	})

	t.Run("Solves with no body at all", func(t *testing.T) {
		solver, _, engine := newEngine(t)
		record := corridorRecord(t)
		solver.records[record.ID] = record
		solver.solutions[record.ID] = &puzzle.Solution{MazeID: record.ID, Moves: []maze.Direction{maze.Right}, Complete: true}

		req := httptest.NewRequest(http.MethodPost, "/v1/mazes/"+record.ID.String()+"/solve", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, solver.lastWaypoints)
		assert.False(t, solver.lastStrict)
	})

	t.Run("Imports a maze document and reports the count", func(t *testing.T) {
		solver, _, engine := newEngine(t)
		solver.importRecords = []*puzzle.Record{corridorRecord(t), corridorRecord(t)}

		w := postJSON(t, engine, "/v1/mazes/", `{"mazes": {}}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"imported":2`)
	})

	t.Run("Import failures are a 400", func(t *testing.T) {
		solver, _, engine := newEngine(t)
		solver.importErr = errors.New("malformed maze document")

		w := postJSON(t, engine, "/v1/mazes/", "not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Queues a whole tier and answers 202", func(t *testing.T) {
		solver, dispatcher, engine := newEngine(t)
		record := corridorRecord(t)
		solver.records[record.ID] = record

		w := postJSON(t, engine, "/v1/solve/batch", `{"difficulty": "simple"}`)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, puzzle.DifficultySimple, dispatcher.difficulty)
		assert.Equal(t, []uuid.UUID{record.ID}, dispatcher.ids)
	})

	t.Run("Unknown tier is rejected before queueing", func(t *testing.T) {
		_, dispatcher, engine := newEngine(t)

		w := postJSON(t, engine, "/v1/solve/batch", `{"difficulty": "nightmare"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, dispatcher.ids)
	})

	t.Run("Empty tier is a 404", func(t *testing.T) {
		_, _, engine := newEngine(t)

		w := postJSON(t, engine, "/v1/solve/batch", `{"difficulty": "expert"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReplayRoute(t *testing.T) {
	t.Run("Credits the agent named by the token claims", func(t *testing.T) {
		solver := newFakeSolver()
		record := corridorRecord(t)
		solver.records[record.ID] = record

		agentID := uuid.New()
		controller, err := NewSolveController(solver, &fakeDispatcher{})
		assert.NoError(t, err)
		engine := newTestRouter(controller, map[string]interface{}{"agentID": agentID.String()})

		w := postJSON(t, engine, "/v1/mazes/"+record.ID.String()+"/replay", `{"moves": ["RIGHT"]}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, agentID, solver.lastAgentID)
		assert.Contains(t, w.Body.String(), `"reached":true`)
	})

	t.Run("Missing claims degrade to an anonymous replay", func(t *testing.T) {
		solver := newFakeSolver()
		record := corridorRecord(t)
		solver.records[record.ID] = record

		controller, err := NewSolveController(solver, &fakeDispatcher{})
		assert.NoError(t, err)
		engine := newTestRouter(controller, nil)

		w := postJSON(t, engine, "/v1/mazes/"+record.ID.String()+"/replay", `{"moves": ["RIGHT"]}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uuid.Nil, solver.lastAgentID)
	})
}
