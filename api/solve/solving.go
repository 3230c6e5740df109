// Package solveapi handles maze import, solving, replay and rendering.
package solveapi

import (
	"bytes"
	"context"
	"net/http"

	identityapi "github.com/beka-birhanu/maze-solver-api/api/identity"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/mazefile"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/puzzle"
	"github.com/beka-birhanu/maze-solver-api/render"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SolveController manages maze solving operations.
type SolveController struct {
	solveService i.MazeSolver
	dispatcher   i.Dispatcher
}

// NewSolveController initializes a SolveController.
func NewSolveController(ms i.MazeSolver, d i.Dispatcher) (*SolveController, error) {
	return &SolveController{
		solveService: ms,
		dispatcher:   d,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SolveController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", sc.mazeInfo)
		mazes.GET("/:ID/solution", sc.solutionInfo)
		mazes.GET("/:ID/render", sc.renderMaze)
	}

	solve := route.Group("/solve")
	{
		solve.GET("/export", sc.exportSolutions)
	}
}

// RegisterProtected registers protected routes.
func (sc *SolveController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", sc.importMazes)
		mazes.POST("/:ID/solve", sc.solveMaze)
		mazes.POST("/:ID/replay", sc.replayMaze)
	}

	solve := route.Group("/solve")
	{
		solve.POST("/batch", sc.batchSolve)
	}
}

// mazeInfo retrieves one maze record.
func (sc *SolveController) mazeInfo(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	record, err := sc.solveService.Maze(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No maze"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// solutionInfo retrieves the stored solution of a maze.
func (sc *SolveController) solutionInfo(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	solution, err := sc.solveService.Solution(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No solution"})
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(solution))
}

// renderMaze draws a maze as text. Query flags: path overlays the stored
// solution, coords adds index labels, color turns on ANSI styling and
// view=walls selects the compact wall block view.
func (sc *SolveController) renderMaze(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	record, err := sc.solveService.Maze(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No maze"})
		return
	}

	var opts []render.Option
	if ctx.Query("path") == "true" {
		if solution, err := sc.solveService.Solution(ID); err == nil {
			opts = append(opts, render.WithPath(solution.Moves))
		}
	}
	if ctx.Query("coords") == "true" {
		opts = append(opts, render.WithCoords())
	}
	if ctx.Query("color") == "true" {
		opts = append(opts, render.WithColor())
	}

	renderer := render.New(opts...)
	var art string
	if ctx.Query("view") == "walls" {
		art = renderer.Walls(record.Maze, record.Start, record.Goal)
	} else {
		art = renderer.Draw(record.Maze, record.Start, record.Goal)
	}

	ctx.String(http.StatusOK, "%s\n", art)
}

// importMazes decodes a maze document from the request body and persists
// every maze in it.
func (sc *SolveController) importMazes(ctx *gin.Context) {
	records, err := sc.solveService.Import(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"imported": len(records)})
}

// solveMaze runs one solve, optionally through waypoints.
func (sc *SolveController) solveMaze(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	// The body is optional; a bare solve takes the direct route.
	var request SolveRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBind(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	solution, err := sc.solveService.Solve(ID, request.Waypoints, request.Strict)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(solution))
}

// batchSolve queues every maze of one difficulty tier for solving.
func (sc *SolveController) batchSolve(ctx *gin.Context) {
	var request BatchSolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := sc.solveService.ByDifficulty(request.Difficulty)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(records) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No mazes"})
		return
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}

	err = sc.dispatcher.Enqueue(context.Background(), request.Difficulty, ids...)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while queueing mazes"})
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{"queued": len(ids)})
}

// exportSolutions writes a solution document covering the selected tiers.
// Every maze appears; mazes without a stored solution export an empty
// array, matching files written by batch runs.
func (sc *SolveController) exportSolutions(ctx *gin.Context) {
	tiers := puzzle.Difficulties()
	if q := ctx.Query("difficulty"); q != "" {
		tiers = []string{q}
	}

	solutions := make(map[uuid.UUID][]maze.Direction)
	for _, tier := range tiers {
		records, err := sc.solveService.ByDifficulty(tier)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		for _, record := range records {
			solution, err := sc.solveService.Solution(record.ID)
			if err != nil {
				solutions[record.ID] = nil
				continue
			}
			solutions[record.ID] = solution.Moves
		}
	}

	var buf bytes.Buffer
	if err := mazefile.EncodeSolutions(&buf, solutions); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while encoding solutions"})
		return
	}

	ctx.Data(http.StatusOK, "application/json", buf.Bytes())
}

// replayMaze checks a submitted move sequence and returns the verdict.
// Goal-reaching replays are credited to the signed-in agent.
func (sc *SolveController) replayMaze(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	var request ReplayRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict, err := sc.solveService.Replay(ID, agentIDFromContext(ctx), request.Moves)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No maze"})
		return
	}

	ctx.JSON(http.StatusOK, newVerdictResponse(verdict))
}

// agentIDFromContext pulls the signed-in agent's ID out of the claims the
// authorization middleware attached. Missing or foreign claims degrade to a
// nil ID, which the service treats as an anonymous replay.
func agentIDFromContext(ctx *gin.Context) uuid.UUID {
	rawClaims, ok := ctx.Get(identityapi.ContextAgentClaims)
	if !ok {
		return uuid.Nil
	}

	claims, ok := rawClaims.(map[string]interface{})
	if !ok {
		return uuid.Nil
	}

	raw, _ := claims["agentID"].(string)
	ID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return ID
}
