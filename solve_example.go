package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/maze-solver-api/config"
	logger "github.com/beka-birhanu/maze-solver-api/infrastruture/log"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/mazefile"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/render"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

func main1() {
	runLogger, err := logger.New("SOLVE-RUN", config.ColorBlue, os.Stdout)
	if err != nil {
		os.Exit(1)
	}

	f, err := os.Open("mazes.json")
	if err != nil {
		runLogger.Error(fmt.Sprintf("opening maze file: %s", err))
		return
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := mazefile.Decode(f)
	if err != nil {
		runLogger.Error(fmt.Sprintf("decoding maze file: %s", err))
		return
	}
	runLogger.Info(fmt.Sprintf("loaded %d mazes", len(records)))

	solutions := make(map[uuid.UUID][]maze.Direction)
	for _, record := range records {
		moves := solver.Route(record.Maze, record.Start, nil, record.Goal)
		if !solver.Solves(record.Maze, record.Start, moves, record.Goal) {
			runLogger.Warning(fmt.Sprintf("maze %s (%s) has no route", record.ID, record.Difficulty))
			solutions[record.ID] = nil
			continue
		}
		solutions[record.ID] = moves
	}

	if len(records) > 0 {
		first := records[0]
		fancy := render.New(
			render.WithPath(solutions[first.ID]),
			render.WithCoords(),
			render.WithColor(),
		)
		fmt.Println(fancy.Draw(first.Maze, first.Start, first.Goal))
		fmt.Println(render.New().Walls(first.Maze, first.Start, first.Goal))
	}

	out, err := os.Create("solution.json")
	if err != nil {
		runLogger.Error(fmt.Sprintf("creating solution file: %s", err))
		return
	}
	defer func() {
		_ = out.Close()
	}()

	if err := mazefile.EncodeSolutions(out, solutions); err != nil {
		runLogger.Error(fmt.Sprintf("writing solutions: %s", err))
		return
	}
	runLogger.Info(fmt.Sprintf("wrote %d solutions", len(solutions)))
}
