package service

import (
	"fmt"
	"io"
	"time"

	"github.com/beka-birhanu/maze-solver-api/infrastruture/mazefile"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/puzzle"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

type Solve struct {
	mazeRepo     i.MazeRepo
	solutionRepo i.SolutionRepo
	agentRepo    i.AgentRepo
	logger       i.Logger
}

func NewSolveService(mazeRepo i.MazeRepo, solutionRepo i.SolutionRepo, agentRepo i.AgentRepo, logger i.Logger) (i.MazeSolver, error) {
	return &Solve{
		mazeRepo:     mazeRepo,
		solutionRepo: solutionRepo,
		agentRepo:    agentRepo,
		logger:       logger,
	}, nil
}

func (s *Solve) Import(r io.Reader) ([]*puzzle.Record, error) {
	records, err := mazefile.Decode(r)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Decoding maze file: %s", err))
		return nil, err
	}

	for _, record := range records {
		if err := s.mazeRepo.Save(record); err != nil {
			s.logger.Error(fmt.Sprintf("Saving maze %s: %s", record.ID, err))
			return nil, err
		}
	}

	s.logger.Info(fmt.Sprintf("Imported %d mazes", len(records)))
	return records, nil
}

func (s *Solve) Maze(id uuid.UUID) (*puzzle.Record, error) {
	return s.mazeRepo.ByID(id)
}

func (s *Solve) ByDifficulty(difficulty string) ([]*puzzle.Record, error) {
	if err := puzzle.ValidateDifficulty(difficulty); err != nil {
		return nil, err
	}

	return s.mazeRepo.ByDifficulty(difficulty)
}

func (s *Solve) Solve(id uuid.UUID, waypoints []maze.Point, strict bool) (*puzzle.Solution, error) {
	record, err := s.mazeRepo.ByID(id)
	if err != nil {
		return nil, err
	}

	var moves []maze.Direction
	if strict {
		moves, err = solver.RouteAll(record.Maze, record.Start, waypoints, record.Goal)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Strict route for maze %s: %s", id, err))
			return nil, err
		}
	} else {
		moves = solver.Route(record.Maze, record.Start, waypoints, record.Goal)
	}

	solution := &puzzle.Solution{
		MazeID:    record.ID,
		Moves:     moves,
		Complete:  solver.Solves(record.Maze, record.Start, moves, record.Goal),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.solutionRepo.Save(solution); err != nil {
		s.logger.Error(fmt.Sprintf("Saving solution for maze %s: %s", id, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Solved maze %s: moves=%d complete=%t", id, len(solution.Moves), solution.Complete))
	return solution, nil
}

func (s *Solve) SolveBatch(difficulty string, ids []uuid.UUID) {
	s.logger.Info(fmt.Sprintf("Solving %s batch of %d mazes", difficulty, len(ids)))
	for _, id := range ids {
		if _, err := s.Solve(id, nil, false); err != nil {
			s.logger.Error(fmt.Sprintf("Batch solve of maze %s: %s", id, err))
		}
	}
}

func (s *Solve) Solution(id uuid.UUID) (*puzzle.Solution, error) {
	return s.solutionRepo.ByMazeID(id)
}

func (s *Solve) Replay(mazeID, agentID uuid.UUID, moves []maze.Direction) (*puzzle.Verdict, error) {
	record, err := s.mazeRepo.ByID(mazeID)
	if err != nil {
		return nil, err
	}

	end, applied, err := solver.Replay(record.Maze, record.Start, moves)
	verdict := &puzzle.Verdict{
		MazeID: record.ID,
		End:    end,
		Steps:  applied,
	}
	if err != nil {
		verdict.Fault = err.Error()
		return verdict, nil
	}

	verdict.Reached = end == record.Goal
	if verdict.Reached {
		s.credit(agentID, mazeID)
	}

	return verdict, nil
}

// credit counts a verified solve on the agent's record. Anonymous replays
// pass a nil agent ID and are not counted.
func (s *Solve) credit(agentID, mazeID uuid.UUID) {
	if agentID == uuid.Nil {
		return
	}

	agent, err := s.agentRepo.ByID(agentID)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Crediting solve of maze %s: %s", mazeID, err))
		return
	}

	agent.RecordSolve()
	if err := s.agentRepo.Save(agent); err != nil {
		s.logger.Error(fmt.Sprintf("Saving solve credit for agent %s: %s", agentID, err))
		return
	}

	s.logger.Info(fmt.Sprintf("Agent %s solved maze %s, total %d", agent.Username, mazeID, agent.Solved))
}
