// Command mctsbench drives the sticks or tic-tac-toe fixtures through the
// shared search engine under varying worker counts and reports how tree
// size and wall-clock time scale with concurrency.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ahrav/go-mcts/infrastructure/middleware"
	"github.com/ahrav/go-mcts/internal/application"
	"github.com/ahrav/go-mcts/internal/domain"
	"github.com/ahrav/go-mcts/internal/testutils/games/sticks"
	"github.com/ahrav/go-mcts/internal/testutils/games/tictactoe"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML search config; defaults to a built-in tic-tac-toe config")
		workerList = flag.String("workers", "1,2,4,8", "comma-separated worker counts to benchmark")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("mctsbench: %v", err)
	}

	counts, err := parseWorkerCounts(*workerList)
	if err != nil {
		log.Fatalf("mctsbench: %v", err)
	}

	metrics := middleware.NewSearchMetrics()
	observer := middleware.NewSearchObserver(metrics, cfg.Game.Name)

	fmt.Printf("game=%s visit_budget=%d\n", cfg.Game.Name, cfg.Workers.VisitBudget)
	for _, n := range counts {
		workers := application.WorkerConfig{Count: n, VisitBudget: cfg.Workers.VisitBudget}
		size, elapsed, err := runOnce(cfg.Game.Name, workers, metrics, observer)
		if err != nil {
			log.Fatalf("mctsbench: %v", err)
		}
		fmt.Printf("workers=%-4d tree_size=%-8d elapsed=%s\n", n, size, elapsed)
	}
}

func loadConfig(path string) (*application.SearchConfig, error) {
	if path == "" {
		return &application.SearchConfig{
			Version: "1.0.0",
			Game:    application.GameConfig{Name: "tictactoe"},
			Workers: application.WorkerConfig{Count: 4, VisitBudget: 20000},
		}, nil
	}
	return application.NewConfigLoader().LoadFile(context.Background(), path)
}

func parseWorkerCounts(list string) ([]int, error) {
	var counts []int
	start := 0
	for i := 0; i <= len(list); i++ {
		if i == len(list) || list[i] == ',' {
			var n int
			if _, err := fmt.Sscanf(list[start:i], "%d", &n); err != nil {
				return nil, fmt.Errorf("parsing worker count %q: %w", list[start:i], err)
			}
			counts = append(counts, n)
			start = i + 1
		}
	}
	return counts, nil
}

func runOnce(
	game string,
	workers application.WorkerConfig,
	metrics *middleware.SearchMetrics,
	observer *middleware.SearchObserver,
) (int, time.Duration, error) {
	start := time.Now()

	switch game {
	case "tictactoe":
		tree := tictactoe.NewTree()
		runner := &application.Runner[*tictactoe.State, int, *tictactoe.PerChild, tictactoe.Update]{
			RootVisits: func(root *tictactoe.State) int { return int(root.Visits()) },
			Observer:   observer,
		}
		evaluate := func(
			trace *domain.Trace[*tictactoe.State, int, *tictactoe.PerChild, tictactoe.Update],
			status domain.ProbeStatus,
		) (**tictactoe.State, tictactoe.Update) {
			rng := rand.New(rand.NewSource(rand.Int63()))
			st, up := tictactoe.Evaluate(trace, status, rng)
			if st == nil {
				return nil, up
			}
			return &st, up
		}
		if err := runner.Run(context.Background(), tree, workers, evaluate); err != nil {
			return 0, 0, err
		}
		metrics.SetTreeSize(game, tree.Len())
		return tree.Len(), time.Since(start), nil

	case "sticks":
		tree := sticks.NewTree()
		runner := &application.Runner[*sticks.State, int, *sticks.PerChild, sticks.Update]{
			RootVisits: func(root *sticks.State) int { return int(root.Visits()) },
			Observer:   observer,
		}
		evaluate := func(
			trace *domain.Trace[*sticks.State, int, *sticks.PerChild, sticks.Update],
			status domain.ProbeStatus,
		) (**sticks.State, sticks.Update) {
			rng := rand.New(rand.NewSource(rand.Int63()))
			st, up := sticks.Evaluate(trace, status, rng)
			if st == nil {
				return nil, up
			}
			return &st, up
		}
		if err := runner.Run(context.Background(), tree, workers, evaluate); err != nil {
			return 0, 0, err
		}
		metrics.SetTreeSize(game, tree.Len())
		return tree.Len(), time.Since(start), nil

	default:
		return 0, 0, fmt.Errorf("%w: %q", application.ErrUnknownGame, game)
	}
}
