// Package movns implements the Multi-Objective Variable Neighborhood
// Search of spec.md §4.6: an approximation archive seeded with random
// solutions, six neighborhood operators explored in turn per solution,
// and archive-driven acceptance in place of a fitness function. The
// engine shape (a struct holding every collaborator, a context-
// cancellable Run loop, wall-clock and iteration-count stopping
// conditions) follows the same pattern as nsga2.Engine and, further back,
// the teacher's DefaultRoutingService.
package movns

import (
	"context"
	"math/rand"
	"time"

	"tourplanner/internal/config"
	"tourplanner/internal/domain"
	"tourplanner/internal/evalcache"
	"tourplanner/internal/evaluator"
	"tourplanner/internal/metrics"
	"tourplanner/internal/oracle"
)

// Engine runs the MOVNS search over a fixed attraction catalog.
type Engine struct {
	Attractions []domain.Attraction
	Oracle      oracle.Oracle
	Evaluator   evaluator.Evaluator
	Params      config.Params
	Cache       evalcache.Cache // optional

	rng *rand.Rand
}

// New builds an engine. Cache may be nil.
func New(attractions []domain.Attraction, orc oracle.Oracle, eval evaluator.Evaluator, params config.Params, cache evalcache.Cache) *Engine {
	return &Engine{
		Attractions: attractions,
		Oracle:      orc,
		Evaluator:   eval,
		Params:      params,
		Cache:       cache,
		rng:         rngFromSeed(params.Seed),
	}
}

// Progress is a snapshot emitted after every iteration that evaluates a
// neighbor (iterations whose move has no valid application emit none),
// used by an optional status monitor and iteration history reporting.
type Progress struct {
	Iteration   int
	ArchiveSize int
}

// Run executes the search until one of spec.md §4.6's stopping
// conditions fires: max_iterations reached, max_time_seconds elapsed,
// max_iterations_no_improvement consecutive non-improving iterations, or
// every current solution's neighborhoods are fully explored. It returns
// the final archive.
func (e *Engine) Run(ctx context.Context, onIteration func(Progress)) (*domain.Archive, error) {
	archive := domain.NewArchive()
	if len(e.Attractions) == 0 {
		return archive, nil
	}

	type tracked struct {
		ind   domain.Individual
		state *explorationState
	}

	solutions := make([]tracked, 0, e.Params.ArchiveInitSize)
	for i := 0; i < e.Params.ArchiveInitSize; i++ {
		route, err := randomRoute(e.rng, len(e.Attractions), e.Oracle)
		if err != nil {
			return nil, err
		}
		ind, err := e.evaluate(route)
		if err != nil {
			return nil, err
		}
		archive.TryAdd(ind)
		solutions = append(solutions, tracked{ind: ind, state: newExplorationState()})
	}

	deadline := time.Now().Add(time.Duration(e.Params.MaxTimeSeconds * float64(time.Second)))
	iterationsNoImprovement := 0

	for iteration := 0; iteration < e.Params.MaxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return archive, nil
		default:
		}
		if time.Now().After(deadline) {
			return archive, nil
		}
		if iterationsNoImprovement >= e.Params.MaxIterationsNoImprovement {
			return archive, nil
		}

		pick := -1
		for i, s := range solutions {
			if !s.state.allExplored() {
				pick = i
				break
			}
		}
		if pick < 0 {
			return archive, nil
		}

		kind, ok := solutions[pick].state.nextUnexplored()
		if !ok {
			continue
		}

		neighborRoute := generate(kind, solutions[pick].ind.Route, e.rng, len(e.Attractions))
		if neighborRoute == nil {
			solutions[pick].state.markExplored(kind)
			continue
		}

		neighborInd, err := e.evaluate(*neighborRoute)
		if err != nil {
			return nil, err
		}

		improved := archive.TryAdd(neighborInd)
		if improved {
			iterationsNoImprovement = 0
			for _, s := range solutions {
				s.state.reset()
			}
			solutions = append(solutions, tracked{ind: neighborInd, state: newExplorationState()})
			refined, err := e.localSearch(neighborInd, archive)
			if err != nil {
				return nil, err
			}
			if refined != nil {
				solutions = append(solutions, tracked{ind: *refined, state: newExplorationState()})
			}
		} else {
			iterationsNoImprovement++
			solutions[pick].state.markExplored(kind)
		}

		if archive.Len() > e.Params.ArchiveMaxSize {
			e.pruneArchive(archive)
		}

		if onIteration != nil {
			onIteration(Progress{Iteration: iteration, ArchiveSize: archive.Len()})
		}
	}

	return archive, nil
}

// localSearch tries every neighborhood once more around a freshly
// accepted solution, feeding any further improvement straight back into
// the archive (spec.md §4.6's local-search refinement step). It returns
// the last newly-archived neighbor, if any, so the caller can track it
// for further exploration.
func (e *Engine) localSearch(ind domain.Individual, archive *domain.Archive) (*domain.Individual, error) {
	var best *domain.Individual
	for k := Neighborhood(0); int(k) < numNeighborhoods; k++ {
		neighborRoute := generate(k, ind.Route, e.rng, len(e.Attractions))
		if neighborRoute == nil {
			continue
		}
		neighborInd, err := e.evaluate(*neighborRoute)
		if err != nil {
			return nil, err
		}
		if archive.TryAdd(neighborInd) {
			best = &neighborInd
		}
	}
	return best, nil
}

// pruneArchive caps archive size via ε-dominance filtering (spec.md
// §4.7), keeping one representative per ε-box.
func (e *Engine) pruneArchive(archive *domain.Archive) {
	epsilon := [4]float64{e.Params.ArchiveEpsilon, e.Params.ArchiveEpsilon, e.Params.ArchiveEpsilon, e.Params.ArchiveEpsilon}
	survivors := metrics.EpsilonFilter(archive.Items(), epsilon)
	archive.Clear()
	for _, s := range survivors {
		archive.TryAdd(s)
	}
}

func (e *Engine) evaluate(r domain.Route) (domain.Individual, error) {
	var key string
	if e.Cache != nil {
		key = evalcache.Key(r.Attractions, r.Modes)
		if cached, ok := e.Cache.Get(key); ok {
			return domain.Individual{Route: cached.Route, Obj: cached.Obj}, nil
		}
	}

	route, obj, err := e.Evaluator.Evaluate(e.Attractions, r.Attractions, r.Modes, e.Oracle)
	if err != nil {
		return domain.Individual{}, err
	}
	if e.Cache != nil {
		e.Cache.Set(key, evalcache.Result{Route: route, Obj: obj})
	}
	return domain.Individual{Route: route, Obj: obj}, nil
}
