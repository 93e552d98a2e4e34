// Package nsga2 implements the elitist (μ+λ) genetic engine of spec.md
// §4.5: population initialization, binary-tournament selection, ordered
// crossover, gene-level mutation, chromosome repair, and generational
// survival via fast non-dominated sorting plus crowding distance. Its
// loop shape (context-cancellable, fixed generation budget, a
// constructor taking every collaborator as a field) mirrors the
// teacher's DefaultRoutingService, generalized from a single best-path
// search to a population-based multi-objective search.
package nsga2

import (
	"context"
	"math/rand"

	"tourplanner/internal/config"
	"tourplanner/internal/dominance"
	"tourplanner/internal/domain"
	"tourplanner/internal/evalcache"
	"tourplanner/internal/evaluator"
	"tourplanner/internal/oracle"
)

// Engine runs the NSGA-II search over a fixed attraction catalog and
// transport oracle.
type Engine struct {
	Attractions []domain.Attraction
	Oracle      oracle.Oracle
	Evaluator   evaluator.Evaluator
	Params      config.Params
	Cache       evalcache.Cache // optional; nil disables memoization

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

// Generation is a progress snapshot after one completed generation, used
// by an optional status monitor and by history reporting.
type Generation struct {
	Index    int
	Front    []domain.Individual
	FrontLen int
}

// Run executes the full generation loop and returns the final
// generation's first front, deduplicated by objective vector. It honors
// ctx cancellation by stopping after the in-flight generation and
// returning the best front found so far.
func (e *Engine) Run(ctx context.Context, onGeneration func(Generation)) ([]domain.Individual, error) {
	if len(e.Attractions) == 0 {
		return nil, nil
	}

	population, err := e.initPopulation()
	if err != nil {
		return nil, err
	}

	var finalFronts [][]int
	var finalCombined []domain.Individual
	for gen := 0; gen < e.Params.MaxGenerations; gen++ {
		select {
		case <-ctx.Done():
			fronts := dominance.FastNonDominatedSort(population)
			return dedupe(e.frontIndividuals(population, fronts[:1])), nil
		default:
		}

		offspring, err := e.createOffspring(population)
		if err != nil {
			return nil, err
		}

		combined := append(append([]domain.Individual(nil), population...), offspring...)
		fronts := dominance.FastNonDominatedSort(combined)
		finalFronts = fronts
		finalCombined = combined

		next := make([]domain.Individual, 0, len(population))
		for _, front := range fronts {
			if len(next)+len(front) <= len(population) {
				dominance.AssignCrowdingDistance(combined, front)
				for _, idx := range front {
					next = append(next, combined[idx])
				}
				continue
			}

			dominance.AssignCrowdingDistance(combined, front)
			remaining := len(population) - len(next)
			ordered := append([]int(nil), front...)
			sortByCrowdingDesc(combined, ordered)
			for _, idx := range ordered[:remaining] {
				next = append(next, combined[idx])
			}
			break
		}
		population = next

		if onGeneration != nil {
			first := dominance.FastNonDominatedSort(population)
			var frontInds []domain.Individual
			if len(first) > 0 {
				frontInds = e.frontIndividuals(population, first[:1])
			}
			onGeneration(Generation{Index: gen, Front: frontInds, FrontLen: len(frontInds)})
		}
	}

	if finalFronts == nil {
		finalFronts = dominance.FastNonDominatedSort(population)
		finalCombined = population
	}
	if len(finalFronts) == 0 {
		return nil, nil
	}
	return dedupe(e.frontIndividuals(finalCombined, finalFronts[:1])), nil
}

func (e *Engine) frontIndividuals(population []domain.Individual, fronts [][]int) []domain.Individual {
	var out []domain.Individual
	for _, front := range fronts {
		for _, idx := range front {
			out = append(out, population[idx])
		}
	}
	return out
}

func sortByCrowdingDesc(population []domain.Individual, indices []int) {
	for i := 1; i < len(indices); i++ {
		for j := i; j > 0 && population[indices[j-1]].Crowding < population[indices[j]].Crowding; j-- {
			indices[j-1], indices[j] = indices[j], indices[j-1]
		}
	}
}

func dedupe(individuals []domain.Individual) []domain.Individual {
	seen := make(map[[4]float64]bool, len(individuals))
	out := make([]domain.Individual, 0, len(individuals))
	for _, ind := range individuals {
		key := ind.Obj.Minimize()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ind)
	}
	return out
}

func (e *Engine) initPopulation() ([]domain.Individual, error) {
	population := make([]domain.Individual, 0, e.Params.PopulationSize)
	for i := 0; i < e.Params.PopulationSize; i++ {
		c, err := randomChromosome(e.rng, len(e.Attractions), e.Oracle)
		if err != nil {
			return nil, err
		}
		ind, err := e.evaluate(c)
		if err != nil {
			return nil, err
		}
		population = append(population, ind)
	}
	return population, nil
}

func (e *Engine) createOffspring(population []domain.Individual) ([]domain.Individual, error) {
	offspring := make([]domain.Individual, 0, len(population))
	for len(offspring) < len(population) {
		parentA := tournamentSelect(e.rng, population)
		parentB := tournamentSelect(e.rng, population)

		var child chromosome
		var err error
		if e.rng.Float64() < e.Params.CrossoverRate {
			child, err = orderedCrossover(toChromosome(parentA.Route), toChromosome(parentB.Route), e.rng, len(e.Attractions), e.Oracle)
		} else {
			child = toChromosome(parentA.Route).clone()
		}
		if err != nil {
			return nil, err
		}

		child, err = mutate(child, e.rng, e.Params.MutationRate, len(e.Attractions), e.Oracle)
		if err != nil {
			return nil, err
		}

		child, err = repair(child, e.rng, len(e.Attractions), e.Oracle)
		if err != nil {
			return nil, err
		}

		ind, err := e.evaluate(child)
		if err != nil {
			return nil, err
		}
		offspring = append(offspring, ind)
	}
	return offspring, nil
}

func toChromosome(r domain.Route) chromosome {
	return chromosome{indices: r.Attractions, modes: r.Modes}
}

func (e *Engine) evaluate(c chromosome) (domain.Individual, error) {
	var key string
	if e.Cache != nil {
		key = evalcache.Key(c.indices, c.modes)
		if cached, ok := e.Cache.Get(key); ok {
			return domain.Individual{Route: cached.Route, Obj: cached.Obj}, nil
		}
	}

	route, obj, err := e.Evaluator.Evaluate(e.Attractions, c.indices, c.modes, e.Oracle)
	if err != nil {
		return domain.Individual{}, err
	}
	if e.Cache != nil {
		e.Cache.Set(key, evalcache.Result{Route: route, Obj: obj})
	}
	return domain.Individual{Route: route, Obj: obj}, nil
}
