package oracle

import (
	"fmt"

	lvcore "github.com/katalvlaran/lvlath/graph/core"
	lvmatrix "github.com/katalvlaran/lvlath/graph/matrix"

	"tourplanner/internal/domain"
)

// StaticOracle answers transport questions from the four pre-loaded CSV
// matrices (spec.md §6). Travel times are additionally materialized as
// lvlath adjacency matrices: lvlath's graph/matrix package already knows
// how to build an O(1)-lookup AdjacencyMatrix from a weighted graph, so
// the oracle reuses it instead of re-deriving the same index bookkeeping
// by hand. Distances and costs stay as plain [][]float64 because lvlath's
// edge weights are int64 and currency/meter values need fractional
// precision.
type StaticOracle struct {
	matrices domain.Matrices

	carTime  *lvmatrix.AdjacencyMatrix
	walkTime *lvmatrix.AdjacencyMatrix

	walkingPreferenceMinutes int
	carCostPerKm             float64
}

// NewStatic builds a StaticOracle over the given matrices. walkingPreferenceMinutes
// is the threshold at or below which PreferredMode returns Walk; carCostPerKm is
// the per-kilometer rate charged for CAR segments.
func NewStatic(matrices domain.Matrices, walkingPreferenceMinutes int, carCostPerKm float64) (*StaticOracle, error) {
	if !matrices.Validate() {
		return nil, fmt.Errorf("oracle: invalid transport matrices")
	}

	n := matrices.N()
	carGraph := lvcore.NewGraph(true, true)
	walkGraph := lvcore.NewGraph(true, true)
	for i := 0; i < n; i++ {
		id := vertexID(i)
		carGraph.AddVertex(&lvcore.Vertex{ID: id})
		walkGraph.AddVertex(&lvcore.Vertex{ID: id})
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			carGraph.AddEdge(vertexID(i), vertexID(j), int64(matrices.CarTime[i][j]))
			walkGraph.AddEdge(vertexID(i), vertexID(j), int64(matrices.WalkTime[i][j]))
		}
	}

	return &StaticOracle{
		matrices:                 matrices,
		carTime:                  lvmatrix.NewAdjacencyMatrix(carGraph),
		walkTime:                 lvmatrix.NewAdjacencyMatrix(walkGraph),
		walkingPreferenceMinutes: walkingPreferenceMinutes,
		carCostPerKm:             carCostPerKm,
	}, nil
}

func vertexID(i int) string {
	return fmt.Sprintf("a%d", i)
}

func (o *StaticOracle) Distance(a, b int, mode domain.TransportMode) (float64, error) {
	n := o.matrices.N()
	if err := checkIndex(a, n); err != nil {
		return 0, err
	}
	if err := checkIndex(b, n); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	if mode == domain.Walk {
		return o.matrices.WalkDistance[a][b], nil
	}
	return o.matrices.CarDistance[a][b], nil
}

func (o *StaticOracle) TravelTime(a, b int, mode domain.TransportMode) (float64, error) {
	n := o.matrices.N()
	if err := checkIndex(a, n); err != nil {
		return 0, err
	}
	if err := checkIndex(b, n); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	mat := o.carTime
	if mode == domain.Walk {
		mat = o.walkTime
	}
	return float64(mat.Data[mat.Index[vertexID(a)]][mat.Index[vertexID(b)]]), nil
}

func (o *StaticOracle) TravelCost(a, b int, mode domain.TransportMode) (float64, error) {
	if mode == domain.Walk {
		return 0, nil
	}
	dist, err := o.Distance(a, b, domain.Car)
	if err != nil {
		return 0, err
	}
	return (dist / 1000.0) * o.carCostPerKm, nil
}

func (o *StaticOracle) PreferredMode(a, b int) (domain.TransportMode, error) {
	walkMinutes, err := o.TravelTime(a, b, domain.Walk)
	if err != nil {
		return domain.Car, err
	}
	if walkMinutes <= float64(o.walkingPreferenceMinutes) {
		return domain.Walk, nil
	}
	return domain.Car, nil
}
