package tsp_test

import (
	"math"
	"testing"

	"github.com/scher1997/TSP/tsp"
)

func TestSolveMatrix_ShapeRejections(t *testing.T) {
	_, err := tsp.SolveMatrix(nil, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	ragged := [][]float64{
		{0, 1, 2},
		{1, 0},
		{2, 1, 0},
	}
	_, err = tsp.SolveMatrix(ragged, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrNonSquare)

	small := [][]float64{
		{0, 1},
		{1, 0},
	}
	_, err = tsp.SolveMatrix(small, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrDegenerateInput)
}

func TestSolveMatrix_ValueRejections(t *testing.T) {
	diag := triangle3()
	diag[1][1] = 0.5
	_, err := tsp.SolveMatrix(diag, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrNonZeroDiagonal)

	neg := triangle3()
	neg[0][1] = -1
	neg[1][0] = -1
	_, err = tsp.SolveMatrix(neg, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrNegativeWeight)

	asym := triangle3()
	asym[0][2] = 3.5 // leaves dist[2][0] at 3
	_, err = tsp.SolveMatrix(asym, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrAsymmetry)

	nan := triangle3()
	nan[0][1] = math.NaN()
	nan[1][0] = math.NaN()
	_, err = tsp.SolveMatrix(nan, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	inf := triangle3()
	inf[1][2] = math.Inf(1)
	inf[2][1] = math.Inf(1)
	_, err = tsp.SolveMatrix(inf, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrDimensionMismatch)
}

func TestSolve_OracleRejections(t *testing.T) {
	// The function path runs the same value policy as the matrix path.
	_, err := tsp.Solve(4, func(i, j int) float64 { return -1 }, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrNegativeWeight)

	_, err = tsp.Solve(4, func(i, j int) float64 { return float64(i - j) }, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrNegativeWeight)

	asym := func(i, j int) float64 { return float64(i*10 + j) }
	_, err = tsp.Solve(4, asym, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrAsymmetry)

	_, err = tsp.Solve(4, func(i, j int) float64 { return math.NaN() }, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.Solve(4, nil, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.Solve(2, func(i, j int) float64 { return 1 }, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrDegenerateInput)
}

func TestSolve_OptionRejections(t *testing.T) {
	d := tsp.MatrixDistance(triangle3())

	opts := tsp.DefaultOptions()
	opts.StartVertex = 3
	_, err := tsp.Solve(3, d, opts)
	mustErrIs(t, err, tsp.ErrStartOutOfRange)

	opts = tsp.DefaultOptions()
	opts.StartVertex = -1
	_, err = tsp.Solve(3, d, opts)
	mustErrIs(t, err, tsp.ErrStartOutOfRange)

	opts = tsp.DefaultOptions()
	opts.Workers = -1
	_, err = tsp.Solve(3, d, opts)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	opts = tsp.DefaultOptions()
	opts.TimeLimit = -1
	_, err = tsp.Solve(3, d, opts)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)
}
