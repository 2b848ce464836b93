package puzzle

//go:generate mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks

// Solver computes the answers of one puzzle from its input file.
type Solver interface {
	Solve(path string) ([]Answer, error)
}

type SolverFunc func(path string) ([]Answer, error)

func (f SolverFunc) Solve(path string) ([]Answer, error) {
	return f(path)
}
