package simulate

// SimulatorBuilderOption is a functional option for configuring a Simulator.
type SimulatorBuilderOption func(*simulator)

// WithWorkers sets the number of worker goroutines used for the row-parallel
// mixing phase. Values below 1 are ignored.
//
// Parameters:
//   - workers: the number of workers
//
// Returns:
//   - SimulatorBuilderOption: the configured option
func WithWorkers(workers int) SimulatorBuilderOption {
	return func(s *simulator) {
		if workers < 1 {
			return
		}
		s.workers = workers
	}
}
