package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Nil entries are skipped so callers
// can pass conditionally constructed workers without guarding.
func NewWorkers(list ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range list {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
