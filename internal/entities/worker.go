package entities

type Worker struct {
	ID     string
	Name   string
	Active bool
}

type WorkerFilter struct {
	Active *bool
	Search string
}

type WorkerChanges struct {
	Name   *string
	Active *bool
}

func (c WorkerChanges) Apply(w *Worker) {
	if c.Name != nil {
		w.Name = *c.Name
	}
	if c.Active != nil {
		w.Active = *c.Active
	}
}
