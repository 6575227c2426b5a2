// Package autofix runs the named HM fix-up procedures behind the step-3
// "auto validation" button. Procedures execute strictly in registration
// order; a failed procedure is marked failed and the run continues.
package autofix

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"
)

// Procedure is one named fix-up. Run returns the number of rows it touched.
type Procedure struct {
	Name string
	Run  func(ctx context.Context, db *sql.DB) (int64, error)
}

var procedures []Procedure

// Register appends a procedure to the run sequence. Called from init.
func Register(p Procedure) {
	procedures = append(procedures, p)
}

// Procedures returns the registered sequence in run order.
func Procedures() []Procedure {
	return procedures
}

// Step statuses surfaced to the progress endpoint.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// StepProgress is the visible state of one procedure within a run.
type StepProgress struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Affected int64  `json:"affected"`
	Error    string `json:"error,omitempty"`
}

// ErrAlreadyRunning is returned when a run is started while one is active.
var ErrAlreadyRunning = errors.New("auto validation is already running")

// Runner executes the registered procedures and tracks progress for polling.
type Runner struct {
	db *sql.DB

	mu      sync.Mutex
	running bool
	steps   []StepProgress
}

// NewRunner creates a runner over the given database.
func NewRunner(db *sql.DB) *Runner {
	return &Runner{db: db}
}

// Start launches a run in the background. Only one run may be active.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return ErrAlreadyRunning
	}
	procs := Procedures()
	r.running = true
	r.steps = make([]StepProgress, len(procs))
	for i, p := range procs {
		r.steps[i] = StepProgress{Index: i, Name: p.Name, Status: StatusPending}
	}
	go r.run(ctx, procs)
	return nil
}

func (r *Runner) run(ctx context.Context, procs []Procedure) {
	for i, p := range procs {
		r.setStatus(i, StatusRunning, 0, "")
		affected, err := p.Run(ctx, r.db)
		if err != nil {
			log.Printf("autofix %q failed: %v", p.Name, err)
			r.setStatus(i, StatusFailed, affected, err.Error())
			continue
		}
		r.setStatus(i, StatusCompleted, affected, "")
	}
	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
}

func (r *Runner) setStatus(i int, status string, affected int64, errMsg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps[i].Status = status
	r.steps[i].Affected = affected
	r.steps[i].Error = errMsg
}

// Progress returns a snapshot of the current (or last) run and whether a run
// is still active.
func (r *Runner) Progress() ([]StepProgress, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]StepProgress, len(r.steps))
	copy(out, r.steps)
	return out, r.running
}
