package engine

import (
	"sync"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
)

var ErrDuplicateJob = errs.New("job already exists for order")

// Job is the live, in-memory state of one in-flight rental. It is the single
// source of truth for whether an order is still billable or cancellable: the
// instant a terminal transition removes it from the registry, every later
// timer tick or user action for the order becomes a no-op.
//
// All mutable fields are guarded by mu. Mutation paths hold mu across their
// whole critical section, including store writes, so that concurrent ticks
// and user actions for the same order serialize. Lock order is always
// Job.mu before Registry.mu, never the reverse.
type Job struct {
	mu sync.Mutex

	OrderID       string
	ActivationID  string
	UserID        int64
	ChatID        int64
	Price         wallet.Money
	Phone         string
	ServiceName   string
	ServiceID     string
	ServerIndex   int
	ServerName    string
	VendorService string
	VendorCountry string
	StartTime     time.Time

	otpReceived  bool
	lastOTP      string
	otpCount     int
	otpStartTime time.Time

	redrawRunning    bool
	countdownRunning bool

	done       chan struct{}
	stopOnce   sync.Once
	hardExpiry *time.Timer
}

func newJob(orderID string) *Job {
	return &Job{
		OrderID: orderID,
		done:    make(chan struct{}),
	}
}

// stopTimersLocked cancels every scheduled task owned by the job. Callers
// must hold j.mu. Idempotent: the done channel closes exactly once and a
// fired callback for a stopped job is a guarded no-op.
func (j *Job) stopTimersLocked() {
	j.stopOnce.Do(func() {
		close(j.done)
		if j.hardExpiry != nil {
			j.hardExpiry.Stop()
		}
	})
}

// viewLocked snapshots the job for rendering. Callers must hold j.mu.
func (j *Job) viewLocked() OrderView {
	return OrderView{
		OrderID:  j.OrderID,
		UserID:   j.UserID,
		ChatID:   j.ChatID,
		Phone:    j.Phone,
		Service:  j.ServiceName,
		Price:    j.Price,
		OTPCount: j.otpCount,
		LastOTP:  j.lastOTP,
	}
}

// Registry is the process-local table of live jobs, keyed by order id.
// Remove hands the job to exactly one caller; it is the mutual-exclusion
// gate between competing terminal transitions.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*Job)}
}

func (r *Registry) Add(j *Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[j.OrderID]; exists {
		return ErrDuplicateJob
	}
	r.jobs[j.OrderID] = j
	return nil
}

func (r *Registry) Get(orderID string) (*Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[orderID]
	return j, ok
}

func (r *Registry) Has(orderID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.jobs[orderID]
	return ok
}

func (r *Registry) Remove(orderID string) (*Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[orderID]
	if ok {
		delete(r.jobs, orderID)
	}
	return j, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

// Drain empties the registry and returns every job that was live. Used on
// shutdown: timers are cancelled but jobs are not force-settled.
func (r *Registry) Drain() []*Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Job, 0, len(r.jobs))
	for id, j := range r.jobs {
		out = append(out, j)
		delete(r.jobs, id)
	}
	return out
}
