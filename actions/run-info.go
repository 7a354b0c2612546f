package actions

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/ugovaretto/s3demo/delegate"
	"github.com/ugovaretto/s3demo/helper"
	"github.com/ugovaretto/s3demo/logger"
	"golang.org/x/net/context"
)

// Run statuses.
const (
	StatusStarting = "starting"
	StatusRunning  = "running"
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// RunStatus is the lifecycle of one delegate run.
type RunStatus struct {
	Status    string    `json:"status"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime,omitempty"`
	ExitCode  int       `json:"exitCode"`
	Error     string    `json:"error,omitempty"`
}

// RunIsFinished reports whether the run has reached a terminal status.
func (r *RunStatus) RunIsFinished() bool {
	return r.Status == StatusComplete || r.Status == StatusFailed
}

// RunInfo records a launched delegate run.
type RunInfo struct {
	Invocation delegate.Invocation `json:"invocation"`
	Status     RunStatus           `json:"runStatus"`
	Cancel     context.CancelFunc  `json:"-"`
}

// SafeMapRunInfo wraps a map[string]RunInfo with locking, via Load() and Store() methods.
type SafeMapRunInfo struct {
	sync.RWMutex
	Internal map[string]RunInfo
}

func NewSafeMapRunInfo() *SafeMapRunInfo {
	ri := SafeMapRunInfo{}
	ri.Internal = make(map[string]RunInfo)
	return &ri
}

func (t *SafeMapRunInfo) Load(key string) (ri RunInfo, ok bool) {
	t.RLock()
	ri, ok = t.Internal[key]
	t.RUnlock()
	return
}

func (t *SafeMapRunInfo) Store(key string, value RunInfo) {
	t.Lock()
	t.Internal[key] = value
	t.Unlock()
}

func (t *SafeMapRunInfo) Delete(key string) {
	t.Lock()
	delete(t.Internal, key)
	t.Unlock()
}

// UpdateStatus applies fn to the status of the run identified by key, under the lock.
func (t *SafeMapRunInfo) UpdateStatus(key string, fn func(*RunStatus)) {
	t.Lock()
	if ri, ok := t.Internal[key]; ok { // if the run is still registered...
		fn(&ri.Status)
		t.Internal[key] = ri
	}
	t.Unlock()
}

// LaunchInvocation registers inv with runs and starts the delegate in a goroutine.
// It returns the GUID of the new run.
func LaunchInvocation(log logger.Logger, runs *SafeMapRunInfo, runner delegate.Runner, inv *delegate.Invocation) (guid string, err error) {
	// Validate the invocation.
	if err = helper.ValidateStructIsPopulated(inv); err != nil { // if there was an error in validation...
		return // guid, err
	}
	if runner == nil {
		return "", errors.New("nil delegate runner supplied")
	}
	guid = xid.New().String()
	ctx, cancelFn := context.WithCancel(context.Background())
	runs.Store(guid, RunInfo{
		Invocation: *inv, // save value
		Cancel:     cancelFn,
		Status:     RunStatus{Status: StatusStarting, StartTime: time.Now()},
	})
	log.Info("Launching delegate run ", guid)
	go func() {
		runs.UpdateStatus(guid, func(s *RunStatus) {
			s.Status = StatusRunning
		})
		runErr := runner.Run(ctx, log, inv)
		runs.UpdateStatus(guid, func(s *RunStatus) {
			s.EndTime = time.Now()
			if runErr != nil { // if the delegate failed...
				s.Status = StatusFailed
				s.Error = runErr.Error()
				var ee *delegate.ExitError
				if errors.As(runErr, &ee) {
					s.ExitCode = ee.Code
				} else {
					s.ExitCode = -1
				}
			} else {
				s.Status = StatusComplete
			}
		})
	}()
	return guid, nil
}
