// internal/attempts/recorder.go
package attempts

import (
    "log"
    "sync"
    "time"

    "gne-trainer/internal/models"
)

// Store is the persistence surface the recorder needs; satisfied by
// *Repository.
type Store interface {
    Create(attempt *models.Attempt) error
}

// Recorder persists graded attempts off the request path. The learner's
// feedback never waits on the write; a failed write is retried a bounded
// number of times and then logged and dropped.
type Recorder struct {
    repo    Store
    retries int
    backoff time.Duration
    wg      sync.WaitGroup
}

func NewRecorder(repo Store) *Recorder {
    return &Recorder{
        repo:    repo,
        retries: 3,
        backoff: 500 * time.Millisecond,
    }
}

// Record is called exactly once per practice round, after grading.
func (r *Recorder) Record(attempt *models.Attempt) {
    r.wg.Add(1)
    go func() {
        defer r.wg.Done()

        var err error
        for i := 0; i < r.retries; i++ {
            if err = r.repo.Create(attempt); err == nil {
                return
            }
            time.Sleep(r.backoff)
        }
        log.Printf("Dropping attempt for user %s item %d after %d tries: %v",
            attempt.UserID, attempt.ItemID, r.retries, err)
    }()
}

// Wait blocks until every in-flight write has finished. Used on shutdown and
// in tests.
func (r *Recorder) Wait() {
    r.wg.Wait()
}
