package attempts

import (
    "errors"
    "sync"
    "testing"
    "time"

    "github.com/google/uuid"

    "gne-trainer/internal/models"
)

type flakyStore struct {
    mu       sync.Mutex
    failures int
    created  []*models.Attempt
    calls    int
}

func (f *flakyStore) Create(attempt *models.Attempt) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.calls++
    if f.calls <= f.failures {
        return errors.New("connection refused")
    }
    f.created = append(f.created, attempt)
    return nil
}

func newTestRecorder(store Store) *Recorder {
    r := NewRecorder(store)
    r.backoff = time.Millisecond
    return r
}

func TestRecordSucceedsFirstTry(t *testing.T) {
    store := &flakyStore{}
    rec := newTestRecorder(store)

    rec.Record(&models.Attempt{UserID: uuid.New(), ItemID: 1})
    rec.Wait()

    if len(store.created) != 1 {
        t.Fatalf("Created %d attempts, want 1", len(store.created))
    }
}

func TestRecordRetriesTransientFailure(t *testing.T) {
    store := &flakyStore{failures: 2}
    rec := newTestRecorder(store)

    rec.Record(&models.Attempt{UserID: uuid.New(), ItemID: 1})
    rec.Wait()

    if len(store.created) != 1 {
        t.Fatalf("Created %d attempts after retries, want 1", len(store.created))
    }
    if store.calls != 3 {
        t.Errorf("Store called %d times, want 3", store.calls)
    }
}

// TestRecordGivesUpAfterBoundedRetries: a persistent failure is dropped, not
// retried forever, and never duplicated.
func TestRecordGivesUpAfterBoundedRetries(t *testing.T) {
    store := &flakyStore{failures: 100}
    rec := newTestRecorder(store)

    rec.Record(&models.Attempt{UserID: uuid.New(), ItemID: 1})
    rec.Wait()

    if len(store.created) != 0 {
        t.Fatalf("Created %d attempts, want 0", len(store.created))
    }
    if store.calls != rec.retries {
        t.Errorf("Store called %d times, want %d", store.calls, rec.retries)
    }
}
