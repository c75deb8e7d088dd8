// internal/practice/engine.go
package practice

import (
    "context"
    "errors"
    "log"
    "math/rand"
    "sync"
    "time"

    "github.com/google/uuid"

    "gne-trainer/internal/models"
)

var (
    // ErrNoItems is the empty-pool state: the bank has nothing to practice.
    // Handlers render it as a normal "no items" display, not a failure.
    ErrNoItems = errors.New("no items found")

    // ErrNoActiveRound means submit arrived without a presented item.
    ErrNoActiveRound = errors.New("no active round")

    // ErrRoundLocked means the round was already submitted and no stored
    // result is available yet to replay.
    ErrRoundLocked = errors.New("round already submitted")
)

// ItemSource supplies the candidate pool; satisfied by the items service.
type ItemSource interface {
    SamplePool() ([]models.Item, error)
    GetByID(id uint) (*models.Item, error)
}

// RoundStore holds per-user round state across the present/submit gap;
// satisfied by the Redis cache.
type RoundStore interface {
    SaveRound(ctx context.Context, userID uuid.UUID, round *models.Round) error
    GetRound(ctx context.Context, userID uuid.UUID) (*models.Round, error)
    UpdateRound(ctx context.Context, userID uuid.UUID, round *models.Round) error
    TryLockRound(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AttemptSink records graded attempts; satisfied by the attempts recorder.
type AttemptSink interface {
    Record(attempt *models.Attempt)
}

// Engine drives one practice round per user:
// present an item, accept exactly one answer, grade it, record the attempt,
// then stay locked until the next round is requested.
type Engine struct {
    items    ItemSource
    rounds   RoundStore
    recorder AttemptSink

    mu  sync.Mutex // rand.Rand is not safe for concurrent use
    rng *rand.Rand

    now func() time.Time
}

func NewEngine(items ItemSource, rounds RoundStore, recorder AttemptSink, rng *rand.Rand) *Engine {
    return &Engine{
        items:    items,
        rounds:   rounds,
        recorder: recorder,
        rng:      rng,
        now:      time.Now,
    }
}

func (e *Engine) intn(n int) int {
    e.mu.Lock()
    defer e.mu.Unlock()
    return e.rng.Intn(n)
}

// Next starts a fresh round: fetch the pool, pick one item uniformly at
// random, remember when it was presented. Selection is with replacement
// across rounds; repeats are expected.
func (e *Engine) Next(ctx context.Context, userID uuid.UUID) (models.PracticeItemDTO, error) {
    var zero models.PracticeItemDTO

    pool, err := e.items.SamplePool()
    if err != nil {
        return zero, err
    }
    if len(pool) == 0 {
        return zero, ErrNoItems
    }

    picked := pool[e.intn(len(pool))]

    // Reject malformed payloads before presenting rather than at grading.
    dto, err := picked.ToPracticeDTO()
    if err != nil {
        return zero, err
    }
    if _, err := picked.CorrectAnswer(); err != nil {
        return zero, err
    }

    round := &models.Round{
        ItemID:      picked.ID,
        PresentedAt: e.now(),
    }
    if err := e.rounds.SaveRound(ctx, userID, round); err != nil {
        return zero, err
    }

    return dto, nil
}

// Submit grades the user's choice for the current round. The submit lock
// guarantees at most one graded attempt per round: a repeat submit gets the
// stored result back instead of grading again.
func (e *Engine) Submit(ctx context.Context, userID uuid.UUID, choice string) (*models.RoundResult, error) {
    round, err := e.rounds.GetRound(ctx, userID)
    if err != nil {
        return nil, err
    }
    if round == nil {
        return nil, ErrNoActiveRound
    }

    if round.Locked {
        if round.Result != nil {
            return round.Result, nil
        }
        return nil, ErrRoundLocked
    }

    acquired, err := e.rounds.TryLockRound(ctx, userID)
    if err != nil {
        return nil, err
    }
    if !acquired {
        // Lost the race to a concurrent submit for the same round.
        fresh, err := e.rounds.GetRound(ctx, userID)
        if err == nil && fresh != nil && fresh.Result != nil {
            return fresh.Result, nil
        }
        return nil, ErrRoundLocked
    }

    item, err := e.items.GetByID(round.ItemID)
    if err != nil {
        return nil, err
    }
    correctAnswer, err := item.CorrectAnswer()
    if err != nil {
        return nil, err
    }

    timeSpent := int(e.now().Sub(round.PresentedAt) / time.Millisecond)
    if timeSpent < 0 {
        timeSpent = 0
    }

    result := &models.RoundResult{
        Choice:        choice,
        IsCorrect:     correctAnswer == choice,
        CorrectAnswer: correctAnswer,
        Explain:       item.Explain,
        TimeSpentMs:   timeSpent,
    }

    round.Locked = true
    round.Result = result
    if err := e.rounds.UpdateRound(ctx, userID, round); err != nil {
        // Feedback is still shown; only replay of the result is lost.
        log.Printf("Error storing round result for user %s: %v", userID, err)
    }

    e.recorder.Record(&models.Attempt{
        UserID:      userID,
        ItemID:      item.ID,
        UserAnswer:  models.UserAnswerJSON(choice),
        IsCorrect:   result.IsCorrect,
        TimeSpentMs: result.TimeSpentMs,
    })

    return result, nil
}
