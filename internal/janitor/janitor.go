// Package janitor runs the periodic clean-up jobs: expired sessions,
// stale notices, idle rate-limit buckets.
package janitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Job removes stale entries and reports how many went.
type Job func(ctx context.Context) (int, error)

type entry struct {
	name string
	job  Job
}

type Janitor struct {
	sched *cron.Cron
	log   *zap.Logger

	mu   sync.Mutex
	jobs []entry
}

func New(loc *time.Location, log *zap.Logger) *Janitor {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Janitor{
		sched: cron.New(cron.WithLocation(loc), cron.WithParser(cronParser)),
		log:   log.Named("janitor"),
	}
}

// Add schedules job, e.g. "@every 1m" or "0 */5 * * * *".
func (j *Janitor) Add(name, schedule string, job Job) error {
	e := entry{name: name, job: job}
	if _, err := j.sched.AddFunc(schedule, func() { j.run(context.Background(), e) }); err != nil {
		return fmt.Errorf("janitor %s: %w", name, err)
	}
	j.mu.Lock()
	j.jobs = append(j.jobs, e)
	j.mu.Unlock()
	return nil
}

func (j *Janitor) run(ctx context.Context, e entry) {
	defer func() {
		if err := recover(); err != nil {
			j.log.Error("job panicked", zap.String("job", e.name), zap.Any("panic", err))
		}
	}()
	n, err := e.job(ctx)
	if err != nil {
		j.log.Error("job failed", zap.String("job", e.name), zap.Error(err))
		return
	}
	if n > 0 {
		j.log.Debug("swept", zap.String("job", e.name), zap.Int("removed", n))
	}
}

// RunNow runs every job once, in the order they were added.
func (j *Janitor) RunNow(ctx context.Context) {
	j.mu.Lock()
	jobs := append([]entry(nil), j.jobs...)
	j.mu.Unlock()
	for _, e := range jobs {
		j.run(ctx, e)
	}
}

func (j *Janitor) Start() { j.sched.Start() }

// Stop halts scheduling; the returned context is done once running jobs end.
func (j *Janitor) Stop() context.Context { return j.sched.Stop() }
