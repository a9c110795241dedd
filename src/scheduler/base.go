package scheduler

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"
)

// ScheduledTask runs a function on a cron schedule until cancelled.
type ScheduledTask struct {
	cronID cron.EntryID
	cron   *cron.Cron
	cancel chan struct{}
	once   sync.Once
}

// NewScheduledTask accepts standard cron specs as well as descriptors such
// as "@every 1m".
func NewScheduledTask(cronSpec string, taskFunc func()) (*ScheduledTask, error) {
	c := cron.New()
	cancel := make(chan struct{})
	task := &ScheduledTask{
		cron:   c,
		cancel: cancel,
	}

	id, err := c.AddFunc(cronSpec, func() {
		select {
		case <-cancel:
			return
		default:
			taskFunc()
		}
	})
	if err != nil {
		return nil, err
	}

	task.cronID = id
	c.Start()
	return task, nil
}

// Cancel stops future runs and returns a context that is done once any run
// in progress has finished. It is safe to call more than once.
func (s *ScheduledTask) Cancel() context.Context {
	s.once.Do(func() {
		s.cron.Remove(s.cronID)
		close(s.cancel)
	})
	return s.cron.Stop()
}
