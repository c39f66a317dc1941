package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StartCron schedules every registered job and starts the scheduler.
func StartCron() (*cron.Cron, error) {
	c := cron.New()
	for _, j := range Jobs() {
		j := j
		if _, err := c.AddFunc(j.Schedule, func() { runLogged(j) }); err != nil {
			return nil, fmt.Errorf("register job %s: %w", j.Name, err)
		}
		log.Info().Str("job", j.Name).Str("schedule", j.Schedule).Msg("cron job scheduled")
	}
	c.Start()
	return c, nil
}

// RunJob runs a single job by name, synchronously.
func RunJob(name string, args ...string) error {
	j, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown job: %s", name)
	}
	runLogged(j, args...)
	return nil
}

func runLogged(j Job, args ...string) {
	name := j.Name
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("job", name).Interface("panic", r).Msg("cron job panicked")
		}
	}()
	j.Run(args...)
	log.Debug().Str("job", name).Dur("took", time.Since(start)).Msg("cron job finished")
}
