package config

import "strings"

// Default schedules for built-in cron jobs. Override with CRON_<NAME>.
var CronSchedules = map[string]string{
	"sessiongc":  "@every 10m",
	"tokenprune": "0 3 * * *",
}

// CronSchedule returns the schedule for a built-in job.
func CronSchedule(name string) string {
	return GetEnv("CRON_"+strings.ToUpper(name), CronSchedules[name])
}
