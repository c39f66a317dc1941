package cron

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegister_LowercasesAndSorts(t *testing.T) {
	Register("Zeta", "@hourly", func(...string) {})
	Register("alpha", "@every 1h", func(...string) {})
	defer Unregister("zeta")
	defer Unregister("alpha")

	var names []string
	for _, j := range Jobs() {
		names = append(names, j.Name)
	}
	if diff := cmp.Diff([]string{"alpha", "zeta"}, names); diff != "" {
		t.Errorf("job order (-want +got):\n%s", diff)
	}
	if j, ok := Lookup("ALPHA"); !ok || j.Schedule != "@every 1h" {
		t.Errorf("Lookup(ALPHA) = %+v, %v", j, ok)
	}
}

func TestRegister_AfterJobsPanics(t *testing.T) {
	Jobs()
	defer Unregister("late")
	defer func() {
		if recover() == nil {
			t.Error("want panic once the table is frozen")
		}
	}()
	Register("late", "@daily", func(...string) {})
}

func TestRegister_DuplicatePanics(t *testing.T) {
	Register("dupjob", "@hourly", func(...string) {})
	defer Unregister("dupjob")
	defer func() {
		if recover() == nil {
			t.Error("want panic on duplicate")
		}
	}()
	Register("DupJob", "@daily", func(...string) {})
}

func TestRunJob(t *testing.T) {
	var got []string
	Register("runjobtest", "@hourly", func(args ...string) {
		got = args
		panic("recovered")
	})
	defer Unregister("runjobtest")

	if err := RunJob("RunJobTest", "a", "b"); err != nil {
		t.Fatalf("RunJob: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("args (-want +got):\n%s", diff)
	}
	if err := RunJob("missing"); err == nil {
		t.Error("RunJob(missing): want error")
	}
}

func TestStartCron_BadSchedule(t *testing.T) {
	Register("badschedule", "not a schedule", func(...string) {})
	defer Unregister("badschedule")
	if _, err := StartCron(); err == nil {
		t.Error("StartCron with bad schedule: want error")
	}
}
