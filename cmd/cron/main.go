// Command cron runs the periodic jobs once and exits. It is intended to be
// invoked by an external cron, as an alternative to the HTTP trigger routes.
//
// Flags:
//
//	--job      overdue, sla, schedules, retention or all (default: all)
//	--timeout  upper bound for the whole run (default: 5m)
//
// Exit codes: 0 = every job succeeded, 1 = at least one job failed.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/facility-backend/internal/app"
)

func main() {
	jobFlag := flag.String("job", app.JobAll, "job to run: overdue, sla, schedules, retention or all")
	timeoutFlag := flag.Duration("timeout", 5*time.Minute, "upper bound for the whole run")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, *timeoutFlag)
	defer cancel()

	if err := app.RunJobs(ctx, *jobFlag); err != nil {
		log.Printf("cron %s: %v", *jobFlag, err)
		cancel()
		stop()
		os.Exit(1)
	}
}
