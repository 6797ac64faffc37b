package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dodoensemble/internal/app/deps"
	"dodoensemble/internal/app/services"
	"dodoensemble/internal/core/domain/logging"
	dispatchreminders "dodoensemble/internal/core/services/dispatch_reminders"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// The scheduler runs reminder dispatch on a cron cadence for
// deployments without an external cron caller hitting the HTTP
// endpoint.
func main() {
	godotenv.Load()

	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	c := cron.New(cron.WithLocation(deps.Location))
	_, err := c.AddFunc(deps.Config.DispatchCronSpec, func() {
		result, err := services.DispatchReminders.Run(context.Background(), dispatchreminders.Input{})
		if err != nil {
			log.Error(context.Background(), "Reminder dispatch failed.", logging.Entry("err", err))
			return
		}
		log.Info(
			context.Background(),
			"Reminder dispatch finished.",
			logging.Entry("notificationsSent", result.NotificationsSent),
		)
	})
	if err != nil {
		log.Error(
			context.Background(),
			"Invalid dispatch cron spec.",
			logging.Entry("spec", deps.Config.DispatchCronSpec),
			logging.Entry("err", err),
		)
		panic(err)
	}

	log.Info(
		context.Background(),
		"Starting reminder dispatch scheduler.",
		logging.Entry("spec", deps.Config.DispatchCronSpec),
		logging.Entry("timezone", deps.Config.Timezone),
	)
	c.Start()

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	log.Info(context.Background(), "Stopping reminder dispatch scheduler.")
	<-c.Stop().Done()
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
