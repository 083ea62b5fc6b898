package worker

import (
	"fmt"

	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-solid/internal/config"
	"github.com/ahrav/go-solid/internal/logger"
	"github.com/ahrav/go-solid/pkg/events"
)

// ClientOptions builds Temporal client options from cfg, routing SDK logs
// through log.
func ClientOptions(cfg config.Config, log *logger.Logger) client.Options {
	return client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.TemporalNamespace,
		Logger:    log,
	}
}

// Run dials Temporal, registers everything on cfg.TaskQueue and blocks until
// interruptCh fires.
func Run(cfg config.Config, log *logger.Logger, interruptCh <-chan interface{}) error {
	c, err := client.Dial(ClientOptions(cfg, log))
	if err != nil {
		return fmt.Errorf("failed to dial temporal at %s: %w", cfg.TemporalHost, err)
	}
	defer c.Close()

	w := sdkworker.New(c, cfg.TaskQueue, sdkworker.Options{})
	RegisterAll(w, events.NewLogEventSink(log), nil)

	log.Info("Starting payroll worker", "task_queue", cfg.TaskQueue, "host", cfg.TemporalHost)
	if err := w.Run(interruptCh); err != nil {
		return fmt.Errorf("worker stopped: %w", err)
	}
	return nil
}
