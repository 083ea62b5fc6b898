// Package worker exposes helpers to register workflows/activities with a Temporal worker.
package worker

import (
	sdkactivity "go.temporal.io/sdk/activity"
	sdkworker "go.temporal.io/sdk/worker"
	sdkworkflow "go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-solid/internal/payroll"
	"github.com/ahrav/go-solid/internal/roster"
	"github.com/ahrav/go-solid/internal/workflow"
	"github.com/ahrav/go-solid/pkg/activity"
	"github.com/ahrav/go-solid/pkg/events"
)

// Registrar is the subset of sdkworker.Worker used for registration, so
// tests can register against a test environment as well.
type Registrar interface {
	RegisterWorkflowWithOptions(w interface{}, options sdkworkflow.RegisterOptions)
	RegisterActivityWithOptions(a interface{}, options sdkactivity.RegisterOptions)
}

var _ Registrar = sdkworker.Worker(nil)

// RegisterAll registers the payroll workflow and its activities. It must be
// called once during worker initialization, before the worker starts.
// A nil sink disables events; a nil registry selects the built-in roles.
func RegisterAll(w Registrar, sink events.EventSink, registry *roster.Registry) {
	base := activity.NewBaseActivities(sink)
	payrollActivities := payroll.NewActivities(base, registry)

	w.RegisterWorkflowWithOptions(workflow.PayrollWorkflow, sdkworkflow.RegisterOptions{Name: "PayrollWorkflow"})

	w.RegisterActivityWithOptions(payrollActivities.CheckAccess,
		sdkactivity.RegisterOptions{Name: workflow.CheckAccessActivity})
	w.RegisterActivityWithOptions(payrollActivities.CalculateCost,
		sdkactivity.RegisterOptions{Name: workflow.CalculateCostActivity})
}
