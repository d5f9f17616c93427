package nav

import "time"

// Outcome classifies how a navigation cycle ended.
type Outcome string

const (
	// OutcomeOK means a route matched and its content was mounted.
	OutcomeOK Outcome = "ok"

	// OutcomeNotFound means no route matched; Not-Found content was mounted.
	OutcomeNotFound Outcome = "not_found"

	// OutcomeHandlerError means the handler failed; error content was mounted.
	OutcomeHandlerError Outcome = "handler_error"

	// OutcomeRenderError means the resolved content could not be mounted.
	OutcomeRenderError Outcome = "render_error"

	// OutcomeSuperseded means a later navigation won the container and
	// this resolution was discarded.
	OutcomeSuperseded Outcome = "superseded"
)

// Listener observes the navigation lifecycle. Implementations must be
// safe for concurrent use; the engine calls them synchronously.
type Listener interface {
	// NavigationStarted fires after commit, before content resolution.
	NavigationStarted(path string)

	// NavigationFinished fires once the cycle ends, with its outcome and
	// the time spent resolving and mounting.
	NavigationFinished(path string, outcome Outcome, elapsed time.Duration)
}

func (e *Engine) notifyStarted(path string) {
	for _, l := range e.listeners {
		l.NavigationStarted(path)
	}
}

func (e *Engine) notifyFinished(path string, outcome Outcome, elapsed time.Duration) {
	for _, l := range e.listeners {
		l.NavigationFinished(path, outcome, elapsed)
	}
}
