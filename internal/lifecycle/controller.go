package lifecycle

import (
	"context"
	"errors"
	"time"

	"toolbox/internal/operation"
	"toolbox/internal/schema"
	"toolbox/internal/toolsvc"
	"toolbox/pkg/logging"
)

const subsystem = "Lifecycle"

// ErrNoService is returned by remote operations run without a service.
var ErrNoService = errors.New("no tool service configured")

// ErrorPrefix starts the result text of every failed run.
const ErrorPrefix = "Error: "

// Phase is the request lifecycle phase of one tool panel.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// String makes Phase satisfy the fmt.Stringer interface.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseLoading:
		return "Loading"
	case PhaseSuccess:
		return "Success"
	case PhaseError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Policy decides what happens to an outcome that arrives after a newer
// trigger.
type Policy int

const (
	// LastWriteWins applies every outcome in arrival order, so a slow
	// superseded request may overwrite a newer result.
	LastWriteWins Policy = iota
	// DiscardStale applies only the outcome of the most recent trigger.
	DiscardStale
)

// String makes Policy satisfy the fmt.Stringer interface.
func (p Policy) String() string {
	if p == DiscardStale {
		return "discard-stale"
	}
	return "last-write-wins"
}

// State is the observable request state of one panel.
type State struct {
	Phase Phase
	Shape operation.ResultShape
	Text  string
	Image string
	// IsError marks Text as an error message.
	IsError bool
	// Issued is the sequence number of the latest trigger; Applied that of
	// the latest outcome applied.
	Issued  uint64
	Applied uint64
}

// Service is the remote side of an operation.
type Service interface {
	Do(ctx context.Context, r toolsvc.Request) ([]byte, error)
}

// Controller owns the State of one panel. It is not safe for concurrent use:
// Trigger and Apply are called from a single goroutine (the dashboard's
// update loop), while Call.Run may execute anywhere.
type Controller struct {
	desc   operation.Descriptor
	svc    Service
	policy Policy
	state  State
}

// Option configures a Controller.
type Option func(*Controller)

// WithPolicy sets the ordering policy for late outcomes.
func WithPolicy(p Policy) Option {
	return func(c *Controller) {
		c.policy = p
	}
}

// New creates a controller for one resolved operation, starting Idle.
func New(desc operation.Descriptor, svc Service, opts ...Option) *Controller {
	c := &Controller{desc: desc, svc: svc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Descriptor returns the operation the controller runs.
func (c *Controller) Descriptor() operation.Descriptor {
	return c.desc
}

// Policy returns the ordering policy in effect.
func (c *Controller) Policy() Policy {
	return c.policy
}

// Trigger enters Loading and returns the call to run. Any phase may be
// re-triggered; the previous image is cleared while the previous text stays
// visible until the outcome arrives. Values are snapshotted so later edits
// do not reach the call.
func (c *Controller) Trigger(values schema.Values) Call {
	c.state.Issued++
	c.state.Phase = PhaseLoading
	c.state.Image = ""
	return Call{
		Seq:    c.state.Issued,
		desc:   c.desc,
		svc:    c.svc,
		values: values.Clone(),
	}
}

// Apply records the outcome of a call and reports whether it changed the
// state. Outcomes from a different controller or, under DiscardStale,
// superseded outcomes are ignored.
func (c *Controller) Apply(o Outcome) bool {
	if o.Seq == 0 || o.Seq > c.state.Issued {
		return false
	}
	if c.policy == DiscardStale && o.Seq < c.state.Issued {
		logging.Debug(subsystem, "discarding stale outcome %d of %s (latest %d)", o.Seq, c.desc.Kind, c.state.Issued)
		return false
	}

	c.state.Applied = o.Seq
	if o.Err != nil {
		c.state.Phase = PhaseError
		c.state.IsError = true
		c.state.Shape = operation.ShapePlainText
		c.state.Image = ""
		c.state.Text = ErrorPrefix + toolsvc.Detail(o.Err)
		return true
	}

	c.state.Phase = PhaseSuccess
	c.state.IsError = false
	c.state.Shape = o.Result.Shape
	c.state.Text = o.Result.Text
	if o.Result.Shape == operation.ShapeImage {
		c.state.Image = o.Result.Image
	} else {
		c.state.Image = ""
	}
	return true
}

// Call is one triggered run. It is a value and may be executed on any
// goroutine.
type Call struct {
	Seq uint64

	desc   operation.Descriptor
	svc    Service
	values schema.Values
}

// Outcome is the result of running a Call.
type Outcome struct {
	Seq     uint64
	Kind    operation.Kind
	Result  operation.Result
	Err     error
	Elapsed time.Duration
}

// Run executes the operation. Local operations and the Unimplemented
// operation never touch the network; neither do inputs that fail local
// validation.
func (c Call) Run(ctx context.Context) Outcome {
	start := time.Now()
	out := Outcome{Seq: c.Seq, Kind: c.desc.Kind}
	out.Result, out.Err = c.run(ctx)
	out.Elapsed = time.Since(start)
	if out.Err != nil {
		logging.Debug(subsystem, "%s run %d failed after %s: %v", c.desc.Kind, c.Seq, out.Elapsed, out.Err)
	} else {
		logging.Debug(subsystem, "%s run %d succeeded after %s", c.desc.Kind, c.Seq, out.Elapsed)
	}
	return out
}

func (c Call) run(ctx context.Context) (operation.Result, error) {
	if !c.desc.Call.Remote() {
		return c.desc.Local(c.values)
	}
	req, err := c.desc.Prepare(c.values)
	if err != nil {
		return operation.Result{}, err
	}
	if c.svc == nil {
		return operation.Result{}, ErrNoService
	}
	body, err := c.svc.Do(ctx, req)
	if err != nil {
		return operation.Result{}, err
	}
	return c.desc.Interpret(c.values, body)
}
