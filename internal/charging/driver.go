package charging

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"github.com/evtools/cardata/internal/schema"
	"github.com/evtools/cardata/internal/vehicle"
)

// Driver states. A run moves through awaiting_input/validating/iterating
// once per input file and ends in done after the single finalize step.
const (
	StateAwaitingInput = "awaiting_input"
	StateValidating    = "validating"
	StateIterating     = "iterating"
	StateFinalizing    = "finalizing"
	StateDone          = "done"
)

const (
	eventValidate = "validate"
	eventIterate  = "iterate"
	eventNextFile = "next_file"
	eventFinalize = "finalize"
	eventFinish   = "finish"
)

// Flusher is implemented by renderers that buffer output for the whole run
// (the CSV row builder). Finalize flushes them exactly once.
type Flusher interface {
	Flush() error
}

// Driver validates the top-level shape of one parsed charging-history
// document, walks the sessions in document order and dispatches each
// through extract, derive and the configured renderers. The first failure
// other than the open-session skip aborts the rest of that file; already
// rendered sessions are not rolled back.
type Driver struct {
	fsm       *fsm.FSM
	profile   vehicle.Profile
	renderers []Renderer
	log       *logrus.Logger
}

// NewDriver builds a driver rendering through the given renderers.
func NewDriver(profile vehicle.Profile, log *logrus.Logger, renderers ...Renderer) *Driver {
	d := &Driver{
		profile:   profile,
		renderers: renderers,
		log:       log,
	}
	d.fsm = fsm.NewFSM(
		StateAwaitingInput,
		fsm.Events{
			{Name: eventValidate, Src: []string{StateAwaitingInput}, Dst: StateValidating},
			{Name: eventIterate, Src: []string{StateValidating}, Dst: StateIterating},
			{Name: eventNextFile, Src: []string{StateIterating}, Dst: StateAwaitingInput},
			{Name: eventFinalize, Src: []string{StateAwaitingInput}, Dst: StateFinalizing},
			{Name: eventFinish, Src: []string{StateFinalizing}, Dst: StateDone},
		},
		nil,
	)
	return d
}

// State returns the current driver state.
func (d *Driver) State() string { return d.fsm.Current() }

// Run processes one parsed document. A failure is fatal for this file only;
// the driver returns to awaiting_input so the caller can continue with the
// next file.
func (d *Driver) Run(doc any) error {
	ctx := context.Background()
	if err := d.fsm.Event(ctx, eventValidate); err != nil {
		return fmt.Errorf("driver not ready: %w", err)
	}

	list, ok := doc.([]any)
	if !ok {
		d.fsm.SetState(StateAwaitingInput)
		return &schema.SchemaError{Want: "charging-history list", Got: schema.TypeName(doc)}
	}

	if err := d.fsm.Event(ctx, eventIterate); err != nil {
		return err
	}
	if err := d.iterate(list); err != nil {
		d.fsm.SetState(StateAwaitingInput)
		return err
	}
	return d.fsm.Event(ctx, eventNextFile)
}

func (d *Driver) iterate(list []any) error {
	for i, item := range list {
		sess, err := ExtractSession(item)
		if errors.Is(err, schema.ErrOpenSession) {
			d.log.WithField("index", i).Debug("Skipping in-progress charging session")
			continue
		}
		if err != nil {
			return fmt.Errorf("session %d: %w", i, err)
		}
		sess.Index = i

		m, err := Derive(sess, d.profile)
		if err != nil {
			return fmt.Errorf("session %d: %w", i, err)
		}
		for _, r := range d.renderers {
			if err := r.Render(sess, m); err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
		}
	}
	return nil
}

// Finalize flushes buffering renderers and moves the driver to done. Call
// once, after the last file of the run.
func (d *Driver) Finalize() error {
	ctx := context.Background()
	if err := d.fsm.Event(ctx, eventFinalize); err != nil {
		return fmt.Errorf("driver not ready to finalize: %w", err)
	}
	for _, r := range d.renderers {
		if f, ok := r.(Flusher); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}
	}
	return d.fsm.Event(ctx, eventFinish)
}
