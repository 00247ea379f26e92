package chainext

import (
	"context"
	"fmt"
	"time"

	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/log"
)

// Converging is the value returned to the VM when the call completed,
// whether the ledger accepted the operation or not
const Converging uint32 = 0

// Environment is what the VM supplies for a single extension call
type Environment interface {
	// FuncID is the operation requested by the contract
	FuncID() uint32
	// Input reads the request buffer
	Input() ([]byte, error)
	// CallerAddress is the raw address of whoever called the contract
	CallerAddress() []byte
	// ContractAddress is the raw address of the executing contract
	ContractAddress() []byte
	// WriteOutput copies p into the contract output buffer
	WriteOutput(p []byte) error
}

// Dispatcher is the entry point of the chain extension. It owns no state
// across calls and is meant to be driven sequentially.
type Dispatcher struct {
	logger   *log.Logger
	ledger   ledger.Ledger
	registry *Registry
	sink     EventSink
}

// NewDispatcher creates a Dispatcher. A nil sink drops events
func NewDispatcher(logger *log.Logger, l ledger.Ledger, registry *Registry, sink EventSink) *Dispatcher {
	if sink == nil {
		sink = NopSink{}
	}
	return &Dispatcher{
		logger:   logger,
		ledger:   l,
		registry: registry,
		sink:     sink,
	}
}

// Registry returns the handlers served by the dispatcher
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Call serves one extension call. A returned error aborts the contract call and
// guarantees nothing was written to the output buffer.
func (d *Dispatcher) Call(ctx context.Context, env Environment) (uint32, error) {
	start := time.Now()
	id := FuncID(env.FuncID())
	ev := Event{FuncID: id, Operation: id.String()}

	written, code, err := d.call(ctx, env, id, &ev)
	ev.Duration = time.Since(start)
	ev.Written = written
	switch {
	case err != nil:
		ev.Outcome = OutcomeAborted
		ev.Err = err
	case code != nil:
		ev.Outcome = OutcomeRejected
		ev.Code = code
	default:
		ev.Outcome = OutcomeSuccess
	}
	d.sink.Emit(ctx, ev)

	if err != nil {
		return 0, err
	}
	return Converging, nil
}

func (d *Dispatcher) call(ctx context.Context, env Environment, id FuncID, ev *Event) (int, *ErrorCode, error) {
	h, ok := d.registry.Lookup(id)
	if !ok {
		return 0, nil, fmt.Errorf("%w: %d", ErrUnknownOpcode, uint32(id))
	}

	input, err := env.Input()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading input: %v", ErrMalformedRequest, err) //nolint:errorlint
	}
	ev.Digest = RequestDigest(input)

	req, err := h.Decode(input)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", id, err)
	}

	caller, err := DecodeAccount(env.CallerAddress())
	if err != nil {
		return 0, nil, fmt.Errorf("caller: %w", err)
	}
	contract, err := DecodeAccount(env.ContractAddress())
	if err != nil {
		return 0, nil, fmt.Errorf("contract: %w", err)
	}

	var (
		written int
		code    *ErrorCode
	)
	run := func(ctx context.Context) error {
		resp, err := h.Invoke(ctx, Call{Ledger: d.ledger, Caller: caller, Contract: contract}, req)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		if er, ok := resp.(errResponse); ok {
			code = &er.code
		}
		out := resp.Encode()
		if out == nil {
			return nil
		}
		if err := env.WriteOutput(out); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputWrite, err) //nolint:errorlint
		}
		written = len(out)
		return nil
	}

	// ledger changes are kept only once the response reached the contract
	if uow, ok := d.ledger.(ledger.UnitOfWork); ok {
		err = uow.UnitOfWork(ctx, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return 0, nil, err
	}
	return written, code, nil
}
