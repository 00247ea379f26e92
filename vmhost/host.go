// Package vmhost runs wasm contracts and exposes the chain extension to them
// as an imported host function.
package vmhost

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/assetbridge/chainext/chainext"
	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/log"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

var (
	// ErrOutOfBounds is returned when a pointer handed by the guest is outside its memory
	ErrOutOfBounds = errors.New("guest memory access out of bounds")
	// ErrOutputTooLarge is returned when a response does not fit the guest output buffer
	ErrOutputTooLarge = errors.New("output does not fit the buffer")
	// ErrNoFrame is returned when the extension is reached outside of a contract call
	ErrNoFrame = errors.New("extension called without a call frame")
	// ErrBadContract is returned when a contract lacks the expected exports
	ErrBadContract = errors.New("invalid contract")
)

// ProxyContract is a contract whose entry point forwards its five arguments
// to the extension and returns its result. It exports one page of memory.
var ProxyContract = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	// type: (i32, i32, i32, i32, i32) -> i32
	0x01, 0x0a, 0x01, 0x60, 0x05, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x01, 0x7f,
	// import seal0.call_chain_extension
	0x02, 0x1e, 0x01,
	0x05, 0x73, 0x65, 0x61, 0x6c, 0x30,
	0x14, 0x63, 0x61, 0x6c, 0x6c, 0x5f, 0x63, 0x68, 0x61, 0x69, 0x6e,
	0x5f, 0x65, 0x78, 0x74, 0x65, 0x6e, 0x73, 0x69, 0x6f, 0x6e,
	0x00, 0x00,
	// function
	0x03, 0x02, 0x01, 0x00,
	// memory, one page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// export call, memory
	0x07, 0x11, 0x02,
	0x04, 0x63, 0x61, 0x6c, 0x6c, 0x00, 0x01,
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
	// code: local.get 0..4; call 0; end
	0x0a, 0x10, 0x01, 0x0e, 0x00,
	0x20, 0x00, 0x20, 0x01, 0x20, 0x02, 0x20, 0x03, 0x20, 0x04,
	0x10, 0x00, 0x0b,
}

// Invocation asks a contract to issue one extension call
type Invocation struct {
	Caller   ledger.AccountID
	Contract ledger.AccountID
	FuncID   uint32
	Input    []byte
	// OutputCapacity defaults to Config.OutputCapacity
	OutputCapacity uint32
}

// Result of an invocation that did not abort
type Result struct {
	// Code is what the contract returned
	Code uint32
	// Output is what the extension wrote, nil when Written is false
	Output  []byte
	Written bool
}

// layout of the guest memory used by Invoke
const (
	outLenOffset = 0
	inputOffset  = 8
)

// Host owns the wasm runtime. Calls are executed one at a time.
type Host struct {
	logger     *log.Logger
	cfg        Config
	dispatcher *chainext.Dispatcher
	runtime    wazero.Runtime
	proxy      wazero.CompiledModule

	mu      sync.Mutex
	counter atomic.Uint64
}

// New creates the runtime and registers the extension import
func New(ctx context.Context, logger *log.Logger, cfg Config, dispatcher *chainext.Dispatcher) (*Host, error) {
	cfg = cfg.withDefaults()
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().
		WithMemoryLimitPages(cfg.MemoryLimitPages).
		WithCloseOnContextDone(true))
	h := &Host{
		logger:     logger,
		cfg:        cfg,
		dispatcher: dispatcher,
		runtime:    rt,
	}

	_, err := rt.NewHostModuleBuilder(cfg.ImportModule).
		NewFunctionBuilder().
		WithFunc(h.callChainExtension).
		WithParameterNames("func_id", "in_ptr", "in_len", "out_ptr", "out_len_ptr").
		Export(cfg.ImportName).
		Instantiate(ctx)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("error instantiating %s host module: %w", cfg.ImportModule, err)
	}

	if cfg.ImportModule == defaultImportModule && cfg.ImportName == defaultImportName &&
		cfg.EntryPoint == defaultEntryPoint {
		if h.proxy, err = rt.CompileModule(ctx, ProxyContract); err != nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("error compiling proxy contract: %w", err)
		}
	}
	return h, nil
}

// Close releases the runtime and every module instantiated on it
func (h *Host) Close(ctx context.Context) error {
	return h.runtime.Close(ctx)
}

// Compile validates a contract
func (h *Host) Compile(ctx context.Context, code []byte) (wazero.CompiledModule, error) {
	compiled, err := h.runtime.CompileModule(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadContract, err) //nolint:errorlint
	}
	if _, ok := compiled.ExportedFunctions()[h.cfg.EntryPoint]; !ok {
		_ = compiled.Close(ctx)
		return nil, fmt.Errorf("%w: missing %s export", ErrBadContract, h.cfg.EntryPoint)
	}
	return compiled, nil
}

// Invoke runs the proxy contract, which issues exactly the extension call
// described by inv
func (h *Host) Invoke(ctx context.Context, inv Invocation) (*Result, error) {
	if h.proxy == nil {
		return nil, fmt.Errorf("%w: proxy contract unavailable with custom import names", ErrBadContract)
	}
	return h.InvokeModule(ctx, h.proxy, inv)
}

// InvokeModule instantiates compiled, places the input in its memory and
// calls its entry point with (func_id, in_ptr, in_len, out_ptr, out_len_ptr).
// An aborted extension call is returned as an error wrapping the cause.
func (h *Host) InvokeModule(ctx context.Context, compiled wazero.CompiledModule, inv Invocation) (*Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, h.cfg.CallTimeout.Duration)
	defer cancel()

	capacity := inv.OutputCapacity
	if capacity == 0 {
		capacity = h.cfg.OutputCapacity
	}

	name := fmt.Sprintf("contract-%d", h.counter.Add(1))
	mod, err := h.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		return nil, fmt.Errorf("error instantiating contract: %w", err)
	}
	defer mod.Close(ctx)

	entry := mod.ExportedFunction(h.cfg.EntryPoint)
	mem := mod.Memory()
	if entry == nil || mem == nil {
		return nil, fmt.Errorf("%w: contract must export %s and a memory", ErrBadContract, h.cfg.EntryPoint)
	}

	inLen := uint32(len(inv.Input))
	outPtr := inputOffset + inLen
	if uint64(outPtr)+uint64(capacity) > uint64(mem.Size()) {
		return nil, fmt.Errorf("%w: %d bytes of input and %d of output in %d bytes of memory",
			ErrOutOfBounds, inLen, capacity, mem.Size())
	}
	if !mem.Write(inputOffset, inv.Input) || !mem.WriteUint32Le(outLenOffset, capacity) {
		return nil, fmt.Errorf("%w: writing the request", ErrOutOfBounds)
	}

	rec := &record{}
	callCtx := withRecord(WithFrame(ctx, Frame{Caller: inv.Caller, Contract: inv.Contract}), rec)
	ret, err := entry.Call(callCtx,
		uint64(inv.FuncID), inputOffset, uint64(inLen), uint64(outPtr), outLenOffset)
	if rec.err != nil {
		return nil, fmt.Errorf("contract call aborted: %w", rec.err)
	}
	if err != nil {
		return nil, fmt.Errorf("contract call aborted: %w", err)
	}
	if len(ret) != 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrBadContract, h.cfg.EntryPoint, len(ret))
	}

	res := &Result{Code: api.DecodeU32(ret[0]), Written: rec.written}
	if rec.written {
		res.Output = rec.output
	}
	return res, nil
}

// callChainExtension is the host side of seal0.call_chain_extension. Errors
// trap the guest, aborting the contract call.
func (h *Host) callChainExtension(ctx context.Context, m api.Module,
	funcID, inPtr, inLen, outPtr, outLenPtr uint32) uint32 {
	rec := recordFrom(ctx)
	fail := func(err error) {
		if rec != nil {
			rec.err = err
		}
		panic(err)
	}

	frame, ok := FrameFrom(ctx)
	if !ok {
		fail(ErrNoFrame)
	}
	mem := m.Memory()
	if mem == nil {
		fail(fmt.Errorf("%w: module %s has no memory", ErrOutOfBounds, m.Name()))
	}

	env := &memoryEnv{
		mem:       mem,
		frame:     frame,
		funcID:    funcID,
		inPtr:     inPtr,
		inLen:     inLen,
		outPtr:    outPtr,
		outLenPtr: outLenPtr,
	}
	ret, err := h.dispatcher.Call(ctx, env)
	if err != nil {
		h.logger.Debugf("extension call %d from %s aborted: %v", funcID, m.Name(), err)
		fail(err)
	}
	if rec != nil && env.written != nil {
		rec.output = env.written
		rec.written = true
	}
	return ret
}
