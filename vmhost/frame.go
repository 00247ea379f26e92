package vmhost

import (
	"context"

	"github.com/assetbridge/chainext/ledger"
)

// Frame identifies the contract call the VM is executing
type Frame struct {
	Caller   ledger.AccountID
	Contract ledger.AccountID
}

type frameKey struct{}

// WithFrame attaches f to ctx. Guest code invoked with the returned context
// reaches the extension on behalf of f.
func WithFrame(ctx context.Context, f Frame) context.Context {
	return context.WithValue(ctx, frameKey{}, f)
}

// FrameFrom returns the frame attached to ctx
func FrameFrom(ctx context.Context) (Frame, bool) {
	f, ok := ctx.Value(frameKey{}).(Frame)
	return f, ok
}

// record collects what a single extension call did, when somebody asked for it
type record struct {
	output  []byte
	written bool
	err     error
}

type recordKey struct{}

func withRecord(ctx context.Context, r *record) context.Context {
	return context.WithValue(ctx, recordKey{}, r)
}

func recordFrom(ctx context.Context) *record {
	r, _ := ctx.Value(recordKey{}).(*record)
	return r
}
