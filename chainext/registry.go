package chainext

import (
	"context"
	"fmt"
	"sort"

	"github.com/assetbridge/chainext/ledger"
)

// Call carries what a handler needs from the current dispatch
type Call struct {
	Ledger   ledger.Ledger
	Caller   ledger.AccountID
	Contract ledger.AccountID
}

// Origin resolves selector against the caller and the contract of the call
func (c Call) Origin(selector OriginSelector) ledger.AccountID {
	return ResolveOrigin(selector, c.Caller, c.Contract)
}

// Handler serves one FuncID: Decode parses the input, Invoke talks to the
// ledger and the returned Response encodes what goes back to the contract.
// An error from Decode or Invoke aborts the contract call.
type Handler struct {
	FuncID FuncID
	Decode func(input []byte) (Request, error)
	Invoke func(ctx context.Context, call Call, req Request) (Response, error)
}

// NewHandler builds a Handler from typed decode and invoke functions
func NewHandler[R Request](
	id FuncID,
	decode func([]byte) (R, error),
	invoke func(context.Context, Call, R) (Response, error),
) Handler {
	return Handler{
		FuncID: id,
		Decode: func(input []byte) (Request, error) {
			req, err := decode(input)
			if err != nil {
				return nil, err
			}
			return req, nil
		},
		Invoke: func(ctx context.Context, call Call, req Request) (Response, error) {
			typed, ok := req.(R)
			if !ok {
				return nil, fmt.Errorf("%w: %s got request %T", ErrMalformedRequest, id, req)
			}
			return invoke(ctx, call, typed)
		},
	}
}

// Registry maps every FuncID to exactly one Handler
type Registry struct {
	handlers map[FuncID]Handler
}

// NewRegistry panics when a FuncID is registered twice or a handler is incomplete
func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{handlers: make(map[FuncID]Handler, len(handlers))}
	for _, h := range handlers {
		if h.Decode == nil || h.Invoke == nil {
			panic(fmt.Sprintf("chainext: incomplete handler for %s (%d)", h.FuncID, uint32(h.FuncID)))
		}
		if _, dup := r.handlers[h.FuncID]; dup {
			panic(fmt.Sprintf("chainext: func id %d registered twice", uint32(h.FuncID)))
		}
		r.handlers[h.FuncID] = h
	}
	return r
}

// Lookup returns the handler of id
func (r *Registry) Lookup(id FuncID) (Handler, bool) {
	h, ok := r.handlers[id]
	return h, ok
}

// FuncIDs returns the registered ids in ascending order
func (r *Registry) FuncIDs() []FuncID {
	ids := make([]FuncID, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
