package vmhost

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// memoryEnv serves one extension call out of the guest linear memory
type memoryEnv struct {
	mem       api.Memory
	frame     Frame
	funcID    uint32
	inPtr     uint32
	inLen     uint32
	outPtr    uint32
	outLenPtr uint32

	written []byte
}

func (e *memoryEnv) FuncID() uint32 {
	return e.funcID
}

func (e *memoryEnv) Input() ([]byte, error) {
	view, ok := e.mem.Read(e.inPtr, e.inLen)
	if !ok {
		return nil, fmt.Errorf("%w: input [%d, +%d)", ErrOutOfBounds, e.inPtr, e.inLen)
	}
	// the view aliases guest memory
	return append([]byte(nil), view...), nil
}

func (e *memoryEnv) CallerAddress() []byte {
	return e.frame.Caller[:]
}

func (e *memoryEnv) ContractAddress() []byte {
	return e.frame.Contract[:]
}

// WriteOutput copies p to the output buffer and stores its length at the
// length pointer, which holds the buffer capacity on entry
func (e *memoryEnv) WriteOutput(p []byte) error {
	capacity, ok := e.mem.ReadUint32Le(e.outLenPtr)
	if !ok {
		return fmt.Errorf("%w: output length at %d", ErrOutOfBounds, e.outLenPtr)
	}
	if uint32(len(p)) > capacity {
		return fmt.Errorf("%w: %d bytes for a %d bytes buffer", ErrOutputTooLarge, len(p), capacity)
	}
	if !e.mem.Write(e.outPtr, p) {
		return fmt.Errorf("%w: output [%d, +%d)", ErrOutOfBounds, e.outPtr, len(p))
	}
	if !e.mem.WriteUint32Le(e.outLenPtr, uint32(len(p))) {
		return fmt.Errorf("%w: output length at %d", ErrOutOfBounds, e.outLenPtr)
	}
	e.written = append([]byte(nil), p...)
	return nil
}
