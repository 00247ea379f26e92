package chainext

import "errors"

var errOutputTooSmall = errors.New("output buffer too small")

// testEnv is an in memory Environment
type testEnv struct {
	funcID   uint32
	input    []byte
	caller   []byte
	contract []byte
	capacity int

	output []byte
	writes int
}

func newTestEnv(id FuncID, input []byte, caller, contract [32]byte) *testEnv {
	return &testEnv{
		funcID:   uint32(id),
		input:    input,
		caller:   caller[:],
		contract: contract[:],
		capacity: 256,
	}
}

func (e *testEnv) FuncID() uint32          { return e.funcID }
func (e *testEnv) Input() ([]byte, error)  { return e.input, nil }
func (e *testEnv) CallerAddress() []byte   { return e.caller }
func (e *testEnv) ContractAddress() []byte { return e.contract }

func (e *testEnv) WriteOutput(p []byte) error {
	if len(p) > e.capacity {
		return errOutputTooSmall
	}
	e.writes++
	e.output = append([]byte(nil), p...)
	return nil
}
