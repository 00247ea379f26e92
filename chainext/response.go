package chainext

import (
	"fmt"

	"github.com/assetbridge/chainext/ledger"
)

const (
	resultOk  byte = 0x00
	resultErr byte = 0x01
)

// Response is what a handler produced. Encode returns nil when nothing must be
// written to the output buffer.
type Response interface {
	Encode() []byte
}

type noResponse struct{}

func (noResponse) Encode() []byte { return nil }

type okResponse struct{}

func (okResponse) Encode() []byte { return EncodeOk() }

type errResponse struct {
	code ErrorCode
}

func (r errResponse) Encode() []byte { return EncodeErr(r.code) }

type balanceResponse struct {
	value ledger.Balance
}

func (r balanceResponse) Encode() []byte {
	be := r.value.BE()
	return be[:]
}

// EncodeOk returns the encoded Ok(()) envelope
func EncodeOk() []byte {
	return []byte{resultOk}
}

// EncodeErr returns the encoded Err(code) envelope
func EncodeErr(code ErrorCode) []byte {
	return append([]byte{resultErr}, code.Encode()...)
}

// DecodeResult parses a Result envelope. A nil ErrorCode means Ok.
func DecodeResult(buf []byte) (*ErrorCode, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty result", errBadErrorCode)
	}
	switch buf[0] {
	case resultOk:
		if len(buf) != 1 {
			return nil, fmt.Errorf("%w: trailing bytes after Ok", errBadErrorCode)
		}
		return nil, nil
	case resultErr:
		code, n, err := DecodeErrorCode(buf[1:])
		if err != nil {
			return nil, err
		}
		if 1+n != len(buf) {
			return nil, fmt.Errorf("%w: trailing bytes after Err", errBadErrorCode)
		}
		return &code, nil
	default:
		return nil, fmt.Errorf("%w: result tag %d", errBadErrorCode, buf[0])
	}
}
