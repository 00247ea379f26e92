package chainext

import (
	"encoding/binary"
	"fmt"

	"github.com/assetbridge/chainext/ledger"
)

const (
	assetIDLength  = 4
	selectorLength = 1
	boolLength     = 1
	decimalsLength = 1
	// MetadataFieldLength is the fixed size of the name and symbol fields
	MetadataFieldLength = 32
)

// decoder reads fixed width fields in declaration order. Integers are little
// endian. The first failure sticks and later reads return zero values.
type decoder struct {
	buf []byte
	off int
	err error
}

func newDecoder(buf []byte, expected int) *decoder {
	d := &decoder{buf: buf}
	if len(buf) != expected {
		d.err = fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedRequest, expected, len(buf))
	}
	return d
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return make([]byte, n)
	}
	if d.off+n > len(d.buf) {
		d.err = fmt.Errorf("%w: short buffer at offset %d", ErrMalformedRequest, d.off)
		return make([]byte, n)
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b
}

func (d *decoder) u8() uint8 {
	return d.take(1)[0]
}

func (d *decoder) u32() uint32 {
	return binary.LittleEndian.Uint32(d.take(assetIDLength))
}

func (d *decoder) boolean() bool {
	v := d.u8()
	if v > 1 && d.err == nil {
		d.err = fmt.Errorf("%w: invalid bool %d", ErrMalformedRequest, v)
	}
	return v == 1
}

func (d *decoder) origin() OriginSelector {
	o := OriginSelector(d.u8())
	if !o.valid() && d.err == nil {
		d.err = fmt.Errorf("%w: invalid origin selector %d", ErrMalformedRequest, uint8(o))
	}
	return o
}

func (d *decoder) account() ledger.AccountID {
	raw := d.take(ledger.AccountIDLength)
	if d.err != nil {
		return ledger.AccountID{}
	}
	id, err := DecodeAccount(raw)
	if err != nil {
		d.err = err
	}
	return id
}

func (d *decoder) balance() ledger.Balance {
	raw := d.take(ledger.BalanceLength)
	if d.err != nil {
		return ledger.Balance{}
	}
	b, err := ledger.BalanceFromLE(raw)
	if err != nil {
		d.err = fmt.Errorf("%w: %v", ErrMalformedRequest, err) //nolint:errorlint
	}
	return b
}

func (d *decoder) fixed32() [MetadataFieldLength]byte {
	var out [MetadataFieldLength]byte
	copy(out[:], d.take(MetadataFieldLength))
	return out
}

// done fails when bytes are left unread
func (d *decoder) done() error {
	if d.err == nil && d.off != len(d.buf) {
		d.err = fmt.Errorf("%w: %d trailing bytes", ErrMalformedRequest, len(d.buf)-d.off)
	}
	return d.err
}

// encoder is the inverse of decoder
type encoder struct {
	buf []byte
}

func newEncoder(size int) *encoder {
	return &encoder{buf: make([]byte, 0, size)}
}

func (e *encoder) u8(v uint8) *encoder {
	e.buf = append(e.buf, v)
	return e
}

func (e *encoder) u32(v uint32) *encoder {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
	return e
}

func (e *encoder) boolean(v bool) *encoder {
	if v {
		return e.u8(1)
	}
	return e.u8(0)
}

func (e *encoder) account(a ledger.AccountID) *encoder {
	e.buf = append(e.buf, a[:]...)
	return e
}

func (e *encoder) balance(b ledger.Balance) *encoder {
	le := b.LE()
	e.buf = append(e.buf, le[:]...)
	return e
}

func (e *encoder) raw(p []byte) *encoder {
	e.buf = append(e.buf, p...)
	return e
}

func (e *encoder) bytes() []byte {
	return e.buf
}
