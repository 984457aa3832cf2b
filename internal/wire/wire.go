// Package wire implements the subset of the Wayland wire format used by
// wlout: message framing, argument encoding and decoding, and the Unix
// socket transport to the compositor.
package wire

import (
	"encoding/binary"
	"errors"
	"math"
)

// HeaderSize is the size of the sender/size/opcode header that starts
// every message.
const HeaderSize = 8

// byteOrder is the host byte order, which is what Wayland uses on the
// wire.
var byteOrder = binary.NativeEndian

// ErrShortMessage is returned by Split when the buffer does not yet
// hold a complete message.
var ErrShortMessage = errors.New("wire: incomplete message")

// Fixed is the protocol's signed 24.8 fixed-point number.
type Fixed int32

// FixedFloat converts v to the nearest representable Fixed.
func FixedFloat(v float64) Fixed {
	return Fixed(math.Round(v * 256))
}

// Float returns the value of f as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / 256
}

func padding(l uint32) uint32 {
	return (4 - (l & 0x3)) & 0x3
}
