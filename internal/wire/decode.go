package wire

import (
	"errors"
	"fmt"
)

// Message is a single message read from the socket. Its arguments are
// decoded in order with the Read methods; the first decoding failure is
// kept and reported by Err.
type Message struct {
	Sender uint32
	Op     uint16

	data []byte
	off  int
	err  error
}

// NewMessage wraps an already framed payload (without the header).
func NewMessage(sender uint32, op uint16, payload []byte) *Message {
	return &Message{
		Sender: sender,
		Op:     op,
		data:   payload,
	}
}

// Split extracts the first complete message from buf and returns it
// along with the remaining bytes. If buf does not hold a whole message
// yet, ErrShortMessage is returned and buf is left untouched.
func Split(buf []byte) (*Message, []byte, error) {
	if len(buf) < HeaderSize {
		return nil, buf, ErrShortMessage
	}

	sender := byteOrder.Uint32(buf[0:4])
	so := byteOrder.Uint32(buf[4:8])
	size := int(so >> 16)
	op := uint16(so & 0xFFFF)

	if size < HeaderSize {
		return nil, buf, fmt.Errorf("wire: invalid message size %d from object %d", size, sender)
	}
	if len(buf) < size {
		return nil, buf, ErrShortMessage
	}

	payload := make([]byte, size-HeaderSize)
	copy(payload, buf[HeaderSize:size])
	return NewMessage(sender, op, payload), buf[size:], nil
}

// Err returns the first error encountered while decoding arguments.
func (m *Message) Err() error {
	return m.err
}

// Len returns the payload length in bytes.
func (m *Message) Len() int {
	return len(m.data)
}

func (m *Message) next(n int) []byte {
	if m.err != nil {
		return nil
	}
	if m.off+n > len(m.data) {
		m.err = fmt.Errorf("wire: message from object %d opcode %d truncated", m.Sender, m.Op)
		return nil
	}

	b := m.data[m.off : m.off+n]
	m.off += n
	return b
}

func (m *Message) ReadUint() uint32 {
	b := m.next(4)
	if b == nil {
		return 0
	}
	return byteOrder.Uint32(b)
}

func (m *Message) ReadInt() int32 {
	return int32(m.ReadUint())
}

func (m *Message) ReadFixed() Fixed {
	return Fixed(m.ReadUint())
}

// ReadObject reads an object argument. Zero means a null object.
func (m *Message) ReadObject() uint32 {
	return m.ReadUint()
}

// ReadNewID reads a typed new_id argument.
func (m *Message) ReadNewID() uint32 {
	return m.ReadUint()
}

func (m *Message) ReadString() string {
	b, length := m.sized()
	if b == nil || length == 0 {
		return ""
	}
	if b[length-1] != 0 {
		m.err = errors.New("wire: string is not null-terminated")
		return ""
	}
	return string(b[:length-1])
}

// sized reads the length prefix of a string and the padded bytes that
// follow it. The length is checked against what is left of the message
// before anything is sliced.
func (m *Message) sized() ([]byte, uint32) {
	length := m.ReadUint()
	if m.err != nil {
		return nil, 0
	}

	n := uint64(length) + uint64(padding(length))
	if n > uint64(len(m.data)-m.off) {
		m.err = fmt.Errorf("wire: argument of %d bytes overruns message from object %d opcode %d", length, m.Sender, m.Op)
		return nil, 0
	}
	return m.next(int(n)), length
}
