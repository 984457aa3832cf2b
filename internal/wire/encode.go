package wire

import (
	"fmt"
	"strings"
)

// Builder is a message under construction. Requests are built by the
// client; the test compositor uses the same type to build events.
type Builder struct {
	// Method is the request or event name, kept for debug logging.
	Method string

	sender uint32
	op     uint16
	data   []byte
	args   []any
}

// NewBuilder starts a message sent by object sender with the given
// opcode.
func NewBuilder(sender uint32, op uint16, method string) *Builder {
	return &Builder{
		Method: method,
		sender: sender,
		op:     op,
	}
}

func (b *Builder) Sender() uint32 {
	return b.sender
}

func (b *Builder) Op() uint16 {
	return b.op
}

func (b *Builder) put(v uint32) {
	b.data = byteOrder.AppendUint32(b.data, v)
}

func (b *Builder) WriteUint(v uint32) *Builder {
	b.put(v)
	b.args = append(b.args, v)
	return b
}

func (b *Builder) WriteInt(v int32) *Builder {
	b.put(uint32(v))
	b.args = append(b.args, v)
	return b
}

func (b *Builder) WriteFixed(v Fixed) *Builder {
	b.put(uint32(v))
	b.args = append(b.args, v.Float())
	return b
}

func (b *Builder) WriteObject(id uint32) *Builder {
	b.put(id)
	b.args = append(b.args, fmt.Sprintf("#%d", id))
	return b
}

func (b *Builder) WriteNewID(id uint32) *Builder {
	b.put(id)
	b.args = append(b.args, fmt.Sprintf("new#%d", id))
	return b
}

func (b *Builder) WriteString(v string) *Builder {
	length := uint32(len(v) + 1)
	b.put(length)
	b.data = append(b.data, v...)
	b.data = append(b.data, 0)
	for i := uint32(0); i < padding(length); i++ {
		b.data = append(b.data, 0)
	}
	b.args = append(b.args, fmt.Sprintf("%q", v))
	return b
}

// Bytes returns the framed message, header included.
func (b *Builder) Bytes() []byte {
	size := uint32(HeaderSize + len(b.data))
	out := make([]byte, 0, size)
	out = byteOrder.AppendUint32(out, b.sender)
	out = byteOrder.AppendUint32(out, size<<16|uint32(b.op))
	return append(out, b.data...)
}

// Message returns the decoded view of the message, as the receiving
// side would see it.
func (b *Builder) Message() *Message {
	payload := make([]byte, len(b.data))
	copy(payload, b.data)
	return NewMessage(b.sender, b.op, payload)
}

func (b *Builder) String() string {
	args := make([]string, 0, len(b.args))
	for _, arg := range b.args {
		args = append(args, fmt.Sprint(arg))
	}
	return fmt.Sprintf("#%d.%s(%s)", b.sender, b.Method, strings.Join(args, ", "))
}
