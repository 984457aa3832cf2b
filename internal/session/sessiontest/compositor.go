// Package sessiontest provides an in-memory compositor implementing
// session.Transport. It speaks the wire format and keeps its own output
// layout, so tests can observe what a configuration really changed.
package sessiontest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/protocols"
	"github.com/bnema/wlout/internal/wire"
)

// ErrStalled is returned by ReadMessage when the client waits for an
// event the compositor will never send.
var ErrStalled = errors.New("sessiontest: client is waiting but no events are queued")

// ModeSpec describes an advertised mode. Refresh is in mHz.
type ModeSpec struct {
	Width     int32
	Height    int32
	Refresh   int32
	Preferred bool
	Current   bool
}

// HeadSpec describes a head. Disabled heads get no current mode.
type HeadSpec struct {
	Name         string
	Description  string
	Make         string
	Model        string
	SerialNumber string
	Enabled      bool
	X, Y         int32
	Transform    int32
	Scale        float64
	AdaptiveSync uint32
	Modes        []ModeSpec
}

type head struct {
	id    uint32
	spec  HeadSpec
	modes []uint32
}

type configHead struct {
	head         uint32
	mode         uint32
	custom       *ModeSpec
	position     *[2]int32
	transform    *int32
	scale        *float64
	adaptiveSync *uint32
}

type configuration struct {
	serial   uint32
	enabled  map[uint32]*configHead
	disabled map[uint32]bool
	order    []uint32
}

// Request is one request received from the client.
type Request struct {
	Method string
	Text   string
}

// Compositor is a scripted compositor. Configure the exported fields
// before handing it to session.Connect.
type Compositor struct {
	// ManagerVersion is the advertised zwlr_output_manager_v1 version;
	// zero hides the global.
	ManagerVersion uint32
	// DuplicateManager advertises a second output manager global.
	DuplicateManager bool

	heads   []*head
	modes   map[uint32]*ModeSpec
	nextID  uint32
	serial  uint32
	results []output.Result

	objects        map[uint32]string
	configs        map[uint32]*configuration
	configHeads    map[uint32]*configHead
	manager        uint32
	managerVersion uint32

	queue    []*wire.Builder
	requests []Request
	closed   bool
}

// New returns a compositor exposing heads through a version 4 manager.
func New(heads ...HeadSpec) *Compositor {
	c := &Compositor{
		ManagerVersion: protocols.OutputManagerVersion,
		modes:          make(map[uint32]*ModeSpec),
		nextID:         uint32(protocols.FirstServerID),
		serial:         1,
		objects:        map[uint32]string{uint32(protocols.DisplayID): protocols.DisplayInterface},
		configs:        make(map[uint32]*configuration),
		configHeads:    make(map[uint32]*configHead),
	}
	for _, spec := range heads {
		c.addHead(spec)
	}
	return c
}

func (c *Compositor) addHead(spec HeadSpec) {
	h := &head{id: c.alloc(), spec: spec}
	if h.spec.Scale == 0 {
		h.spec.Scale = 1
	}
	h.spec.Modes = nil
	for _, m := range spec.Modes {
		if !spec.Enabled {
			m.Current = false
		}
		h.modes = append(h.modes, c.addMode(m))
	}
	c.heads = append(c.heads, h)
}

func (c *Compositor) addMode(m ModeSpec) uint32 {
	id := c.alloc()
	mode := m
	c.modes[id] = &mode
	return id
}

func (c *Compositor) alloc() uint32 {
	id := c.nextID
	c.nextID++
	return id
}

// QueueResults sets the answers to the next configurations, in order.
// Configurations without a queued answer succeed.
func (c *Compositor) QueueResults(results ...output.Result) {
	c.results = append(c.results, results...)
}

// ChangeSerial simulates a configuration change the client has not seen
// yet: configurations created with the previous serial get cancelled.
func (c *Compositor) ChangeSerial() {
	c.serial++
}

// Unplug disconnects the head called name: its modes and the head itself
// are finished, followed by a new done.
func (c *Compositor) Unplug(name string) bool {
	for i, h := range c.heads {
		if h.spec.Name != name {
			continue
		}
		for _, id := range h.modes {
			c.modeEvent(id, protocols.ModeFinishedEvent, "finished")
			delete(c.modes, id)
		}
		c.headEvent(h, protocols.HeadFinishedEvent, "finished")
		c.heads = append(c.heads[:i], c.heads[i+1:]...)
		c.serial++
		c.done()
		return true
	}
	return false
}

// Inject queues a raw event.
func (c *Compositor) Inject(b *wire.Builder) {
	c.queue = append(c.queue, b)
}

// Requests returns every request received so far.
func (c *Compositor) Requests() []Request {
	out := make([]Request, len(c.requests))
	copy(out, c.requests)
	return out
}

// Count returns how many requests named method (for instance
// "create_configuration") were received.
func (c *Compositor) Count(method string) int {
	n := 0
	for _, r := range c.requests {
		if r.Method == method || strings.HasSuffix(r.Method, "."+method) {
			n++
		}
	}
	return n
}

// Head returns the compositor-side state of the head called name.
func (c *Compositor) Head(name string) (HeadSpec, bool) {
	for _, h := range c.heads {
		if h.spec.Name == name {
			spec := h.spec
			spec.Modes = nil
			for _, id := range h.modes {
				spec.Modes = append(spec.Modes, *c.modes[id])
			}
			return spec, true
		}
	}
	return HeadSpec{}, false
}

// CurrentMode returns the current mode of the head called name.
func (c *Compositor) CurrentMode(name string) (ModeSpec, bool) {
	spec, ok := c.Head(name)
	if !ok {
		return ModeSpec{}, false
	}
	for _, m := range spec.Modes {
		if m.Current {
			return m, true
		}
	}
	return ModeSpec{}, false
}

// Closed reports whether the client closed the connection.
func (c *Compositor) Closed() bool {
	return c.closed
}

func (c *Compositor) Close() error {
	c.closed = true
	return nil
}

// ReadMessage hands the next queued event to the client after a round
// trip through the wire encoding.
func (c *Compositor) ReadMessage(ctx context.Context) (*wire.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.closed {
		return nil, errors.New("sessiontest: connection closed")
	}
	if len(c.queue) == 0 {
		return nil, ErrStalled
	}

	b := c.queue[0]
	c.queue = c.queue[1:]
	msg, rest, err := wire.Split(b.Bytes())
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("sessiontest: %d trailing bytes", len(rest))
	}
	return msg, nil
}

// WriteMessage handles one request from the client.
func (c *Compositor) WriteMessage(b *wire.Builder) error {
	if c.closed {
		return errors.New("sessiontest: connection closed")
	}
	c.requests = append(c.requests, Request{Method: b.Method, Text: b.String()})

	msg, _, err := wire.Split(b.Bytes())
	if err != nil {
		return err
	}
	iface, ok := c.objects[msg.Sender]
	if !ok {
		c.protocolError(msg.Sender, "invalid object")
		return nil
	}
	if err := c.handle(iface, msg); err != nil {
		c.protocolError(msg.Sender, err.Error())
	}
	return nil
}

func (c *Compositor) protocolError(object uint32, text string) {
	c.send(wire.NewBuilder(uint32(protocols.DisplayID), protocols.DisplayErrorEvent, "wl_display.error").
		WriteObject(object).
		WriteUint(0).
		WriteString(text))
}

func (c *Compositor) send(b *wire.Builder) {
	c.queue = append(c.queue, b)
}
