// Package session drives a wlr-output-management conversation with the
// compositor: it discovers and binds the output manager, keeps an
// output.State up to date from the event stream and runs configuration
// transactions.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/wlout/internal/logger"
	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/protocols"
	"github.com/bnema/wlout/internal/wire"
)

var (
	// ErrEnvironmentUnsupported is returned by Connect when the compositor
	// does not advertise zwlr_output_manager_v1.
	ErrEnvironmentUnsupported = errors.New("your system does not support the zwlr_output_manager_v1 interface. This tool only works on wlroots compositors")

	// ErrManagerFinished is returned when the compositor retired the
	// output manager.
	ErrManagerFinished = errors.New("output manager finished by the compositor")
)

// Transport carries framed protocol messages. *wire.Conn is the real
// implementation.
type Transport interface {
	ReadMessage(ctx context.Context) (*wire.Message, error)
	WriteMessage(b *wire.Builder) error
	Close() error
}

type options struct {
	transport   Transport
	display     string
	renormalize bool
}

// Option configures Connect.
type Option func(*options)

// WithTransport uses t instead of dialing the compositor socket.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithDisplay sets the socket name or path, overriding $WAYLAND_DISPLAY.
func WithDisplay(display string) Option {
	return func(o *options) {
		o.display = display
	}
}

// WithRenormalize toggles the follow-up transaction that moves the layout
// back to the origin after a successful Apply. Enabled by default.
func WithRenormalize(enabled bool) Option {
	return func(o *options) {
		o.renormalize = enabled
	}
}

// Session is a live connection to the compositor with a bound output
// manager. It is not safe for concurrent use.
type Session struct {
	conn    Transport
	objects *protocols.Objects
	state   *output.State

	registry       protocols.ObjectID
	manager        protocols.ObjectID
	managerName    uint32
	managerVersion uint32

	callbacks   map[protocols.ObjectID]bool
	renormalize bool
}

// Connect opens a session and waits until the compositor sent its initial
// output snapshot. The wait is bounded only by ctx.
func Connect(ctx context.Context, opts ...Option) (*Session, error) {
	o := options{renormalize: true}
	for _, opt := range opts {
		opt(&o)
	}

	conn := o.transport
	if conn == nil {
		c, err := wire.Dial(ctx, o.display)
		if err != nil {
			return nil, err
		}
		conn = c
	}

	s := &Session{
		conn:        conn,
		objects:     protocols.NewObjects(),
		state:       output.NewState(),
		callbacks:   make(map[protocols.ObjectID]bool),
		renormalize: o.renormalize,
	}
	if err := s.init(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) init(ctx context.Context) error {
	s.registry = s.objects.New(protocols.RegistryInterface)
	if err := s.send(protocols.GetRegistry(s.registry)); err != nil {
		return err
	}

	// Globals are announced before the sync callback fires.
	if err := s.Roundtrip(ctx); err != nil {
		return fmt.Errorf("failed to list globals: %w", err)
	}
	if s.manager == 0 {
		return ErrEnvironmentUnsupported
	}

	for !s.state.InitialDone() {
		if s.state.Finished() {
			return ErrManagerFinished
		}
		if err := s.Dispatch(ctx); err != nil {
			return fmt.Errorf("failed to read initial output state: %w", err)
		}
	}
	logger.Debug("Initial output state received", "heads", len(s.state.Heads()))
	return nil
}

// Close stops the output manager and closes the connection.
func (s *Session) Close() error {
	if s.manager != 0 && !s.state.Finished() {
		if err := s.send(protocols.StopManager(s.manager)); err != nil {
			logger.Debug("Failed to stop output manager", "error", err)
		}
	}
	return s.conn.Close()
}

// Heads returns a snapshot of every head in advertisement order.
func (s *Session) Heads() []output.Head {
	return s.state.Heads()
}

// Head returns a snapshot of the first head called name.
func (s *Session) Head(name string) (output.Head, error) {
	return s.state.Head(name)
}

// EnabledCount returns the number of enabled heads.
func (s *Session) EnabledCount() int {
	return s.state.EnabledCount()
}

// ManagerVersion is the version the output manager was bound at.
func (s *Session) ManagerVersion() uint32 {
	return s.managerVersion
}

// Roundtrip blocks until the compositor processed every request sent so
// far and all events it emitted in response were dispatched.
func (s *Session) Roundtrip(ctx context.Context) error {
	callback := s.objects.New(protocols.CallbackInterface)
	if err := s.send(protocols.Sync(callback)); err != nil {
		return err
	}
	defer delete(s.callbacks, callback)

	for !s.callbacks[callback] {
		if err := s.Dispatch(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch reads and handles a single event.
func (s *Session) Dispatch(ctx context.Context) error {
	msg, err := s.conn.ReadMessage(ctx)
	if err != nil {
		return err
	}

	ev, err := s.objects.Decode(msg)
	if errors.Is(err, protocols.ErrUnknownSender) {
		logger.Warn("Skipping event", "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("Event", "sender", ev.Sender(), "event", fmt.Sprintf("%T%+v", ev, ev))

	return s.handle(ev)
}

func (s *Session) handle(ev protocols.Event) error {
	switch e := ev.(type) {
	case protocols.DisplayError:
		return e

	case protocols.DeleteID:
		s.objects.Remove(e.ID)

	case protocols.CallbackDone:
		s.callbacks[e.Callback] = true
		s.objects.Remove(e.Callback)

	case protocols.Global:
		if e.Interface != protocols.OutputManagerInterface {
			return nil
		}
		if s.manager != 0 {
			logger.Debug("Ignoring additional output manager global", "name", e.Name)
			return nil
		}
		return s.bindManager(e)

	case protocols.GlobalRemove:
		if s.manager != 0 && e.Name == s.managerName {
			logger.Warn("Output manager global removed by the compositor")
		}

	default:
		if err := s.state.Apply(ev); err != nil {
			if errors.Is(err, output.ErrUnknownObject) {
				logger.Warn("Skipping event", "error", err)
				return nil
			}
			return err
		}

		switch e := ev.(type) {
		case protocols.HeadFinished:
			return s.release(e.Head, protocols.ReleaseHead)
		case protocols.ModeFinished:
			return s.release(e.Mode, protocols.ReleaseMode)
		}
	}
	return nil
}

// release destroys an inert head or mode. Before version 3 the protocol
// has no destructor and the identity is only forgotten.
func (s *Session) release(id protocols.ObjectID, req func(protocols.ObjectID) *wire.Builder) error {
	defer s.objects.Remove(id)
	if s.managerVersion < 3 {
		return nil
	}
	return s.send(req(id))
}

func (s *Session) bindManager(g protocols.Global) error {
	version := min(g.Version, protocols.OutputManagerVersion)
	id := s.objects.New(protocols.OutputManagerInterface)
	if err := s.send(protocols.Bind(s.registry, g.Name, g.Interface, version, id)); err != nil {
		return fmt.Errorf("failed to bind output manager: %w", err)
	}
	s.manager = id
	s.managerName = g.Name
	s.managerVersion = version
	logger.Debug("Bound output manager", "id", id, "version", version)
	return nil
}

func (s *Session) send(b *wire.Builder) error {
	logger.Debug("Request", "msg", b)
	if err := s.conn.WriteMessage(b); err != nil {
		return fmt.Errorf("failed to send %s: %w", b.Method, err)
	}
	return nil
}
