package wire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

const (
	readChunk = 4096
	// maxFDs bounds the ancillary buffer. None of the interfaces wlout
	// binds carry file descriptors, so anything received is closed.
	maxFDs = 28
)

func xdgRuntimeDir() string {
	dir, ok := os.LookupEnv("XDG_RUNTIME_DIR")
	if ok {
		return dir
	}
	return fmt.Sprintf("/var/run/user/%v", os.Getuid())
}

// SocketPath resolves the compositor socket. An empty display falls
// back to $WAYLAND_DISPLAY and then to "wayland-0"; relative names are
// resolved against $XDG_RUNTIME_DIR.
func SocketPath(display string) string {
	if display == "" {
		display = os.Getenv("WAYLAND_DISPLAY")
	}
	if display == "" {
		display = "wayland-0"
	}
	if filepath.IsAbs(display) {
		return display
	}

	return filepath.Join(xdgRuntimeDir(), display)
}

// Conn is a Wayland connection to the compositor.
type Conn struct {
	conn *net.UnixConn
	buf  []byte
}

// NewConn wraps c. Use the Close method of the returned Conn instead of
// closing c directly.
func NewConn(c *net.UnixConn) *Conn {
	return &Conn{conn: c}
}

// Dial connects to the compositor. $WAYLAND_SOCKET takes precedence
// when set and display is empty, as with libwayland.
func Dial(ctx context.Context, display string) (*Conn, error) {
	if v, ok := os.LookupEnv("WAYLAND_SOCKET"); ok && display == "" {
		fd, err := strconv.ParseInt(v, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("parse WAYLAND_SOCKET fd: %w", err)
		}
		file := os.NewFile(uintptr(fd), "WAYLAND_SOCKET")
		defer file.Close()

		c, err := net.FileConn(file)
		if err != nil {
			return nil, fmt.Errorf("open WAYLAND_SOCKET connection: %w", err)
		}
		uc, ok := c.(*net.UnixConn)
		if !ok {
			c.Close()
			return nil, errors.New("WAYLAND_SOCKET is not a unix socket")
		}
		return NewConn(uc), nil
	}

	path := SocketPath(display)
	var d net.Dialer
	c, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("connect to wayland compositor at %s: %w", path, err)
	}
	return NewConn(c.(*net.UnixConn)), nil
}

// Close closes the underlying socket.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// WriteMessage sends one framed message.
func (c *Conn) WriteMessage(b *Builder) error {
	data := b.Bytes()
	n, err := c.conn.Write(data)
	if err != nil {
		return fmt.Errorf("write %s: %w", b.Method, err)
	}
	if n < len(data) {
		return fmt.Errorf("write %s: %w", b.Method, io.ErrShortWrite)
	}
	return nil
}

// ReadMessage blocks until a complete message is available or ctx is
// done.
func (c *Conn) ReadMessage(ctx context.Context) (*Message, error) {
	for {
		msg, rest, err := Split(c.buf)
		if err == nil {
			c.buf = rest
			return msg, nil
		}
		if !errors.Is(err, ErrShortMessage) {
			return nil, err
		}

		if err := c.fill(ctx); err != nil {
			return nil, err
		}
	}
}

func (c *Conn) fill(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.conn.SetReadDeadline(time.Time{}); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetReadDeadline(time.Unix(1, 0))
	})
	defer stop()

	data := make([]byte, readChunk)
	oob := make([]byte, unix.CmsgSpace(maxFDs*4))
	n, oobn, _, _, err := c.conn.ReadMsgUnix(data, oob)
	if oobn > 0 {
		closeFDs(oob[:oobn])
	}
	c.buf = append(c.buf, data[:n]...)

	switch {
	case err == nil && n == 0:
		return fmt.Errorf("compositor closed the connection: %w", io.EOF)
	case err != nil && ctx.Err() != nil:
		return ctx.Err()
	case err != nil && n == 0:
		return fmt.Errorf("read from compositor: %w", err)
	}
	return nil
}

func closeFDs(oob []byte) {
	cmsgs, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return
	}
	for _, cmsg := range cmsgs {
		fds, err := unix.ParseUnixRights(&cmsg)
		if err != nil {
			continue
		}
		for _, fd := range fds {
			_ = unix.Close(fd)
		}
	}
}
