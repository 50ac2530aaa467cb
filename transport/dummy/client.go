package dummy

import (
	"errors"
	"io"
	"net"

	"github.com/indigo-web/webserv/transport"
)

var _ transport.Client = new(Client)

var ErrWrite = errors.New("mock client: write failed")

// Client returns the pieces it was initialised with one per read, and io.EOF after they
// run out, unless looped. All the written data is journaled.
type Client struct {
	closed, loop, failWrites bool
	pointer                  int
	written                  []byte
	data                     [][]byte
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data: data,
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if c.pointer >= len(c.data) {
		if !c.loop || len(c.data) == 0 {
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.failWrites {
		return 0, ErrWrite
	}

	c.written = append(c.written, p...)

	return len(p), nil
}

func (*Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// LoopReads starts over after the last piece instead of returning io.EOF.
func (c *Client) LoopReads() *Client {
	c.loop = true
	return c
}

// FailWrites makes every write fail.
func (c *Client) FailWrites() *Client {
	c.failWrites = true
	return c
}

func (c *Client) Closed() bool {
	return c.closed
}

func (c *Client) Written() string {
	return string(c.written)
}
