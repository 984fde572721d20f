package osc

import (
	"fmt"
	"log"
	"net"
	"time"
)

// sendTimeout bounds a single datagram write so a frame never stalls on telemetry.
const sendTimeout = 2 * time.Millisecond

// Client sends fire-and-forget OSC packets over UDP. goosc.Client dials a new
// socket per send, so the connection is held here with a write deadline.
type Client struct {
	conn     net.Conn
	reported bool
}

// Dial opens a UDP socket to host:port. UDP dial never waits for the peer.
func Dial(host string, port int) (*Client, error) {
	conn, err := net.Dial("udp", net.JoinHostPort(host, fmt.Sprint(port)))
	if err != nil {
		return nil, fmt.Errorf("osc dial %s:%d: %w", host, port, err)
	}
	return &Client{conn: conn}, nil
}

// Send encodes and writes a packet. Failures are dropped; only the first one is logged.
func (c *Client) Send(p Packet) bool {
	if c == nil || c.conn == nil {
		return false
	}
	data, err := p.MarshalBinary()
	if err == nil {
		c.conn.SetWriteDeadline(time.Now().Add(sendTimeout))
		_, err = c.conn.Write(data)
	}
	if err != nil {
		if !c.reported {
			log.Printf("WARNING: Dropping OSC packet: %v", err)
			c.reported = true
		}
		return false
	}
	return true
}

func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
