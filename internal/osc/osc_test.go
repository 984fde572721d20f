package osc

import (
	"net"
	"testing"
	"time"

	goosc "github.com/hypebeast/go-osc/osc"
)

func TestAddress(t *testing.T) {
	tests := map[string]string{
		"player/health": "/player/health",
		"/max_loaded":   "/max_loaded",
	}
	for in, want := range tests {
		if got := Address(in); got != want {
			t.Errorf("Address(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestNewMessageNarrowsNumbers(t *testing.T) {
	msg := NewMessage("game/stats", 7, 1.5, "hit", int32(2))
	if msg.Address != "/game/stats" {
		t.Errorf("Expected /game/stats, got %s", msg.Address)
	}
	want := []any{int32(7), float32(1.5), "hit", int32(2)}
	if len(msg.Arguments) != len(want) {
		t.Fatalf("Expected %d args, got %d", len(want), len(msg.Arguments))
	}
	for i, a := range want {
		if msg.Arguments[i] != a {
			t.Errorf("Arg %d: expected %v (%T), got %v (%T)", i, a, a, msg.Arguments[i], msg.Arguments[i])
		}
	}
}

func TestNewBundle(t *testing.T) {
	b := NewBundle(NewMessage("a"), NewMessage("b", 1))
	if len(b.Messages) != 2 || b.Messages[0].Address != "/a" || b.Messages[1].Address != "/b" {
		t.Fatalf("Unexpected bundle messages: %v", b.Messages)
	}
	if _, err := b.MarshalBinary(); err != nil {
		t.Errorf("Expected bundle to encode, got %v", err)
	}
}

func TestClientSend(t *testing.T) {
	server, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp unavailable: %v", err)
	}
	defer server.Close()
	port := server.LocalAddr().(*net.UDPAddr).Port

	c, err := Dial("127.0.0.1", port)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if !c.Send(NewMessage("score", 10)) {
		t.Fatalf("Expected send to succeed")
	}

	server.SetReadDeadline(time.Now().Add(time.Second))
	buf := make([]byte, 256)
	n, _, err := server.ReadFrom(buf)
	if err != nil {
		t.Fatal(err)
	}
	packet, err := goosc.ParsePacket(string(buf[:n]))
	if err != nil {
		t.Fatal(err)
	}
	msg, ok := packet.(*goosc.Message)
	if !ok || msg.Address != "/score" {
		t.Errorf("Expected /score, got %v", packet)
	}
}

func TestNilClientDropsPackets(t *testing.T) {
	var c *Client
	if c.Send(NewMessage("score", 1)) {
		t.Errorf("Expected nil client send to fail")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Expected nil close error, got %v", err)
	}
}

func TestAudioLinkBecomesReady(t *testing.T) {
	free, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp unavailable: %v", err)
	}
	port := free.LocalAddr().(*net.UDPAddr).Port
	free.Close()

	link, err := StartAudioLink("127.0.0.1", port, "", time.Minute)
	if err != nil {
		t.Skipf("listen failed: %v", err)
	}
	defer link.Close()

	c, err := Dial("127.0.0.1", port)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	c.Send(NewMessage(AddrLoaded))

	deadline := time.Now().Add(2 * time.Second)
	for !link.Ready() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if !link.Ready() || !link.Opened() {
		t.Errorf("Expected link ready and opened after %s", AddrLoaded)
	}
	if link.TimedOut() {
		t.Errorf("Expected no timeout")
	}
}

func TestDisabledLinkIsReady(t *testing.T) {
	l := NewDisabledLink()
	if !l.Ready() {
		t.Errorf("Expected disabled link to be ready")
	}
	if err := l.Close(); err != nil {
		t.Errorf("Expected nil close error, got %v", err)
	}
}
