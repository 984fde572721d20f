// Package osc connects the game to the audio application over Open Sound Control.
// Encoding and the listener come from go-osc; this package normalises stat
// names into addresses and keeps sends fire-and-forget.
package osc

import (
	"strings"
	"time"

	goosc "github.com/hypebeast/go-osc/osc"
)

type (
	Message = goosc.Message
	Bundle  = goosc.Bundle
	Packet  = goosc.Packet
)

// NewMessage builds a message, turning stat names like "player/health"
// into OSC addresses like "/player/health". Go ints and float64 are sent
// as int32 and float32, the types the audio patch reads.
func NewMessage(name string, args ...any) *Message {
	msg := goosc.NewMessage(Address(name))
	for _, a := range args {
		switch v := a.(type) {
		case int:
			msg.Append(int32(v))
		case int64:
			msg.Append(int32(v))
		case float64:
			msg.Append(float32(v))
		default:
			msg.Append(a)
		}
	}
	return msg
}

// NewBundle groups messages so they are delivered together.
func NewBundle(msgs ...*Message) *Bundle {
	b := goosc.NewBundle(time.Now())
	for _, m := range msgs {
		b.Append(m)
	}
	return b
}

// Address normalises a stat name into an OSC address.
func Address(name string) string {
	if strings.HasPrefix(name, "/") {
		return name
	}
	return "/" + name
}
