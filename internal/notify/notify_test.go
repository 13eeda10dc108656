package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowAndExpire(t *testing.T) {
	n := New(20 * time.Millisecond)
	n.Show("saved", Success)

	msg := n.Current()
	require.NotNil(t, msg)
	assert.Equal(t, Message{Text: "saved", Kind: Success}, *msg)

	assert.Eventually(t, func() bool { return n.Current() == nil }, time.Second, 5*time.Millisecond)
}

func TestNewMessageCancelsPendingClear(t *testing.T) {
	n := New(60 * time.Millisecond)
	n.Show("first", Info)
	time.Sleep(40 * time.Millisecond)
	n.Show("second", Error)

	// the first message's timer would have fired by now
	time.Sleep(35 * time.Millisecond)
	msg := n.Current()
	require.NotNil(t, msg)
	assert.Equal(t, "second", msg.Text)

	assert.Eventually(t, func() bool { return n.Current() == nil }, time.Second, 5*time.Millisecond)
}

func TestDismiss(t *testing.T) {
	n := New(time.Hour)
	n.Show("x", Info)
	n.Dismiss()
	assert.Nil(t, n.Current())
}

func TestSubscribe(t *testing.T) {
	n := New(time.Hour)
	var got []Message
	n.Subscribe(func(m Message) { got = append(got, m) })

	n.Show("a", Success)
	n.Show("b", Error)

	assert.Equal(t, []Message{{"a", Success}, {"b", Error}}, got)
}

func TestDefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, New(0).timeout)
}
