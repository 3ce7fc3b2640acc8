package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evpump/evpump/event"
)

func TestRecordHeaderLayout(t *testing.T) {
	var rec event.Record
	rec.SetType(0x12345678)
	rec.SetTimestamp(0x1122334455667788)

	// Little-endian tag at offset 0, timestamp at offset 8.
	require.Equal(t, byte(0x78), rec[0])
	require.Equal(t, byte(0x56), rec[1])
	require.Equal(t, byte(0x34), rec[2])
	require.Equal(t, byte(0x12), rec[3])
	require.Equal(t, byte(0x88), rec[8])
	require.Equal(t, byte(0x11), rec[15])

	require.Equal(t, event.Type(0x12345678), rec.Type())
	require.Equal(t, uint64(0x1122334455667788), rec.Timestamp())
	require.Equal(t, 128, event.RecordSize)
}

func TestInlineStringTruncation(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a' + byte(i%26)
	}
	in := event.TextInput{
		Common: event.Common{Timestamp: 1},
		Text:   string(long),
	}
	out := event.Decode(event.Encode(in)).(event.TextInput)
	require.Len(t, out.Text, event.TextCapacity)
	require.Equal(t, string(long[:event.TextCapacity]), out.Text)
}

func TestRegisterEvents(t *testing.T) {
	first := event.RegisterEvents(2)
	require.NotZero(t, first)
	require.GreaterOrEqual(t, first, event.TypeUser)

	second := event.RegisterEvents(1)
	require.Equal(t, first+2, second)

	require.Zero(t, event.RegisterEvents(0))
	// A request larger than the remaining range reports exhaustion.
	require.Zero(t, event.RegisterEvents(1<<20))
}
