package rkyv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name      string
		preWrite  int
		align     int
		wantPos   int
		wantZeros int
	}{
		{name: "already aligned", preWrite: 8, align: 8, wantPos: 8, wantZeros: 0},
		{name: "needs one byte", preWrite: 7, align: 8, wantPos: 8, wantZeros: 1},
		{name: "needs padding across a 16-byte chunk", preWrite: 5, align: 32, wantPos: 32, wantZeros: 27},
		{name: "align 1 is always satisfied", preWrite: 13, align: 1, wantPos: 13, wantZeros: 0},
		{name: "position 5 aligned to 8", preWrite: 5, align: 8, wantPos: 8, wantZeros: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 64)
			for i := range buf {
				buf[i] = 0xFF // so leftover padding would be visibly wrong if not zeroed
			}
			sink := NewBufferSink(buf)
			require.NoError(t, sink.Write(make([]byte, tt.preWrite)))

			pos, err := Align(sink, tt.align)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantPos, sink.Pos())

			for i := tt.preWrite; i < tt.wantPos; i++ {
				assert.Equalf(t, byte(0), buf[i], "byte %d should be zero padding", i)
			}
		})
	}
}

func TestAlign_Idempotent(t *testing.T) {
	sink := NewBufferSink(make([]byte, 32))
	require.NoError(t, sink.Write(make([]byte, 16)))

	pos1, err := Align(sink, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, pos1)

	pos2, err := Align(sink, 16)
	require.NoError(t, err)
	assert.Equal(t, pos1, pos2)
	assert.Equal(t, 0, sink.Pos()-pos1) // no extra bytes were written
}

func TestAlign_NonPowerOfTwoPanics(t *testing.T) {
	sink := NewBufferSink(make([]byte, 16))
	assert.Panics(t, func() {
		_, _ = Align(sink, 3)
	})
}

func TestAlign_PropagatesWriteFailure(t *testing.T) {
	sink := NewBufferSink(make([]byte, 4))
	require.NoError(t, sink.Write(make([]byte, 1)))

	_, err := Align(sink, 16)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBufferOverflow)
}

func TestAlignFor(t *testing.T) {
	sink := NewBufferSink(make([]byte, 32))
	require.NoError(t, sink.Write(make([]byte, 3)))

	pos, err := AlignFor[int64](sink)
	require.NoError(t, err)
	assert.Equal(t, 8, pos)
}
