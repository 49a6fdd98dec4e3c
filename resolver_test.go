package rkyv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfResolver_ReturnsCopy(t *testing.T) {
	var r SelfResolver[int32]
	value := int32(0x11223344)

	archived, err := r.Resolve(999, &value)
	require.NoError(t, err)
	assert.Equal(t, value, archived)
}

func TestOffsetResolver_ResolvesToRelPtr(t *testing.T) {
	r := OffsetResolver[int32, uint64](10)
	var dummy int32

	ptr, err := r.Resolve(20, &dummy)
	require.NoError(t, err)
	assert.Equal(t, int32(-10), ptr.Offset())
}

func TestOffsetResolver_PropagatesOverflow(t *testing.T) {
	r := OffsetResolver[int32, uint64](-1)
	var dummy int32

	_, err := r.Resolve(0, &dummy)
	require.Error(t, err)
}
