//go:build linux

package cpuaffinity

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestPinRestrictsAndRestores(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	allowed, err := Allowed()
	require.NoError(t, err)
	require.NotEmpty(t, allowed)

	release, err := Pin(allowed[0])
	require.NoError(t, err)

	var during unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &during))
	assert.Equal(t, 1, during.Count())
	assert.True(t, during.IsSet(allowed[0]))

	release()

	after, err := Allowed()
	require.NoError(t, err)
	assert.Equal(t, allowed, after)
}

func TestPinInvalidCPU(t *testing.T) {
	_, err := Pin(1 << 20)
	assert.ErrorIs(t, err, ErrInvalidCPU)

	_, err = Pin(-5)
	assert.ErrorIs(t, err, ErrInvalidCPU)
}

func TestPinDisabled(t *testing.T) {
	release, err := Pin(Disabled)
	require.NoError(t, err)
	release()
}
