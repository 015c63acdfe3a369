//go:build !linux

package cpuaffinity

// Pin is only implemented on Linux; elsewhere any cpu other than Disabled fails.
func Pin(cpu int) (Release, error) {
	if cpu == Disabled {
		return noop, nil
	}
	return noop, ErrUnsupported
}

// Allowed is not available on this platform.
func Allowed() ([]int, error) {
	return nil, ErrUnsupported
}
