//go:build !windows

package termio

import "golang.org/x/sys/unix"

// PendingInput reports whether a byte is already buffered on fd without
// blocking to read it. Nothing in this module calls it.
func PendingInput(fd uintptr) (bool, error) {
	pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(pollFds, 0)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	return pollFds[0].Revents&unix.POLLIN != 0, nil
}
