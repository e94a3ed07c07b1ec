//go:build !windows
// +build !windows

package terminal

import "golang.org/x/sys/unix"

type termState struct {
	termios unix.Termios
}

// makeRaw captures the current termios settings for fd and applies the
// editor's raw mode on top of them.
func makeRaw(fd int) (*termState, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}

	raw := *orig

	// Input modes: no break, no CR to NL, no parity check, no strip char,
	// no start/stop output control.
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON

	// Control modes: set 8 bit chars.
	raw.Cflag |= unix.CS8

	// Local modes: echo off, canonical off, no extended functions, no
	// signal chars (^Z, ^C).
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	// Return each byte as soon as it is available, without timeout.
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}

	return &termState{termios: *orig}, nil
}

// restore reapplies the settings captured by makeRaw.
func restore(fd int, st *termState) error {
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, &st.termios)
}
