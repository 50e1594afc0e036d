//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

func isTerminal(uintptr) bool {
	return false
}
