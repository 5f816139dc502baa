package source

import (
	"errors"
	"syscall"
)

// IsTransient reports whether err is a descriptor-exhaustion condition
// worth retrying (EMFILE/ENFILE). Every other read failure — not found,
// permission denied, is-a-directory — is permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EMFILE) || errors.Is(err, syscall.ENFILE)
}
