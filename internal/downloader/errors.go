package downloader

import "fmt"

// Phase identifies where in the transfer a failure occurred.
type Phase string

const (
	// PhaseConnect covers DNS, TCP/TLS handshake and connection-refused
	// failures before any response is received.
	PhaseConnect Phase = "connect"
	// PhaseTransfer covers stream interruption after the connection was
	// established.
	PhaseTransfer Phase = "transfer"
	// PhaseFile covers save-file creation and write failures.
	PhaseFile Phase = "file"
)

// Error tags a transport or filesystem failure with the phase it occurred
// in. Non-2xx HTTP statuses are not errors at this layer; they are carried
// in the Result's status code.
type Error struct {
	Phase Phase
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Phase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
