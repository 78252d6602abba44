package ansiscan

const version = "0.2.0"

const (
	// Reader
	readerBufferSize = 64 * 1024

	// Control bytes the scanner hunts for
	byteBEL  = 0x07 // terminates OSC the xterm way
	byteESC  = 0x1b
	byteST   = '\\' // second byte of a two-byte string terminator
	byteCSI8 = 0x9b // single-byte CSI introducer from the C1 set
)

// Exit codes, in the manner of grep: success means something was found.
const (
	ExitOk      = 0
	ExitNoMatch = 1
	ExitError   = 2
)
