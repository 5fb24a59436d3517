//go:build !windows

package log

import (
	"os"

	"golang.org/x/sys/unix"
)

func handlePanicLoggingWithFile(logFile *os.File) {
	unix.Dup2(int(logFile.Fd()), unix.Stderr)
}
