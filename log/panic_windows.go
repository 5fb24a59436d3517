package log

import "os"

// stderr redirection is not available, panics keep going to the console
func handlePanicLoggingWithFile(logFile *os.File) {
	logFile.Close()
}
