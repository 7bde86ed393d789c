package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimeFormat - total time format
const TimeFormat = "2006-01-02 15:04:05"

var program string

func init() {
	fullpath, err := os.Executable()
	if err != nil {
		fullpath = ""
	}
	program = filepath.Base(fullpath)
}

// Log - prints a log line when its verbosity is within the configured level
func Log(verbosity int, message ...string) {
	currentMessage := MakeString(" ", message...)
	if int32(verbosity) <= getVerbose() && getVerbose() >= 0 {
		fmt.Printf("[%s] %s %s \n", program, time.Now().Format(TimeFormat), currentMessage)
	}
}

// FatalLog - prints a log and exits
func FatalLog(message ...string) {
	fmt.Printf("[%s] %s Fatal: %s \n", program, time.Now().Format(TimeFormat), MakeString(" ", message...))
	os.Exit(2)
}
