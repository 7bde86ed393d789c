package logger

import (
	"os"
	"strconv"
	"strings"
)

// MakeString - joins log fragments with the given delimiter
func MakeString(delimiter string, message ...string) string {
	return strings.Join(message, delimiter)
}

func getVerbose() int32 {
	level, err := strconv.Atoi(os.Getenv("VERBOSITY"))
	if err != nil || level < 0 {
		level = 0
	}
	if level > 3 {
		level = 3
	}
	return int32(level)
}
