package models

import (
	"fmt"
	"strings"
	"time"
)

// LogTimeLayout is the timestamp layout used for activity log lines.
const LogTimeLayout = "2006-01-02 15:04:05"

// LogEntry represents a single line of the activity log.
type LogEntry struct {
	Time    time.Time
	Message string
}

// FormatLogLine renders an entry the way it is stored on disk,
// without the trailing newline.
func FormatLogLine(t time.Time, message string) string {
	return fmt.Sprintf("%s: %s", t.Format(LogTimeLayout), message)
}

// ParseLogLine splits a stored log line back into an entry. Lines that do
// not carry the timestamp prefix are returned whole with a zero time, so
// viewers never drop content they fail to parse.
func ParseLogLine(line string) LogEntry {
	sep := len(LogTimeLayout)
	if len(line) > sep+1 && line[sep] == ':' && line[sep+1] == ' ' {
		if t, err := time.ParseInLocation(LogTimeLayout, line[:sep], time.Local); err == nil {
			return LogEntry{Time: t, Message: line[sep+2:]}
		}
	}
	return LogEntry{Message: strings.TrimRight(line, "\r\n")}
}
