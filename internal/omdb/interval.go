package omdb

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the timestamp layout used by the service.
const DateTimeLayout = "2006-01-02 15:04:05.000"

var dateTimeLayouts = []string{
	DateTimeLayout,
	time.DateTime,
	time.RFC3339Nano,
}

// DtStr formats t in the service timestamp layout.
func DtStr(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDateTime parses a service timestamp.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToIntervalStr returns the elapsed time between two timestamps as HH:MM:SS,
// prefixed with "Nd " when it is one day or longer. It returns "" if either
// timestamp is empty or cannot be parsed.
func ToIntervalStr(start, stop string) string {
	t0, ok := ParseDateTime(start)
	if !ok {
		return ""
	}
	t1, ok := ParseDateTime(stop)
	if !ok {
		return ""
	}
	secs := int64(t1.Sub(t0) / time.Second)
	if secs < 0 {
		secs = -secs
	}

	days := secs / 86400
	secs %= 86400
	hms := fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
	if days > 0 {
		return fmt.Sprintf("%dd %s", days, hms)
	}
	return hms
}
