package common

import (
	"fmt"
	"time"
)

// DefaultTimestampSep is the separator used for install log filenames.
const DefaultTimestampSep = "_"

// Timestamp formats t as YYYY<sep>MM<sep>DD<sep>hh<sep>mm<sep>ss with
// zero-padded fields, safe for use in filenames.
func Timestamp(t time.Time, sep string) string {
	return fmt.Sprintf("%04d%s%02d%s%02d%s%02d%s%02d%s%02d",
		t.Year(), sep, int(t.Month()), sep, t.Day(), sep,
		t.Hour(), sep, t.Minute(), sep, t.Second())
}

// TimestampNow formats the current time with the given separator.
func TimestampNow(sep string) string {
	return Timestamp(time.Now(), sep)
}
