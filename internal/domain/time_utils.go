package domain

import (
	"strconv"
	"time"
)

const (
	DatetimeLayout     = "2006-01-02T15:04:05Z"
	OnlyDateTimeLayout = "2006-01-02 15:04:05"
	OnlyDate           = "2006-01-02"
)

// ReceivedAt formats a webhook receipt time for the request log
func ReceivedAt(t time.Time) string {
	return t.UTC().Format(OnlyDateTimeLayout)
}

// ParseUnixTimestamp converts the string unix seconds WhatsApp sends into a time.
// An unparsable value yields the zero time.
func ParseUnixTimestamp(ts string) time.Time {
	sec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil || sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
