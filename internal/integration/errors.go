package integration

import "errors"

var (
	ErrCalendarNotConnected = errors.New("google calendar is not connected")
	ErrSlackNotConnected    = errors.New("slack is not connected")
)
