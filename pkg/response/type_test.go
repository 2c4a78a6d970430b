package response_test

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/meeting-assistant-team/meeting-assistant/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	// Marshaling shifts to server-local time, so compute the expected
	// string the same way to keep the test timezone-independent.
	want := strconv.Quote(tm.Local().Format(response.DateFormat))
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	want := strconv.Quote(tm.Local().Format(response.DateTimeFormat))
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}

func TestNewDateNewDateTime(t *testing.T) {
	if response.NewDate(nil) != nil {
		t.Error("NewDate(nil) should stay nil")
	}
	if response.NewDateTime(nil) != nil {
		t.Error("NewDateTime(nil) should stay nil")
	}

	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	d := response.NewDate(&tm)
	if d == nil || !time.Time(*d).Equal(tm) {
		t.Errorf("NewDate lost the timestamp: %v", d)
	}

	dt := response.NewDateTime(&tm)
	if dt == nil || !time.Time(*dt).Equal(tm) {
		t.Errorf("NewDateTime lost the timestamp: %v", dt)
	}
}
