package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"mindgarden-backend/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	// Built in the local zone so the Local() conversion is a no-op and
	// the expected string is deterministic.
	tm := time.Date(2026, 3, 9, 14, 5, 0, 0, time.Local)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("marshal DateTime: %v", err)
	}
	if got := string(b); got != `"2026-03-09 14:05:00"` {
		t.Errorf("DateTime = %s, want \"2026-03-09 14:05:00\"", got)
	}
}

func TestRespOmitsEmptyFields(t *testing.T) {
	b, err := json.Marshal(response.Resp{Message: response.MessageSuccess})
	if err != nil {
		t.Fatalf("marshal Resp: %v", err)
	}

	body := string(b)
	if strings.Contains(body, `"data"`) || strings.Contains(body, `"errors"`) {
		t.Errorf("empty fields should be omitted: %s", body)
	}
	if !strings.Contains(body, `"error_code":0`) {
		t.Errorf("error_code should always be present: %s", body)
	}
}
