package speech_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mindgarden-backend/pkg/speech"
)

func TestSpeechClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token test-speech-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch {
		case strings.Contains(req.URL, "cause_500"):
			w.WriteHeader(http.StatusInternalServerError)
			return
		case strings.Contains(req.URL, "silence"):
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"results": {"channels": []}}`))
			return
		}

		// Success flow
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"results": {
				"channels": [
					{
						"alternatives": [
							{"transcript": "um I need to call the doctor tomorrow", "confidence": 0.97}
						]
					}
				]
			}
		}`))
	}))
	defer ts.Close()

	client, _ := speech.New("test-speech-key")
	client.WithBaseURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		res, err := client.Transcribe(context.Background(), speech.TranscribeRequest{
			AudioURL: "https://storage.example.com/note.m4a",
			Language: "en-US",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Text != "um I need to call the doctor tomorrow" {
			t.Errorf("unexpected transcript: %q", res.Text)
		}
		if res.Confidence != 0.97 {
			t.Errorf("unexpected confidence: %v", res.Confidence)
		}
	})

	t.Run("Silent Audio Flow", func(t *testing.T) {
		res, err := client.Transcribe(context.Background(), speech.TranscribeRequest{
			AudioURL: "https://storage.example.com/silence.m4a",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Text != "" {
			t.Errorf("expected empty transcript, got %q", res.Text)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Transcribe(context.Background(), speech.TranscribeRequest{
			AudioURL: "https://storage.example.com/cause_500.m4a",
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := speech.New("bad-key")
		badClient.WithBaseURL(ts.URL)
		_, err := badClient.Transcribe(context.Background(), speech.TranscribeRequest{
			AudioURL: "https://storage.example.com/note.m4a",
		})
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})

	t.Run("Missing URL", func(t *testing.T) {
		if _, err := client.Transcribe(context.Background(), speech.TranscribeRequest{}); err == nil {
			t.Fatalf("expected error for empty audio URL")
		}
	})
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := speech.New(""); err == nil {
		t.Fatalf("expected error for empty API key")
	}
}
