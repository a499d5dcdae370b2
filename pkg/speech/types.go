package speech

import "net/http"

// Client is the Deepgram speech-to-text API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// TranscribeRequest identifies a hosted audio recording to transcribe.
type TranscribeRequest struct {
	AudioURL string // publicly reachable or pre-signed URL
	Language string // BCP-47 tag, e.g. "en-US"; empty lets the provider detect
}

// TranscribeResult is the flattened transcription of a recording.
type TranscribeResult struct {
	Text       string  // best-alternative transcript, may be empty for silent audio
	Confidence float64 // provider confidence in [0, 1]
}

// transcribeBody is the request body for the prerecorded-audio endpoint.
type transcribeBody struct {
	URL string `json:"url"`
}

// transcribeResponse mirrors the provider's nested response shape.
type transcribeResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}
