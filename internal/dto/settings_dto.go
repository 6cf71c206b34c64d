package dto

type SettingsResponse struct {
	GeminiApiKey    string `json:"geminiApiKey,omitempty"`
	GeminiConnected bool   `json:"geminiConnected"`
}

// UpdateSettingsRequest is a partial update: nil fields keep the stored
// value.
type UpdateSettingsRequest struct {
	GeminiApiKey    *string `json:"geminiApiKey"`
	GeminiConnected *bool   `json:"geminiConnected"`
}

type TestConnectionResponse struct {
	GeminiConnected bool   `json:"geminiConnected"`
	Message         string `json:"message,omitempty"`
}
