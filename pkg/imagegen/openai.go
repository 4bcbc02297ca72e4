package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

// OpenAIImageProvider calls the OpenAI images endpoint and returns decoded
// PNG bytes. Responses are requested as b64_json so no second fetch is needed.
type OpenAIImageProvider struct {
	APIKey    string
	BaseURL   string
	ModelName string
	Size      string
	Client    *http.Client
}

var _ ImageProvider = &OpenAIImageProvider{}

func NewOpenAIImageProvider(apiKey, modelName string) *OpenAIImageProvider {
	return &OpenAIImageProvider{
		APIKey:    apiKey,
		BaseURL:   defaultBaseURL,
		ModelName: modelName,
		Size:      "1024x1024",
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *OpenAIImageProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	reqPayload := imageRequest{
		Model:          p.ModelName,
		Prompt:         prompt,
		N:              1,
		Size:           p.Size,
		ResponseFormat: "b64_json",
	}

	payloadJson, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.BaseURL+"/images/generations", bytes.NewBuffer(payloadJson))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imagegen: status %d, body %s", res.StatusCode, string(resBody))
	}

	var parsed imageResponse
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return nil, err
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("imagegen: %s", parsed.Error.Message)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("imagegen: empty data in response")
	}

	raw, err := base64.StdEncoding.DecodeString(parsed.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("imagegen: decode b64 payload: %w", err)
	}
	return raw, nil
}
