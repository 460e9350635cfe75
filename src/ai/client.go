package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// HTTPAdapter issues a single POST per Generate call using its family's envelope.
type HTTPAdapter struct {
	provider Provider
	family   family
	client   *http.Client
	baseURL  string
}

func (a *HTTPAdapter) Provider() Provider {
	return a.provider
}

func (a *HTTPAdapter) Generate(ctx context.Context, prompt, credential, model string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if strings.TrimSpace(credential) == "" {
		return "", fmt.Errorf("%s: %w", a.provider, ErrMissingCredential)
	}

	reqBody, err := json.Marshal(a.family.payload(prompt, model))
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s request: %w", a.provider, err)
	}

	endpoint := a.family.endpoint(a.baseURL, model, credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", redactURL(err))
	}
	req.Header.Set("Content-Type", "application/json")
	a.family.authorize(req.Header, credential)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to %s: %w", a.provider, redactURL(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s response body: %w", a.provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamCallFailedError{
			Provider:   a.provider,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	text := gjson.GetBytes(respBody, a.family.textPath)
	if text.Type != gjson.String || text.Str == "" {
		return "", fmt.Errorf("%s: %w", a.provider, ErrEmptyResponse)
	}
	return text.Str, nil
}

func (a *HTTPAdapter) BaseURL() string {
	return a.baseURL
}

// Ping sends an unauthenticated GET to the base URL. Any HTTP status counts as reachable.
func (a *HTTPAdapter) Ping(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create http request: %w", err)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s unreachable: %w", a.provider, redactURL(err))
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// redactURL drops the request URL from transport errors; some families carry the key in it.
func redactURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
