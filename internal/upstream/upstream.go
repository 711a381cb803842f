package upstream

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

// Fetcher performs single-shot GETs against upstream providers. No retries
// and no timeout beyond the transport default: a hung upstream hangs the
// query that needed it.
type Fetcher struct {
	client *http.Client
	logger *logger.Logger
}

func NewFetcher(logger *logger.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{},
		logger: logger,
	}
}

// GetJSON issues one GET against url and decodes the JSON body into out.
// Failures are reported as *Error with the provider name attached.
func (f *Fetcher) GetJSON(provider, url string, out any) error {
	resp, err := f.client.Get(url)
	if err != nil {
		f.logger.Error("[GetJSON][client.Get]", map[string]string{
			"provider": provider,
			"url":      url,
			"error":    err.Error(),
		})
		return &Error{Provider: provider, Endpoint: url, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Error("[GetJSON] unexpected status", map[string]string{
			"provider":   provider,
			"url":        url,
			"statusCode": strconv.Itoa(resp.StatusCode),
		})
		return &Error{Provider: provider, Endpoint: url, Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Error("[GetJSON][io.ReadAll]", map[string]string{
			"provider": provider,
			"url":      url,
			"error":    err.Error(),
		})
		return &Error{Provider: provider, Endpoint: url, Kind: KindTransport, Err: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		f.logger.Error("[GetJSON][json.Unmarshal]", map[string]string{
			"provider": provider,
			"url":      url,
			"error":    err.Error(),
		})
		return &Error{Provider: provider, Endpoint: url, Kind: KindParse, Err: err}
	}

	return nil
}
