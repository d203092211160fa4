package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ErniyazCode/kazproperty/pkg/logger"
)

const (
	defaultAPIURL  = "https://api.pinata.cloud"
	defaultGateway = "https://gateway.pinata.cloud/ipfs"
)

// Client uploads opaque blobs to a content-addressed pinning gateway and
// returns a retrieval URL per blob.
type Client struct {
	apiURL     string
	gatewayURL string
	jwt        string
	httpClient *http.Client
}

func New(jwt string) *Client {
	return &Client{
		apiURL:     defaultAPIURL,
		gatewayURL: defaultGateway,
		jwt:        jwt,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// NewWithURLs overrides the API and gateway endpoints. Used for self-hosted
// gateways and in tests.
func NewWithURLs(jwt, apiURL, gatewayURL string) *Client {
	c := New(jwt)
	c.apiURL = strings.TrimRight(apiURL, "/")
	c.gatewayURL = strings.TrimRight(gatewayURL, "/")
	return c
}

// PinResult describes one pinned blob.
type PinResult struct {
	IpfsHash string `json:"ipfsHash"`
	URL      string `json:"url"`
}

// FileResult is one entry of a batch upload. Failures are per-file; one
// failed upload does not cancel the others.
type FileResult struct {
	Name   string     `json:"name"`
	Result *PinResult `json:"result,omitempty"`
	Err    error      `json:"-"`
}

type pinataResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// UploadFile pins a single blob and returns its content hash and retrieval
// URL.
func (c *Client) UploadFile(ctx context.Context, name string, content io.Reader) (*PinResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("pinning: failed to build form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("pinning: failed to read file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("pinning: failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/pinning/pinFileToIPFS", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.jwt)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.doPin(req)
}

// UploadJSON pins a JSON document.
func (c *Client) UploadJSON(ctx context.Context, data interface{}) (*PinResult, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("pinning: failed to encode JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/pinning/pinJSONToIPFS", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.jwt)
	req.Header.Set("Content-Type", "application/json")

	return c.doPin(req)
}

// File is one input of a batch upload.
type File struct {
	Name    string
	Content io.Reader
}

// UploadFiles pins the files concurrently. Uploads are independent: the
// aggregate result reports per-file success or failure and preserves input
// order.
func (c *Client) UploadFiles(ctx context.Context, files []File) []FileResult {
	results := make([]FileResult, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file File) {
			defer wg.Done()
			result, err := c.UploadFile(ctx, file.Name, file.Content)
			results[i] = FileResult{Name: file.Name, Result: result, Err: err}
			if err != nil {
				logger.Warn("Pinning upload failed: file=%s error=%v", file.Name, err)
			}
		}(i, file)
	}
	wg.Wait()

	return results
}

func (c *Client) doPin(req *http.Request) (*PinResult, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pinning: upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pinning: upload returned status %d: %s", resp.StatusCode, string(body))
	}

	var pinned pinataResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		return nil, fmt.Errorf("pinning: failed to decode response: %w", err)
	}

	return &PinResult{
		IpfsHash: pinned.IpfsHash,
		URL:      c.gatewayURL + "/" + pinned.IpfsHash,
	}, nil
}
