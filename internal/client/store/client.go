package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
)

// ErrNotFound reports a 404 from the store. Callers use it to tell "record
// missing" apart from "store unreachable".
var ErrNotFound = errors.New("store: not found")

// The store gets a short timeout so an unreachable server triggers fallback
// quickly instead of hanging the caller.
const requestTimeout = 3 * time.Second

// Client is a thin REST wrapper over the off-chain store: one method per
// (entity, verb) pair, JSON in and out.
type Client struct {
	baseURL    string
	httpClient *http.Client
	adminToken string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// SetAdminToken attaches the session token issued by AdminLogin to
// subsequent admin-gated requests.
func (c *Client) SetAdminToken(token string) {
	c.adminToken = token
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("store: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("store: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.adminToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("store: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("store: failed to decode response: %w", err)
	}
	if !env.Success {
		if env.Error != nil {
			return fmt.Errorf("store: %s: %s", env.Error.Code, env.Error.Message)
		}
		return fmt.Errorf("store: request failed with status %d", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("store: failed to decode data: %w", err)
		}
	}
	return nil
}

// NewProperty is the creation payload; the store assigns the id.
type NewProperty struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Price        float64  `json:"price"`
	RoomCount    int      `json:"roomCount"`
	SquareMeters int      `json:"squareMeters"`
	Images       []string `json:"images"`
	Documents    string   `json:"documents,omitempty"`
	Owner        string   `json:"owner"`
	LedgerID     *int64   `json:"ledgerId,omitempty"`
}

type AdminSession struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Admin     entity.Admin `json:"admin"`
}

func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("store: health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("store: health check returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) ListProperties(ctx context.Context) ([]entity.Property, error) {
	var properties []entity.Property
	if err := c.do(ctx, http.MethodGet, "/properties", nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (c *Client) GetProperty(ctx context.Context, id int64) (*entity.Property, error) {
	var property entity.Property
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/properties/%d", id), nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) CreateProperty(ctx context.Context, input NewProperty) (*entity.Property, error) {
	var property entity.Property
	if err := c.do(ctx, http.MethodPost, "/properties", input, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) ApproveProperty(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/properties/%d/approve", id), nil, nil)
}

func (c *Client) SellProperty(ctx context.Context, id int64, buyer, transactionHash string) (*entity.Transaction, error) {
	body := map[string]string{
		"buyer":           buyer,
		"transactionHash": transactionHash,
	}
	var transaction entity.Transaction
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/properties/%d/sell", id), body, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) PropertyTransactions(ctx context.Context, id int64) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/properties/%d/transactions", id), nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, address string) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/users/"+address, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, address, name string) (*entity.User, error) {
	body := map[string]string{
		"address": address,
		"name":    name,
	}
	var user entity.User
	if err := c.do(ctx, http.MethodPost, "/users", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateKYC(ctx context.Context, address, kycDocument string) (*entity.User, error) {
	body := map[string]string{
		"kycDocument": kycDocument,
	}
	var user entity.User
	if err := c.do(ctx, http.MethodPut, "/users/"+address+"/kyc", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) VerifyUser(ctx context.Context, address string) error {
	return c.do(ctx, http.MethodPut, "/users/"+address+"/verify", nil, nil)
}

func (c *Client) SignECP(ctx context.Context, address string) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodPut, "/users/"+address+"/ecp", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) AdminLogin(ctx context.Context, username, password string) (*AdminSession, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var session AdminSession
	if err := c.do(ctx, http.MethodPost, "/admin/login", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
