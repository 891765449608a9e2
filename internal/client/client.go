// Package client is a typed Go client for the todo HTTP API.
package client

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

	"github.com/dreamware/todo/internal/todo"
)

// APIError is returned for every non-2xx response
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to a todo server at BaseURL
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the server at baseURL
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Health calls GET / and returns the status string
func (c *Client) Health(ctx context.Context) (string, error) {
	var status string
	err := c.doJSON(ctx, http.MethodGet, "/", nil, &status)
	return status, err
}

// List returns all todos
func (c *Client) List(ctx context.Context) ([]todo.Todo, error) {
	var todos []todo.Todo
	if err := c.doJSON(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Create adds a todo with the given title
func (c *Client) Create(ctx context.Context, title string) (todo.Todo, error) {
	var created todo.Todo
	err := c.doJSON(ctx, http.MethodPost, "/todos", todo.Input{Title: title}, &created)
	return created, err
}

// Get fetches a single todo
func (c *Client) Get(ctx context.Context, id todo.ID) (todo.Todo, error) {
	var found todo.Todo
	err := c.doJSON(ctx, http.MethodGet, "/todos/"+id.String(), nil, &found)
	return found, err
}

// Update replaces the title of a todo
func (c *Client) Update(ctx context.Context, id todo.ID, title string) (todo.Todo, error) {
	var updated todo.Todo
	err := c.doJSON(ctx, http.MethodPut, "/todos/"+id.String(), todo.Input{Title: title}, &updated)
	return updated, err
}

// Delete removes a todo and returns it
func (c *Client) Delete(ctx context.Context, id todo.ID) (todo.Todo, error) {
	var deleted todo.Todo
	err := c.doJSON(ctx, http.MethodDelete, "/todos/"+id.String(), nil, &deleted)
	return deleted, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Best effort; non-JSON error bodies leave Code empty
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
