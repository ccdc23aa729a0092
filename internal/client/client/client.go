// Package client implements the HTTP API client used by the terminal
// frontend. It keeps the bearer token obtained at login and attaches it to
// every protected request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/avasquez/taskkeeper/internal/common"
)

// Task mirrors the task records returned by the server.
type Task struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	OwnerID int64  `json:"ownerId"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type serverMessage struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// IsAuthenticated reports whether a login token is held.
func (c *Client) IsAuthenticated() bool {
	return c.token != ""
}

// Logout drops the stored token.
func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var msg serverMessage
		if err := json.Unmarshal(raw, &msg); err == nil && msg.Message != "" {
			return fmt.Errorf("server: %s", msg.Message)
		}
		return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.doRequest(ctx, http.MethodPost, "/register", credentials{Username: username, Password: password}, nil)
}

// Login authenticates and stores the session token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var out loginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/login", credentials{Username: username, Password: password}, &out); err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

// Tasks lists the authenticated user's tasks.
func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := c.doRequest(ctx, http.MethodGet, "/todos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddTask creates a task and returns the created record.
func (c *Client) AddTask(ctx context.Context, text string) (*Task, error) {
	var out Task
	body := struct {
		Text string `json:"text"`
	}{Text: text}
	if err := c.doRequest(ctx, http.MethodPost, "/todos", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes one of the authenticated user's tasks.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, nil)
}
