package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"ItemGate/internal/model"
)

// ErrUnauthorized — сервер отклонил логин/пароль.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError — сервер ответил неуспешным кодом.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Code)
	}
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// Health — ответ GET /health.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Client — HTTP-клиент API записей.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт клиент. Если hc nil, используется http.DefaultClient.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Login проверяет логин и пароль. 401 превращается в ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	err := c.do(ctx, http.MethodPost, "/login", payload, http.StatusOK, nil)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return err
}

// ListItems возвращает текущий список записей.
func (c *Client) ListItems(ctx context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if err := c.do(ctx, http.MethodGet, "/items", nil, http.StatusOK, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem добавляет запись.
func (c *Client) CreateItem(ctx context.Context, name string) (*model.Item, error) {
	var it model.Item
	if err := c.do(ctx, http.MethodPost, "/items", map[string]string{"name": name}, http.StatusCreated, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateItem переименовывает запись.
func (c *Client) UpdateItem(ctx context.Context, id int64, name string) (*model.Item, error) {
	var it model.Item
	if err := c.do(ctx, http.MethodPut, itemPath(id), map[string]string{"name": name}, http.StatusOK, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// DeleteItem удаляет запись.
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, itemPath(id), nil, http.StatusNoContent, nil)
}

// Health опрашивает /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, http.StatusOK, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func itemPath(id int64) string {
	return "/items/" + strconv.FormatInt(id, 10)
}

// do отправляет JSON-запрос и разбирает ответ в out, если код совпал с want.
func (c *Client) do(ctx context.Context, method, path string, payload any, want int, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != want {
		se := &StatusError{Code: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &msg) == nil {
			se.Message = msg.Message
		}
		return se
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
