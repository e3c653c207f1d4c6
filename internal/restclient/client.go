// Package restclient is the single HTTP client every backend service goes through.
package restclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	msgUnknown    = "Unknown error occurred"
	msgNoResponse = "No response from server"
)

// APIError - ошибка в форме {status, message}, единственная форма ошибки,
// которую видит состояние интерфейса
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("restclient: %s", e.Message)
	}
	return fmt.Sprintf("restclient: status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ToAPIError приводит любую ошибку к форме {status, message}
func ToAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Status: 0, Message: err.Error(), Err: err}
}

// IsNoResponse сообщает, что бэкенд не ответил вовсе
func IsNoResponse(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 0 && apiErr.Message == msgNoResponse
}

// Client - HTTP клиент бэкенда: базовый URL, bearer токен после входа,
// JSON тела и circuit breaker вокруг всех вызовов.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]byte]
	logger     *logrus.Logger

	headers map[string]string
	name    string

	mu    sync.RWMutex
	token string
}

// Option настраивает клиент
type Option func(*Client)

// WithHeader добавляет заголовок ко всем запросам
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithName задаёт имя circuit breaker (по умолчанию backend-api)
func WithName(name string) Option {
	return func(c *Client) {
		c.name = name
	}
}

// New создает клиент
func New(baseURL string, timeout time.Duration, logger *logrus.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("restclient: invalid base url %q: %w", baseURL, err)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		headers:    make(map[string]string),
		name:       "backend-api",
	}
	for _, opt := range opts {
		opt(c)
	}

	c.cb = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        c.name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		// 4xx - бэкенд доступен, это не повод открывать цепь
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.Status >= 400 && apiErr.Status < 500
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state transition")
		},
	})

	return c, nil
}

// SetToken задаёт bearer токен; пустая строка снимает заголовок
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token возвращает текущий токен
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do выполняет запрос. Любая ошибка возвращается как *APIError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	log := c.logger.WithFields(logrus.Fields{
		"component": c.name,
		"method":    method,
		"path":      path,
	})

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &APIError{Status: 0, Message: err.Error(), Err: err}
		}
	}

	respBody, err := c.cb.Execute(func() ([]byte, error) {
		return c.roundTrip(ctx, method, c.resolve(path, query), payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			log.WithError(err).Warn("Request rejected by circuit breaker")
			return &APIError{Status: 0, Message: msgNoResponse, Err: err}
		}
		log.WithError(err).Debug("Request failed")
		return err
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		log.WithError(err).Warn("Failed to decode response body")
		return &APIError{Status: 0, Message: "Invalid response format", Err: err}
	}
	return nil
}

func (c *Client) resolve(path string, query url.Values) string {
	u := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimLeft(path, "/")})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) roundTrip(ctx context.Context, method, target string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &APIError{Status: 0, Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Status: 0, Message: msgNoResponse, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Status: 0, Message: msgNoResponse, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

// errorMessage достаёт сообщение из тела ошибки: поле error, затем message
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return msgUnknown
}
