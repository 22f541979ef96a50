package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// Config параметры клиента бэкенда
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RPS ограничение исходящих запросов в секунду, 0 - без ограничения
	RPS   float64
	Burst int
}

// Client клиент для работы с бэкендом салона
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	observer   Observer
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда.
// observer может быть nil.
func NewClient(cfg Config, log Logger, observer Observer) *Client {
	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:  limiter,
		observer: observer,
		log:      log,
	}
}

// call описание одного запроса к бэкенду
type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      interface{}
}

// do выполняет запрос и разбирает конверт ответа.
// Не-2xx ответ превращается в *APIError.
func (c *Client) do(ctx context.Context, cl call) (*envelope, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s: rate limiter: %v", ErrInternal, cl.operation, err)
		}
	}

	reqURL := c.baseURL + cl.path
	if len(cl.query) > 0 {
		reqURL += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: failed to marshal request: %v", ErrInternal, cl.operation, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to create request: %v", ErrInternal, cl.operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(cl.operation, "error", started)
		return nil, fmt.Errorf("%w: %s: failed to execute request: %v", ErrInternal, cl.operation, err)
	}
	defer resp.Body.Close()
	c.observe(cl.operation, strconv.Itoa(resp.StatusCode), started)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to read response: %v", ErrInvalidResponse, cl.operation, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	// Обработка статус-кодов
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = DefaultErrorMessage
		}
		return nil, &APIError{
			Operation:  cl.operation,
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, cl.operation, decodeErr)
	}

	return &env, nil
}

// decodeData разбирает поле data конверта
func decodeData(operation string, env *envelope, out interface{}) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: %s: empty data", ErrInvalidResponse, operation)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %s: failed to decode data: %v", ErrInvalidResponse, operation, err)
	}
	return nil
}

func (c *Client) observe(operation, status string, started time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveBackendCall(operation, status, time.Since(started))
}
