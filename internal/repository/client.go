package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client — подключение к API записи на занятия.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient проверяет базовый адрес API и создаёт клиент.
// Если httpClient == nil, используется клиент без таймаута: запрос ждёт ответа,
// пока его не отменит контекст или транспорт.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url: host is required")
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    httpClient,
	}, nil
}

// activitiesURL возвращает адрес коллекции занятий.
func (c *Client) activitiesURL() string {
	return c.baseURL + "/activities"
}

// signupURL возвращает адрес записи участника: имя занятия экранируется как сегмент пути,
// email — как параметр запроса.
func (c *Client) signupURL(activity, email string) string {
	q := url.Values{}
	q.Set("email", email)
	return c.activitiesURL() + "/" + url.PathEscape(activity) + "/signup?" + q.Encode()
}

// do выполняет запрос и читает тело ответа целиком.
func (c *Client) do(ctx context.Context, method, target string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, nil
}
