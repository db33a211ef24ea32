// Package client talks to the to-do item REST API on behalf of the UI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

const (
	itemsPath   = "/api/to-do-items"
	usersPath   = "/api/users"
	accountPath = "/api/account"

	totalCountHeader = "X-Total-Count"
	mergePatchType   = "application/merge-patch+json"
)

// ErrNoID is returned by Update and PartialUpdate for an item without id.
var ErrNoID = errors.New("client: item has no id")

// Client is the to-do item client service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from todoctl configuration.
func New(cfg config.ClientConfig, logger *slog.Logger) *Client {
	return NewWithHTTPClient(cfg.APIURL, cfg.Token, &http.Client{Timeout: cfg.Timeout}, logger)
}

// NewWithHTTPClient creates a Client with a custom transport (for testing).
func NewWithHTTPClient(baseURL, token string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
		log:        logger.With("adapter", "client"),
	}
}

// QueryOptions selects a page of items. Zero values are left to the server.
type QueryOptions struct {
	Page   int
	Size   int
	Sort   []domain.Order
	Status *domain.ItemStatus
	UserID *uuid.UUID
}

func (o QueryOptions) values() url.Values {
	v := url.Values{}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.Size > 0 {
		v.Set("size", strconv.Itoa(o.Size))
	}
	for _, s := range o.Sort {
		v.Add("sort", s.String())
	}
	if o.Status != nil {
		v.Set("status", string(*o.Status))
	}
	if o.UserID != nil {
		v.Set("userId", o.UserID.String())
	}
	return v
}

// Create posts a new item. The item must not carry an id.
func (c *Client) Create(ctx context.Context, item domain.ToDoItem) (*domain.ToDoItem, error) {
	var out itemResponse
	if _, err := c.do(ctx, http.MethodPost, itemsPath, "", toBody(item), &out); err != nil {
		return nil, err
	}
	created := out.toDomain()
	return &created, nil
}

// Update replaces the stored item with the given one.
func (c *Client) Update(ctx context.Context, item domain.ToDoItem) (*domain.ToDoItem, error) {
	id, ok := item.Identifier()
	if !ok {
		return nil, ErrNoID
	}
	var out itemResponse
	if _, err := c.do(ctx, http.MethodPut, itemPath(id), "", toBody(item), &out); err != nil {
		return nil, err
	}
	updated := out.toDomain()
	return &updated, nil
}

// PartialUpdate sends only the set fields of item. A nil description,
// empty status or missing owner leaves the stored value unchanged.
func (c *Client) PartialUpdate(ctx context.Context, item domain.ToDoItem) (*domain.ToDoItem, error) {
	id, ok := item.Identifier()
	if !ok {
		return nil, ErrNoID
	}
	var out itemResponse
	if _, err := c.do(ctx, http.MethodPatch, itemPath(id), mergePatchType, toPatch(item), &out); err != nil {
		return nil, err
	}
	updated := out.toDomain()
	return &updated, nil
}

// Find fetches one item. A missing item yields an *APIError matching
// domain.ErrNotFound.
func (c *Client) Find(ctx context.Context, id int64) (*domain.ToDoItem, error) {
	var out itemResponse
	if _, err := c.do(ctx, http.MethodGet, itemPath(id), "", nil, &out); err != nil {
		return nil, err
	}
	item := out.toDomain()
	return &item, nil
}

// Query fetches one page of items. Total comes from X-Total-Count.
func (c *Client) Query(ctx context.Context, opts QueryOptions) (domain.Page[domain.ToDoItem], error) {
	var out []itemResponse
	resp, err := c.do(ctx, http.MethodGet, withQuery(itemsPath, opts.values()), "", nil, &out)
	if err != nil {
		return domain.Page[domain.ToDoItem]{}, err
	}

	items := make([]domain.ToDoItem, len(out))
	for i, r := range out {
		items[i] = r.toDomain()
	}
	return domain.Page[domain.ToDoItem]{
		Content: items,
		Total:   totalCount(resp.Header, len(items)),
		Page:    opts.Page,
		Size:    opts.Size,
	}, nil
}

// Delete removes an item.
func (c *Client) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, itemPath(id), "", nil, nil)
	return err
}

// QueryUsers fetches one page of users, the owner options for the form.
func (c *Client) QueryUsers(ctx context.Context, page, size int) (domain.Page[domain.User], error) {
	opts := QueryOptions{Page: page, Size: size}
	var out []userResponse
	resp, err := c.do(ctx, http.MethodGet, withQuery(usersPath, opts.values()), "", nil, &out)
	if err != nil {
		return domain.Page[domain.User]{}, err
	}

	users := make([]domain.User, len(out))
	for i, r := range out {
		users[i] = r.toDomain()
	}
	return domain.Page[domain.User]{
		Content: users,
		Total:   totalCount(resp.Header, len(users)),
		Page:    page,
		Size:    size,
	}, nil
}

// Account returns the user the token was issued for.
func (c *Client) Account(ctx context.Context) (*domain.User, error) {
	var out userResponse
	if _, err := c.do(ctx, http.MethodGet, accountPath, "", nil, &out); err != nil {
		return nil, err
	}
	u := out.toDomain()
	return &u, nil
}

// do sends one request. A non-nil in is encoded as JSON; out, when non-nil,
// receives the decoded 2xx body.
func (c *Client) do(ctx context.Context, method, path, contentType string, in, out any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
		if contentType == "" {
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("client: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.DebugContext(ctx, "api request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeProblem(resp)
		c.log.DebugContext(ctx, "api error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("error_key", apiErr.ErrorKey),
		)
		return resp, apiErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("client: decode response: %w", err)
		}
	}
	return resp, nil
}

// decodeProblem builds an APIError from a problem body. Bodies that are not
// problem JSON still yield an APIError carrying the status.
func decodeProblem(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var p problemResponse
	if err := json.Unmarshal(raw, &p); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}
	apiErr.Title = p.Title
	apiErr.EntityName = p.EntityName
	apiErr.ErrorKey = p.ErrorKey
	apiErr.Message = p.Message
	for _, fe := range p.FieldErrors {
		apiErr.FieldErrors = append(apiErr.FieldErrors, domain.FieldError{Field: fe.Field, Message: fe.Message})
	}
	return apiErr
}

func totalCount(h http.Header, fallback int) int64 {
	if n, err := strconv.ParseInt(h.Get(totalCountHeader), 10, 64); err == nil {
		return n
	}
	return int64(fallback)
}

func itemPath(id int64) string {
	return itemsPath + "/" + strconv.FormatInt(id, 10)
}

func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}
