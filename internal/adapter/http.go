package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

// HTTPClientConfig configures [NewHTTPBlogClient].
type HTTPClientConfig struct {
	// BaseURL is the server address. A missing scheme defaults to http.
	BaseURL string

	// Timeout bounds every request. Zero selects 15s.
	Timeout time.Duration
}

type httpBlogClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogClient constructs an HTTP/REST implementation of [BlogClient].
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPBlogClient(cfg HTTPClientConfig, logger *logger.Logger) (BlogClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid blog api address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpBlogClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBlogClient) Signup(ctx context.Context, credentials models.Credentials) (models.UserProfile, error) {
	var result models.SignupResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&result).
		Post("/auth/signup")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return result.User, nil
}

// Login stores the token from the response body. The session cookie set by
// the server is ignored; the client always authenticates with a bearer
// token.
func (h *httpBlogClient) Login(ctx context.Context, credentials models.Credentials) (models.UserProfile, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}
	if result.Token == "" {
		return models.UserProfile{}, fmt.Errorf("login: server returned no token")
	}

	h.SetToken(result.Token)
	h.logger.Debug().Int64("user_id", result.User.ID).Msg("logged in")
	return result.User, nil
}

func (h *httpBlogClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpBlogClient) Me(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/auth/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

func (h *httpBlogClient) ListPosts(ctx context.Context, query ListQuery) (models.PostListResponse, error) {
	var list models.PostListResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParams(query.params()).
		SetResult(&list).
		Get("/blogs")
	if err != nil {
		return models.PostListResponse{}, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostListResponse{}, err
	}

	return list, nil
}

func (h *httpBlogClient) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetResult(&post).
		Get("/blogs/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogClient) CreatePost(ctx context.Context, fields models.PostFields) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		SetResult(&post).
		Post("/blogs")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogClient) UpdatePost(ctx context.Context, postID int64, fields models.PostFields) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		SetResult(&post).
		Put("/blogs/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogClient) DeletePost(ctx context.Context, postID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		Delete("/blogs/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlogClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (q ListQuery) params() map[string]string {
	params := make(map[string]string)
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.Limit > 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}
	if q.Category != "" {
		params["category"] = q.Category
	}
	if q.AuthorID > 0 {
		params["author"] = strconv.FormatInt(q.AuthorID, 10)
	}
	if q.Search != "" {
		params["search"] = q.Search
	}
	return params
}
