package http

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/metrics"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/prometheus/client_golang/prometheus"
)

// ---- Fake: AuthService ----

type fakeAuthSvc struct {
	signupFn  func(ctx context.Context, c models.Credentials) (models.User, error)
	loginFn   func(ctx context.Context, c models.Credentials) (models.User, models.Token, error)
	resolveFn func(ctx context.Context, credential string) models.Principal
	currentFn func(ctx context.Context, p models.Principal) (models.User, error)
}

func (f *fakeAuthSvc) Signup(ctx context.Context, c models.Credentials) (models.User, error) {
	if f.signupFn != nil {
		return f.signupFn(ctx, c)
	}
	return models.User{}, nil
}
func (f *fakeAuthSvc) Login(ctx context.Context, c models.Credentials) (models.User, models.Token, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, c)
	}
	return models.User{}, models.Token{}, nil
}
func (f *fakeAuthSvc) ResolveSession(ctx context.Context, credential string) models.Principal {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, credential)
	}
	return models.Anonymous()
}
func (f *fakeAuthSvc) CreateToken(context.Context, models.User) (models.Token, error) {
	return models.Token{}, nil
}
func (f *fakeAuthSvc) CurrentUser(ctx context.Context, p models.Principal) (models.User, error) {
	if f.currentFn != nil {
		return f.currentFn(ctx, p)
	}
	return models.User{}, nil
}

// ---- Fake: PostService ----

type fakePostSvc struct {
	listFn   func(ctx context.Context, p models.Principal, f models.PostFilter) (models.PostList, error)
	getFn    func(ctx context.Context, p models.Principal, id int64) (models.Post, error)
	createFn func(ctx context.Context, p models.Principal, f models.PostFields) (models.Post, error)
	updateFn func(ctx context.Context, p models.Principal, id int64, f models.PostFields) (models.Post, error)
	deleteFn func(ctx context.Context, p models.Principal, id int64) error
}

func (f *fakePostSvc) List(ctx context.Context, p models.Principal, filter models.PostFilter) (models.PostList, error) {
	if f.listFn != nil {
		return f.listFn(ctx, p, filter)
	}
	return models.PostList{Posts: []models.Post{}}, nil
}
func (f *fakePostSvc) Get(ctx context.Context, p models.Principal, id int64) (models.Post, error) {
	if f.getFn != nil {
		return f.getFn(ctx, p, id)
	}
	return models.Post{ID: id}, nil
}
func (f *fakePostSvc) Create(ctx context.Context, p models.Principal, fields models.PostFields) (models.Post, error) {
	if f.createFn != nil {
		return f.createFn(ctx, p, fields)
	}
	return models.Post{}, nil
}
func (f *fakePostSvc) Update(ctx context.Context, p models.Principal, id int64, fields models.PostFields) (models.Post, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, p, id, fields)
	}
	return models.Post{ID: id}, nil
}
func (f *fakePostSvc) Delete(ctx context.Context, p models.Principal, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, p, id)
	}
	return nil
}

// ---- Helpers ----

const testToken = "valid-token"

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenDuration:    config.DefaultTokenDuration,
			DefaultPageLimit: config.DefaultPageLimit,
			MaxPageLimit:     config.DefaultMaxPageLimit,
		},
	}
}

// tokenAuth resolves testToken to user 1 and everything else to anonymous.
func tokenAuth() *fakeAuthSvc {
	return &fakeAuthSvc{
		resolveFn: func(_ context.Context, credential string) models.Principal {
			if credential == testToken {
				return models.Authenticated(1)
			}
			return models.Anonymous()
		},
	}
}

func newTestHandler(auth service.AuthService, posts service.PostService) *Handler {
	if auth == nil {
		auth = tokenAuth()
	}
	if posts == nil {
		posts = &fakePostSvc{}
	}
	return NewHandler(
		&service.Services{AuthService: auth, PostService: posts},
		testConfig(),
		metrics.NewWithRegisterer(prometheus.NewRegistry()),
		logger.Nop(),
	)
}
