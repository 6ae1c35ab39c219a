package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

// ── list ──

func TestListPosts_QueryParsing(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFilter models.PostFilter
		wantStatus int
	}{
		{name: "defaults", query: "", wantFilter: models.PostFilter{Page: 1, Limit: 10}, wantStatus: http.StatusOK},
		{
			name:       "all filters",
			query:      "?page=2&limit=5&category=go&search=hello+world&author=7",
			wantFilter: models.PostFilter{Page: 2, Limit: 5, Category: "go", Search: "hello world", AuthorID: 7},
			wantStatus: http.StatusOK,
		},
		{name: "zero limit reaches service", query: "?limit=0", wantFilter: models.PostFilter{Page: 1, Limit: 0}, wantStatus: http.StatusOK},
		{name: "non-numeric page", query: "?page=two", wantStatus: http.StatusBadRequest},
		{name: "non-numeric limit", query: "?limit=ten", wantStatus: http.StatusBadRequest},
		{name: "bad author", query: "?author=abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.PostFilter
			posts := &fakePostSvc{
				listFn: func(_ context.Context, _ models.Principal, f models.PostFilter) (models.PostList, error) {
					got = f
					return models.PostList{Posts: []models.Post{}}, nil
				},
			}

			rec := serve(newTestHandler(nil, posts), httptest.NewRequest(http.MethodGet, "/blogs"+tt.query, nil))
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantFilter, got)
			} else {
				assert.Equal(t, app.ReasonValidationError, decodeError(t, rec).Error)
			}
		})
	}
}

func TestListPosts_Response(t *testing.T) {
	posts := &fakePostSvc{
		listFn: func(context.Context, models.Principal, models.PostFilter) (models.PostList, error) {
			return models.PostList{Posts: []models.Post{{ID: 1, Tags: models.Tags{}}}, Total: 21}, nil
		},
	}

	rec := serve(newTestHandler(nil, posts), httptest.NewRequest(http.MethodGet, "/blogs?page=3&limit=10", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PostListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Posts, 1)
	assert.Equal(t, models.Pagination{Total: 21, Page: 3, Pages: 3}, resp.Pagination)
}

func TestListPosts_ServiceErrors(t *testing.T) {
	posts := &fakePostSvc{
		listFn: func(context.Context, models.Principal, models.PostFilter) (models.PostList, error) {
			return models.PostList{}, store.ErrStoreTimeout
		},
	}

	rec := serve(newTestHandler(nil, posts), httptest.NewRequest(http.MethodGet, "/blogs", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal_error"}`, rec.Body.String())
}

// ── single post ──

func TestGetPost(t *testing.T) {
	var gotPrincipal models.Principal
	posts := &fakePostSvc{
		getFn: func(_ context.Context, p models.Principal, id int64) (models.Post, error) {
			gotPrincipal = p
			if id == 404 {
				return models.Post{}, service.ErrNotFound
			}
			return models.Post{ID: id, Author: models.Author{ID: 2, Name: "Bo"}}, nil
		},
	}
	h := newTestHandler(nil, posts)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/blogs/5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotPrincipal.IsAnonymous())

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "Bo", post.Author.Name)

	rec = serve(h, authorized(httptest.NewRequest(http.MethodGet, "/blogs/5", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotPrincipal.Is(1))

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/blogs/404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.ReasonNotFound, decodeError(t, rec).Error)

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		rec = serve(h, httptest.NewRequest(http.MethodGet, "/blogs/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}

// ── mutations ──

func TestCreatePost(t *testing.T) {
	posts := &fakePostSvc{
		createFn: func(_ context.Context, p models.Principal, f models.PostFields) (models.Post, error) {
			assert.True(t, p.Is(1))
			return models.Post{ID: 9, Title: f.Title, Status: models.StatusDraft}, nil
		},
	}
	h := newTestHandler(nil, posts)
	body := `{"title":"T","content":"C","excerpt":"E","category":"go","tags":["a"]}`

	rec := serve(h, jsonRequest(http.MethodPost, "/blogs", body))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(h, authorized(jsonRequest(http.MethodPost, "/blogs", body)))
	require.Equal(t, http.StatusCreated, rec.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, int64(9), post.ID)

	rec = serve(h, authorized(jsonRequest(http.MethodPost, "/blogs", `{"title":`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePost_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "forbidden", err: service.ErrForbidden, wantStatus: http.StatusForbidden, wantReason: app.ReasonForbidden},
		{name: "not found", err: service.ErrNotFound, wantStatus: http.StatusNotFound, wantReason: app.ReasonNotFound},
		{name: "validation", err: service.NewValidationError(errors.New("title is required")), wantStatus: http.StatusBadRequest, wantReason: app.ReasonValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := &fakePostSvc{
				updateFn: func(_ context.Context, _ models.Principal, id int64, _ models.PostFields) (models.Post, error) {
					assert.Equal(t, int64(3), id)
					return models.Post{ID: id}, tt.err
				},
			}

			rec := serve(newTestHandler(nil, posts), authorized(jsonRequest(http.MethodPut, "/blogs/3", `{"title":"x"}`)))
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, decodeError(t, rec).Error)
			}
		})
	}
}

func TestDeletePost(t *testing.T) {
	deleted := int64(0)
	posts := &fakePostSvc{
		deleteFn: func(_ context.Context, p models.Principal, id int64) error {
			deleted = id
			return nil
		},
	}
	h := newTestHandler(nil, posts)

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/blogs/4", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, deleted)

	rec = serve(h, authorized(httptest.NewRequest(http.MethodDelete, "/blogs/4", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"`+app.MsgPostDeleted+`"}`, rec.Body.String())
	assert.Equal(t, int64(4), deleted)
}
