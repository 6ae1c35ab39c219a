package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := h.postFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.PostService.List(r.Context(), utils.GetPrincipalFromContext(r.Context()), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PostListResponse{
		Posts: list.Posts,
		Pagination: models.Pagination{
			Total: list.Total,
			Page:  filter.Page,
			Pages: list.Pages(filter.Limit),
		},
	}, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Get(r.Context(), utils.GetPrincipalFromContext(r.Context()), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var fields models.PostFields
	if err := decodeJSON(w, r, &fields); err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("Invalid JSON was passed")
		writeError(w, r, service.NewValidationError(errInvalidJSON))
		return
	}

	post, err := h.services.PostService.Create(r.Context(), utils.GetPrincipalFromContext(r.Context()), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("post_id", post.ID).Msg("post created")
	_, _ = utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	postID, err := postIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var fields models.PostFields
	if err = decodeJSON(w, r, &fields); err != nil {
		log.Err(err).Str("func", "*Handler.updatePost").Msg("Invalid JSON was passed")
		writeError(w, r, service.NewValidationError(errInvalidJSON))
		return
	}

	post, err := h.services.PostService.Update(r.Context(), utils.GetPrincipalFromContext(r.Context()), postID, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.Delete(r.Context(), utils.GetPrincipalFromContext(r.Context()), postID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", postID).Msg("post deleted")
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPostDeleted}, http.StatusOK)
}

// postFilterFromQuery reads the listing query. Absent page and limit fall
// back to 1 and the configured default; present but non-numeric values are
// rejected. Range checks are left to the service.
func (h *Handler) postFilterFromQuery(r *http.Request) (models.PostFilter, error) {
	query := r.URL.Query()

	filter := models.PostFilter{
		Category: strings.TrimSpace(query.Get("category")),
		Search:   query.Get("search"),
		Page:     1,
		Limit:    h.defaultPageLimit,
	}

	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return models.PostFilter{}, service.NewValidationError(validators.ErrInvalidPage)
		}
		filter.Page = page
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return models.PostFilter{}, service.NewValidationError(validators.ErrInvalidLimit)
		}
		filter.Limit = limit
	}

	if v := query.Get("author"); v != "" {
		authorID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || authorID <= 0 {
			return models.PostFilter{}, service.NewValidationError(validators.ErrInvalidAuthorID)
		}
		filter.AuthorID = authorID
	}

	return filter, nil
}

func postIDFromPath(r *http.Request) (int64, error) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || postID <= 0 {
		return 0, errInvalidPostID
	}
	return postID, nil
}
