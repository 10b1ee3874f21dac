package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/komachi-dev/komachi/internal/api"
	"github.com/komachi-dev/komachi/internal/config"
	"github.com/komachi-dev/komachi/internal/domain"
	internal_errors "github.com/komachi-dev/komachi/internal/errors"
	"github.com/komachi-dev/komachi/internal/logger"
	"github.com/komachi-dev/komachi/internal/markdown"
	"github.com/komachi-dev/komachi/internal/service"
)

type Handler struct {
	board    service.BoardService
	thread   service.ThreadService
	post     service.PostService
	renderer *markdown.Renderer
	cfg      *config.Config
}

func New(board service.BoardService, thread service.ThreadService, post service.PostService, renderer *markdown.Renderer, cfg *config.Config) *Handler {
	return &Handler{board, thread, post, renderer, cfg}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}

func parseIntParam(value, name string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, internal_errors.Validation("Invalid " + name)
	}
	return parsed, nil
}

func (h *Handler) toPostResponse(post *domain.Post) api.PostResponse {
	return api.PostResponse{
		Id:        post.Id,
		Number:    post.Number,
		Body:      post.Body,
		BodyHtml:  h.renderer.Render(post.Body),
		Name:      post.DisplayName(),
		PosterId:  post.PosterId,
		CreatedAt: post.CreatedAt,
	}
}

func (h *Handler) toPostResponses(posts []*domain.Post) []api.PostResponse {
	out := make([]api.PostResponse, len(posts))
	for i, post := range posts {
		out[i] = h.toPostResponse(post)
	}
	return out
}

func toThreadMetadataResponse(meta domain.ThreadMetadata) api.ThreadMetadataResponse {
	return api.ThreadMetadataResponse{
		Id:        meta.Id,
		Board:     meta.Board,
		Title:     meta.Title,
		Status:    meta.Status,
		PostCount: meta.PostCount,
		CreatedAt: meta.CreatedAt,
		UpdatedAt: meta.UpdatedAt,
	}
}
