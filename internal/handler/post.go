package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/komachi-dev/komachi/internal/api"
	"github.com/komachi-dev/komachi/internal/domain"
	"github.com/komachi-dev/komachi/internal/middleware/metrics"
	"github.com/komachi-dev/komachi/internal/utils"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if _, err := h.board.AuthorizeWrite(board); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Create(domain.PostCreationData{
		Board:            board,
		ThreadId:         domain.ThreadId(threadId),
		Body:             body.Body,
		Name:             body.Name,
		SubmitterAddress: utils.SubmitterAddress(r),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.PostAccepted(board, post.Number >= domain.MaxPostsPerThread)

	writeJSON(w, http.StatusCreated, h.toPostResponse(&post))
}
