package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/komachi-dev/komachi/internal/api"
	"github.com/komachi-dev/komachi/internal/domain"
	internal_errors "github.com/komachi-dev/komachi/internal/errors"
	"github.com/komachi-dev/komachi/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// Early gate; the storage transaction re-checks board policy before
	// committing, so a concurrent flag flip cannot slip a write through.
	if _, err := h.board.AuthorizeWrite(board); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(domain.ThreadCreationData{
		Board: board,
		Title: body.Title,
		OpPost: domain.PostCreationData{
			Board:            board,
			Body:             body.Body,
			Name:             body.Name,
			SubmitterAddress: utils.SubmitterAddress(r),
		},
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadResponse{
		ThreadMetadataResponse: toThreadMetadataResponse(thread.ThreadMetadata),
		Posts:                  h.toPostResponses(thread.Posts),
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := parseIntParam(raw, "page")
		if err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
		page = parsed
	}

	limit := h.cfg.Public.ThreadsPerPage
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := parseIntParam(raw, "limit")
		if err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
		limit = parsed
	}

	var status *domain.ThreadStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := domain.ParseThreadStatus(raw)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, internal_errors.Validation("Invalid status filter"))
			return
		}
		status = &parsed
	}

	threadPage, err := h.thread.List(board, page, limit, status)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadListResponse{
		Threads: make([]api.ThreadResponse, len(threadPage.Threads)),
		Pagination: api.Pagination{
			Page:       threadPage.Page,
			Limit:      threadPage.Limit,
			Total:      threadPage.Total,
			TotalPages: threadPage.TotalPages,
		},
	}
	for i, thread := range threadPage.Threads {
		response.Threads[i] = api.ThreadResponse{
			ThreadMetadataResponse: toThreadMetadataResponse(thread.ThreadMetadata),
			Posts:                  h.toPostResponses(thread.Posts),
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Get(board, domain.ThreadId(threadId))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadResponse{
		ThreadMetadataResponse: toThreadMetadataResponse(thread.ThreadMetadata),
		Posts:                  h.toPostResponses(thread.Posts),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) ArchiveThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Archive(board, domain.ThreadId(threadId)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
