package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/komachi-dev/komachi/internal/api"
	"github.com/komachi-dev/komachi/internal/domain"
	"github.com/komachi-dev/komachi/internal/utils"
)

func toBoardResponse(board domain.Board) api.BoardResponse {
	return api.BoardResponse{
		Key:         board.Key,
		Title:       board.Title,
		Description: board.Description,
		IsReadOnly:  board.IsReadOnly,
		CreatedAt:   board.CreatedAt,
		UpdatedAt:   board.UpdatedAt,
	}
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	categories, err := h.board.Categories()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.CategoryListResponse{Categories: make([]api.CategoryResponse, len(categories))}
	for i, category := range categories {
		boards := make([]api.BoardResponse, len(category.Boards))
		for j, board := range category.Boards {
			boards[j] = toBoardResponse(board)
		}
		response.Categories[i] = api.CategoryResponse{
			Id:          category.Id,
			Name:        category.Name,
			Description: category.Description,
			SortOrder:   category.SortOrder,
			Boards:      boards,
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "board")

	board, err := h.board.Get(key)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBoardResponse(board))
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err := h.board.Create(domain.BoardCreationData{
		Key:         body.Key,
		Title:       body.Title,
		Description: body.Description,
		IsReadOnly:  body.IsReadOnly,
		CategoryId:  body.CategoryId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCategoryRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.board.CreateCategory(body.Name, body.Description, body.SortOrder)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) SetBoardReadOnly(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "board")

	var body api.SetBoardReadOnlyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.board.SetReadOnly(key, *body.IsReadOnly); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
