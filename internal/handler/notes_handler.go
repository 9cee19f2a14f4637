package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CityNotes-App/internal/application"
	"CityNotes-App/internal/domain/model"
)

const (
	noteNotFoundMessage = "Note not found"
	noteCityNotFound    = "City not found"
)

// NotesHandler 都市のノートに関するHTTPハンドラー
type NotesHandler struct {
	notesService application.NotesService
	logger       *zap.Logger
}

// NewNotesHandler NotesHandlerの新しいインスタンスを作成
func NewNotesHandler(notesService application.NotesService, logger *zap.Logger) *NotesHandler {
	return &NotesHandler{
		notesService: notesService,
		logger:       logger,
	}
}

// ListNotes GET /cities/:id/notes - ノート一覧（新しい順）
func (h *NotesHandler) ListNotes(c *gin.Context) {
	notes, err := h.notesService.ListNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, noteCityNotFound, "Failed to fetch notes")
		return
	}
	c.JSON(http.StatusOK, notes)
}

// CreateNote POST /cities/:id/notes - ノートの作成
func (h *NotesHandler) CreateNote(c *gin.Context) {
	var req model.NoteInput
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.notesService.CreateNote(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err, noteCityNotFound, "Failed to create note")
		return
	}
	c.JSON(http.StatusCreated, note)
}

// GetNote GET /cities/:id/notes/:noteId - ノートの取得
func (h *NotesHandler) GetNote(c *gin.Context) {
	noteID, ok := parseNoteID(c)
	if !ok {
		return
	}

	note, err := h.notesService.GetNote(c.Request.Context(), c.Param("id"), noteID)
	if err != nil {
		respondError(c, h.logger, err, noteNotFoundMessage, "Failed to fetch note")
		return
	}
	c.JSON(http.StatusOK, note)
}

// UpdateNote PUT /cities/:id/notes/:noteId - ノートの更新
func (h *NotesHandler) UpdateNote(c *gin.Context) {
	noteID, ok := parseNoteID(c)
	if !ok {
		return
	}
	var req model.NoteInput
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.notesService.UpdateNote(c.Request.Context(), c.Param("id"), noteID, &req)
	if err != nil {
		respondError(c, h.logger, err, noteNotFoundMessage, "Failed to update note")
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote DELETE /cities/:id/notes/:noteId - ノートの削除
func (h *NotesHandler) DeleteNote(c *gin.Context) {
	noteID, ok := parseNoteID(c)
	if !ok {
		return
	}

	res, err := h.notesService.DeleteNote(c.Request.Context(), c.Param("id"), noteID)
	if err != nil {
		respondError(c, h.logger, err, noteNotFoundMessage, "Failed to delete note")
		return
	}
	c.JSON(http.StatusOK, res)
}

// parseNoteID パスの noteId は正の整数のみ受け付ける
// 0 や負数は存在確認をせず形式エラー(400)として扱う
func parseNoteID(c *gin.Context) (int64, bool) {
	noteID, err := strconv.ParseInt(c.Param("noteId"), 10, 64)
	if err != nil || noteID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid Note ID format",
		})
		return 0, false
	}
	return noteID, true
}
