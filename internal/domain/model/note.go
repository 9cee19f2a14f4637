package model

import (
	"strings"
	"time"
)

// Note 都市に紐づく自由記述のメモ
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CityID    string    `json:"cityId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteInput ノートの作成・更新リクエスト
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate タイトルと本文は両方必須
func (in *NoteInput) Validate() error {
	if in == nil {
		return NewValidationError("body", "request body is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title", "title and content are required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return NewValidationError("content", "title and content are required")
	}
	return nil
}

// CityNoteCount 書き込み後の親都市のノート件数
type CityNoteCount struct {
	ID        string `json:"id"`
	NoteCount int    `json:"noteCount"`
}

// NoteWithCity ノート作成レスポンス
type NoteWithCity struct {
	Note
	City CityNoteCount `json:"city"`
}

// DeleteNoteResponse ノート削除レスポンス
type DeleteNoteResponse struct {
	Message string        `json:"message"`
	City    CityNoteCount `json:"city"`
}
