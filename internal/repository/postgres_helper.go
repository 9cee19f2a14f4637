package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"CityNotes-App/internal/domain/model"
)

// PostgreSQL用のプレースホルダ($1, $2...)を使うクエリビルダー
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgreSQLのエラーコード
const (
	pqForeignKeyViolation       = "23503"
	pqInvalidTextRepresentation = "22P02"
)

// rowScanner *sql.Row と *sql.Rows の共通インターフェース
type rowScanner interface {
	Scan(dest ...any) error
}

// translateError ドライバーのエラーをドメインのエラー分類に変換する
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrValidation) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation, pqInvalidTextRepresentation:
			return fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, model.ErrStoreFailure, err)
}

// withTx トランザクション内で fn を実行する
// fn がエラーを返した場合はロールバックする
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return translateError("トランザクション開始失敗", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return translateError("トランザクションのコミット失敗", err)
	}
	return nil
}
