package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"CityNotes-App/internal/domain/model"
	"CityNotes-App/internal/domain/repository"
	"CityNotes-App/internal/infrastructure/database"
)

var noteColumns = []string{"id", "title", "content", "city_id", "created_at", "updated_at"}

type PostgresNotesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresNotesRepository(client *database.PostgreSQLClient) repository.NotesRepository {
	return &PostgresNotesRepository{
		client: client,
	}
}

func scanNote(row rowScanner) (*model.Note, error) {
	var note model.Note
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.CityID, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *PostgresNotesRepository) ListByCity(ctx context.Context, cityID string) ([]model.Note, error) {
	query, args, err := psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"city_id": cityID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, translateError("ノート一覧クエリの構築失敗", err)
	}

	rows, err := r.client.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("ノート一覧の取得失敗", err)
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, translateError("ノートデータスキャンエラー", err)
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("行イテレーション中のエラー", err)
	}

	return notes, nil
}

func (r *PostgresNotesRepository) GetByCity(ctx context.Context, cityID string, noteID int64) (*model.Note, error) {
	query, args, err := psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": noteID, "city_id": cityID}).
		ToSql()
	if err != nil {
		return nil, translateError("ノート取得クエリの構築失敗", err)
	}

	note, err := scanNote(r.client.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(fmt.Sprintf("都市 %s のノート %d の取得失敗", cityID, noteID), err)
	}
	return note, nil
}

// Create 親都市の行をロックしてからノートを挿入し、件数を数え直す
func (r *PostgresNotesRepository) Create(ctx context.Context, note *model.Note) (int, error) {
	var count int
	err := withTx(ctx, r.client.DB, func(tx *sql.Tx) error {
		if err := lockCity(ctx, tx, note.CityID); err != nil {
			return err
		}

		query, args, err := psql.Insert("notes").
			Columns("title", "content", "city_id").
			Values(note.Title, note.Content, note.CityID).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return translateError("ノート作成クエリの構築失敗", err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return translateError("ノートデータの作成失敗", err)
		}

		count, err = countNotes(ctx, tx, note.CityID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Update 所有都市でスコープしてタイトルと本文を上書きする
func (r *PostgresNotesRepository) Update(ctx context.Context, note *model.Note) error {
	query, args, err := psql.Update("notes").
		Set("title", note.Title).
		Set("content", note.Content).
		Where(sq.Eq{"id": note.ID, "city_id": note.CityID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return translateError("ノート更新クエリの構築失敗", err)
	}

	if err := r.client.DB.QueryRowContext(ctx, query, args...).Scan(&note.CreatedAt, &note.UpdatedAt); err != nil {
		return translateError(fmt.Sprintf("都市 %s のノート %d の更新失敗", note.CityID, note.ID), err)
	}
	return nil
}

// Delete 親都市の行をロックしてからノートを削除し、件数を数え直す
func (r *PostgresNotesRepository) Delete(ctx context.Context, cityID string, noteID int64) (int, error) {
	var count int
	err := withTx(ctx, r.client.DB, func(tx *sql.Tx) error {
		if err := lockCity(ctx, tx, cityID); err != nil {
			return err
		}

		query, args, err := psql.Delete("notes").
			Where(sq.Eq{"id": noteID, "city_id": cityID}).
			ToSql()
		if err != nil {
			return translateError("ノート削除クエリの構築失敗", err)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return translateError("ノートデータの削除失敗", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return translateError("削除件数の取得失敗", err)
		}
		if affected == 0 {
			return translateError(fmt.Sprintf("都市 %s のノート %d の削除失敗", cityID, noteID), sql.ErrNoRows)
		}

		count, err = countNotes(ctx, tx, cityID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// lockCity 親都市の行を FOR UPDATE でロックする
// 同じ都市へのノート書き込みはこのロックで直列化される
func lockCity(ctx context.Context, tx *sql.Tx, cityID string) error {
	query, args, err := psql.Select("id").
		From("cities").
		Where(sq.Eq{"id": cityID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return translateError("都市ロッククエリの構築失敗", err)
	}

	var id string
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return translateError("都市ID "+cityID+" のロック失敗", err)
	}
	return nil
}

func countNotes(ctx context.Context, tx *sql.Tx, cityID string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("notes").
		Where(sq.Eq{"city_id": cityID}).
		ToSql()
	if err != nil {
		return 0, translateError("ノート件数クエリの構築失敗", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, translateError("ノート件数の取得失敗", err)
	}
	return count, nil
}
