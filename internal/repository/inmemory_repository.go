package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"CityNotes-App/internal/domain/model"
	"CityNotes-App/internal/domain/repository"
)

// InMemoryStore プロセス内メモリに都市とノートを保持するストア
// ローカル開発（serve --in-memory）とテストで使用する
// PostgreSQL 実装と同じ並び順・所有者スコープ・カスケード削除を守る
type InMemoryStore struct {
	mu         sync.RWMutex
	cities     map[string]model.City
	notes      map[int64]model.Note
	nextNoteID int64
	now        func() time.Time
}

// NewInMemoryStore 空のストアを作成
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		cities: make(map[string]model.City),
		notes:  make(map[int64]model.Note),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Cities CitiesRepository としてのビュー
func (s *InMemoryStore) Cities() repository.CitiesRepository {
	return &inMemoryCities{store: s}
}

// Notes NotesRepository としてのビュー
func (s *InMemoryStore) Notes() repository.NotesRepository {
	return &inMemoryNotes{store: s}
}

// noteCountLocked 呼び出し側でロックを保持していること
func (s *InMemoryStore) noteCountLocked(cityID string) int {
	count := 0
	for _, n := range s.notes {
		if n.CityID == cityID {
			count++
		}
	}
	return count
}

func notFound(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, model.ErrNotFound)...)
}

type inMemoryCities struct {
	store *InMemoryStore
}

func (r *inMemoryCities) List(ctx context.Context) ([]model.City, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cities := make([]model.City, 0, len(r.store.cities))
	for _, c := range r.store.cities {
		c.NoteCount = r.store.noteCountLocked(c.ID)
		cities = append(cities, c)
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].Name != cities[j].Name {
			return cities[i].Name < cities[j].Name
		}
		return cities[i].ID < cities[j].ID
	})
	return cities, nil
}

func (r *inMemoryCities) GetByID(ctx context.Context, id string) (*model.City, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.cities[id]
	if !ok {
		return nil, notFound("都市ID %s の取得失敗", id)
	}
	c.NoteCount = r.store.noteCountLocked(id)
	return &c, nil
}

func (r *inMemoryCities) Exists(ctx context.Context, id string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.cities[id]
	return ok, nil
}

func (r *inMemoryCities) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.cities {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryCities) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.cities), nil
}

func (r *inMemoryCities) Create(ctx context.Context, city *model.City) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cities[city.ID]; ok {
		return fmt.Errorf("都市ID %s は既に存在します: %w", city.ID, model.ErrStoreFailure)
	}
	now := r.store.now()
	city.CreatedAt = now
	city.UpdatedAt = now
	city.NoteCount = 0
	r.store.cities[city.ID] = *city
	return nil
}

func (r *inMemoryCities) Update(ctx context.Context, city *model.City) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.cities[city.ID]
	if !ok {
		return notFound("都市ID %s の更新失敗", city.ID)
	}
	city.CreatedAt = current.CreatedAt
	city.UpdatedAt = r.store.now()
	city.NoteCount = r.store.noteCountLocked(city.ID)
	r.store.cities[city.ID] = *city
	return nil
}

func (r *inMemoryCities) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cities[id]; !ok {
		return notFound("都市ID %s の削除失敗", id)
	}
	delete(r.store.cities, id)
	for noteID, n := range r.store.notes {
		if n.CityID == id {
			delete(r.store.notes, noteID)
		}
	}
	return nil
}

type inMemoryNotes struct {
	store *InMemoryStore
}

func (r *inMemoryNotes) ListByCity(ctx context.Context, cityID string) ([]model.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notes := []model.Note{}
	for _, n := range r.store.notes {
		if n.CityID == cityID {
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		}
		return notes[i].ID > notes[j].ID
	})
	return notes, nil
}

func (r *inMemoryNotes) GetByCity(ctx context.Context, cityID string, noteID int64) (*model.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n, ok := r.store.notes[noteID]
	if !ok || n.CityID != cityID {
		return nil, notFound("都市 %s のノート %d の取得失敗", cityID, noteID)
	}
	return &n, nil
}

func (r *inMemoryNotes) Create(ctx context.Context, note *model.Note) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cities[note.CityID]; !ok {
		return 0, notFound("都市ID %s のロック失敗", note.CityID)
	}
	r.store.nextNoteID++
	now := r.store.now()
	note.ID = r.store.nextNoteID
	note.CreatedAt = now
	note.UpdatedAt = now
	r.store.notes[note.ID] = *note
	return r.store.noteCountLocked(note.CityID), nil
}

func (r *inMemoryNotes) Update(ctx context.Context, note *model.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.notes[note.ID]
	if !ok || current.CityID != note.CityID {
		return notFound("都市 %s のノート %d の更新失敗", note.CityID, note.ID)
	}
	note.CreatedAt = current.CreatedAt
	note.UpdatedAt = r.store.now()
	r.store.notes[note.ID] = *note
	return nil
}

func (r *inMemoryNotes) Delete(ctx context.Context, cityID string, noteID int64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cities[cityID]; !ok {
		return 0, notFound("都市ID %s のロック失敗", cityID)
	}
	n, ok := r.store.notes[noteID]
	if !ok || n.CityID != cityID {
		return 0, notFound("都市 %s のノート %d の削除失敗", cityID, noteID)
	}
	delete(r.store.notes, noteID)
	return r.store.noteCountLocked(cityID), nil
}
