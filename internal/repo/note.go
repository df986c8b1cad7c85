package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"NotesApp/internal/model"
)

// ErrNotFound — заметки с таким id нет.
var ErrNotFound = errors.New("note not found")

// NoteRepository определяет контракт доступа к Note для слоя сервиса.
type NoteRepository interface {
	Create(ctx context.Context, n *model.Note) error
	GetByID(ctx context.Context, id string) (*model.Note, error)
	// List возвращает активные (archived=false) или архивные заметки в порядке создания.
	List(ctx context.Context, archived bool) ([]model.Note, error)
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepository создаёт реализацию репозитория для Note.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, n *model.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var n model.Note
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) List(ctx context.Context, archived bool) ([]model.Note, error) {
	notes := []model.Note{}
	err := r.db.WithContext(ctx).
		Where("archived = ?", archived).
		Order("created_at ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) SetArchived(ctx context.Context, id string, archived bool) error {
	// Update("archived", false) не пропускает нулевое значение, в отличие от Updates(struct)
	tx := r.db.WithContext(ctx).Model(&model.Note{}).Where("id = ?", id).Update("archived", archived)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
