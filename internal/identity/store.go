package identity

import (
	"context"
	"errors"

	"packingapp/internal/model"

	"gorm.io/gorm"
)

type gormAccountStore struct{ db *gorm.DB }

// NewAccountStore keeps accounts in the usuarios table.
func NewAccountStore(db *gorm.DB) AccountStore {
	return &gormAccountStore{db: db}
}

func (s *gormAccountStore) findBy(ctx context.Context, column string, value any) (*model.Usuario, error) {
	var u model.Usuario
	err := s.db.WithContext(ctx).Where(column+" = ?", value).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormAccountStore) FindByID(ctx context.Context, id string) (*model.Usuario, error) {
	return s.findBy(ctx, "id", id)
}

func (s *gormAccountStore) FindByNormalizedUserName(ctx context.Context, normalized string) (*model.Usuario, error) {
	return s.findBy(ctx, "normalized_user_name", normalized)
}

func (s *gormAccountStore) FindByNormalizedEmail(ctx context.Context, normalized string) (*model.Usuario, error) {
	return s.findBy(ctx, "normalized_email", normalized)
}

func (s *gormAccountStore) Create(ctx context.Context, u *model.Usuario) error {
	return s.db.WithContext(ctx).Omit("Empresa").Create(u).Error
}
