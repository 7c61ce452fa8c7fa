package repo

import (
	"context"
	"errors"
	"fmt"

	"blog_api/biz/model/convert"
	"blog_api/biz/model/domain"
	"blog_api/biz/model/errs"
	"blog_api/biz/model/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository stores users in a relational database through gorm.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	m := convert.UserDomainToRecord(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		}
		return nil, err
	}
	return convert.UserRecordToDomain(m), nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *GormUserRepository) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedID, userID)
	}

	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}
