package convert

import (
	"blog_api/biz/model/domain"
	"blog_api/biz/model/dto"
	"blog_api/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserId:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UserID:       m.UserId,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func UserDomainToDocument(u *domain.User) *storage.UserDocument {
	if u == nil {
		return nil
	}
	return &storage.UserDocument{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func UserDocumentToDomain(d *storage.UserDocument) *domain.User {
	if d == nil {
		return nil
	}
	return &domain.User{
		UserID:       d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserDomainToView drops everything a caller must never see.
func UserDomainToView(u *domain.User) *dto.UserView {
	if u == nil {
		return nil
	}
	return &dto.UserView{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
	}
}
