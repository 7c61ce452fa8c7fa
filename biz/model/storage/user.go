package storage

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/gorm"
	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

type UserRecord struct {
	GormModel
	UserId       string `gorm:"size:64;not null;uniqueIndex"`  // 对外暴露的用户ID
	Name         string `gorm:"size:64;not null"`              // 用户姓名
	Email        string `gorm:"size:254;not null;uniqueIndex"` // 唯一登录邮箱, 小写
	PasswordHash string `gorm:"size:128;not null"`
}

func (UserRecord) TableName() string {
	return "users"
}

func (u *UserRecord) BeforeCreate(*gorm.DB) error {
	if u.UserId == "" {
		u.UserId = uuid.NewString()
	}
	return nil
}

// UserDocument is the mongo representation; _id is assigned on insert.
type UserDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

const UserCollection = "users"
