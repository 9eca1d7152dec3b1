// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`
	Email    string    `json:"email" gorm:"type:text;not null;uniqueIndex;column:email"`
	Password string    `json:"-" gorm:"type:text;not null;column:password"`
	FullName string    `json:"full_name" gorm:"type:text;not null;column:full_name"`
	Role     string    `json:"role" gorm:"type:text;not null;default:user;column:role"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
