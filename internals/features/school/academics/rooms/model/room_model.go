// file: internals/features/school/academics/rooms/model/room_model.go
package model

import "time"

/* =======================================================
   RoomModel — maps to table rooms
   ======================================================= */

type RoomModel struct {
	RoomID   int     `json:"room_id" gorm:"column:room_id;primaryKey;autoIncrement"`
	RoomName string  `json:"room_name" gorm:"type:text;not null;uniqueIndex;column:room_name"`
	Building *string `json:"building,omitempty" gorm:"type:text;column:building"`
	Floor    *int    `json:"floor,omitempty" gorm:"column:floor"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
