// file: internals/features/school/academics/rooms/dto/room_dto.go
package dto

import (
	"strings"

	m "timetable_backend/internals/features/school/academics/rooms/model"
)

type CreateRoomRequest struct {
	RoomName string  `json:"room_name" validate:"required,max=100"`
	Building *string `json:"building,omitempty" validate:"omitempty,max=100"`
	Floor    *int    `json:"floor,omitempty" validate:"omitempty,gte=0,lte=50"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomName = strings.TrimSpace(r.RoomName)
	if r.Building != nil {
		t := strings.TrimSpace(*r.Building)
		if t == "" {
			r.Building = nil
		} else {
			r.Building = &t
		}
	}
}

func (r *CreateRoomRequest) ToModel() m.RoomModel {
	return m.RoomModel{
		RoomName: r.RoomName,
		Building: r.Building,
		Floor:    r.Floor,
	}
}

type UpdateRoomRequest struct {
	RoomName *string `json:"room_name,omitempty" validate:"omitempty,max=100"`
	Building *string `json:"building,omitempty" validate:"omitempty,max=100"`
	Floor    *int    `json:"floor,omitempty" validate:"omitempty,gte=0,lte=50"`
}

func (r *UpdateRoomRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.RoomName != nil {
		updates["room_name"] = strings.TrimSpace(*r.RoomName)
	}
	if r.Building != nil {
		updates["building"] = r.Building
	}
	if r.Floor != nil {
		updates["floor"] = r.Floor
	}
	return updates
}
