// file: internals/features/school/timetable/timeslots/model/table_config_model.go
package model

import (
	"time"

	"gorm.io/datatypes"

	"timetable_backend/internals/constants"
)

/* =======================================================
   TableConfigModel — maps to table table_configs

   One row per term, keyed "1-2567". Config keeps the raw
   generation payload so the UI can re-show the form that
   produced the current grid.
   ======================================================= */

type TableConfigModel struct {
	ConfigID     string             `json:"config_id" gorm:"type:text;primaryKey;column:config_id"`
	AcademicYear int                `json:"academic_year" gorm:"column:academic_year;not null"`
	Semester     constants.Semester `json:"semester" gorm:"type:text;column:semester;not null"`
	Config       datatypes.JSON     `json:"config" gorm:"type:jsonb;column:config"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (TableConfigModel) TableName() string {
	return "table_configs"
}
