// file: internals/features/access/policies/model/access_rule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: location_access_rules
   Jadwal akses gender per lokasi. Window dalam menit-sejak-
   tengah-malam waktu lokal club (timezone club). Rule untuk
   gender "all" berlaku ke semua member.
====================================================== */

type LocationAccessRuleModel struct {
	LocationAccessRulesID         uuid.UUID `gorm:"column:location_access_rules_id;type:uuid;default:gen_random_uuid();primaryKey" json:"location_access_rules_id"`
	LocationAccessRulesLocationID uuid.UUID `gorm:"column:location_access_rules_location_id;type:uuid;not null;index" json:"location_access_rules_location_id"`

	// "male" | "female" | "all"
	LocationAccessRulesGender string `gorm:"column:location_access_rules_gender;type:varchar(10);not null" json:"location_access_rules_gender"`

	// 0=Minggu .. 6=Sabtu (time.Weekday)
	LocationAccessRulesDayOfWeek int `gorm:"column:location_access_rules_day_of_week;type:int;not null" json:"location_access_rules_day_of_week"`

	LocationAccessRulesStartMinute int `gorm:"column:location_access_rules_start_minute;type:int;not null" json:"location_access_rules_start_minute"`
	LocationAccessRulesEndMinute   int `gorm:"column:location_access_rules_end_minute;type:int;not null" json:"location_access_rules_end_minute"`

	LocationAccessRulesTimezone string `gorm:"column:location_access_rules_timezone;type:varchar(64);not null;default:'Asia/Riyadh'" json:"location_access_rules_timezone"`

	LocationAccessRulesCreatedAt time.Time      `gorm:"column:location_access_rules_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"location_access_rules_created_at"`
	LocationAccessRulesUpdatedAt time.Time      `gorm:"column:location_access_rules_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"location_access_rules_updated_at"`
	LocationAccessRulesDeletedAt gorm.DeletedAt `gorm:"column:location_access_rules_deleted_at;index" json:"location_access_rules_deleted_at,omitempty"`
}

func (LocationAccessRuleModel) TableName() string {
	return "location_access_rules"
}

/* ======================================================
   Model: prayer_time_blocks
   Window blokir booking/check-in per lokasi (waktu sholat).
====================================================== */

type PrayerTimeBlockModel struct {
	PrayerTimeBlocksID         uuid.UUID `gorm:"column:prayer_time_blocks_id;type:uuid;default:gen_random_uuid();primaryKey" json:"prayer_time_blocks_id"`
	PrayerTimeBlocksLocationID uuid.UUID `gorm:"column:prayer_time_blocks_location_id;type:uuid;not null;index" json:"prayer_time_blocks_location_id"`

	PrayerTimeBlocksName string `gorm:"column:prayer_time_blocks_name;type:varchar(50);not null" json:"prayer_time_blocks_name"`

	// -1 = setiap hari, selain itu 0=Minggu .. 6=Sabtu
	PrayerTimeBlocksDayOfWeek int `gorm:"column:prayer_time_blocks_day_of_week;type:int;not null;default:-1" json:"prayer_time_blocks_day_of_week"`

	PrayerTimeBlocksStartMinute int `gorm:"column:prayer_time_blocks_start_minute;type:int;not null" json:"prayer_time_blocks_start_minute"`
	PrayerTimeBlocksEndMinute   int `gorm:"column:prayer_time_blocks_end_minute;type:int;not null" json:"prayer_time_blocks_end_minute"`

	PrayerTimeBlocksTimezone string `gorm:"column:prayer_time_blocks_timezone;type:varchar(64);not null;default:'Asia/Riyadh'" json:"prayer_time_blocks_timezone"`

	PrayerTimeBlocksCreatedAt time.Time      `gorm:"column:prayer_time_blocks_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"prayer_time_blocks_created_at"`
	PrayerTimeBlocksUpdatedAt time.Time      `gorm:"column:prayer_time_blocks_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"prayer_time_blocks_updated_at"`
	PrayerTimeBlocksDeletedAt gorm.DeletedAt `gorm:"column:prayer_time_blocks_deleted_at;index" json:"prayer_time_blocks_deleted_at,omitempty"`
}

func (PrayerTimeBlockModel) TableName() string {
	return "prayer_time_blocks"
}
