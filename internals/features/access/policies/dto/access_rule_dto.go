// file: internals/features/access/policies/dto/access_rule_dto.go
package dto

import "github.com/google/uuid"

// POST /api/a/access-rules
type CreateAccessRuleRequest struct {
	LocationID uuid.UUID `json:"location_access_rules_location_id" validate:"required"`

	Gender    string `json:"location_access_rules_gender" validate:"required,oneof=male female all"`
	DayOfWeek int    `json:"location_access_rules_day_of_week" validate:"min=0,max=6"`

	StartMinute int `json:"location_access_rules_start_minute" validate:"min=0,max=1439"`
	EndMinute   int `json:"location_access_rules_end_minute" validate:"min=0,max=1439"`

	Timezone string `json:"location_access_rules_timezone"`
}

// POST /api/a/prayer-blocks
type CreatePrayerBlockRequest struct {
	LocationID uuid.UUID `json:"prayer_time_blocks_location_id" validate:"required"`

	Name string `json:"prayer_time_blocks_name" validate:"required,min=2,max=50"`

	// -1 = setiap hari
	DayOfWeek int `json:"prayer_time_blocks_day_of_week" validate:"min=-1,max=6"`

	StartMinute int `json:"prayer_time_blocks_start_minute" validate:"min=0,max=1439"`
	EndMinute   int `json:"prayer_time_blocks_end_minute" validate:"min=0,max=1439"`

	Timezone string `json:"prayer_time_blocks_timezone"`
}
