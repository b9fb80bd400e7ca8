// file: internals/features/access/policies/service/access_policy_service.go
package service

import (
	"context"
	"time"

	policyModel "fitclub_backend/internals/features/access/policies/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   AccessPolicyService — gerbang kebijakan akses lokasi.
   Implementasi GenderAccessChecker & PrayerTimeChecker untuk
   booking engine. Fail-closed untuk error infra (error
   diteruskan, bukan dianggap eligible), fail-open untuk
   lokasi tanpa rule (tidak ada rule = semua boleh masuk).
====================================================== */

type AccessPolicyService struct {
	DB *gorm.DB
}

func NewAccessPolicyService(db *gorm.DB) *AccessPolicyService {
	return &AccessPolicyService{DB: db}
}

// IsEligible: member boleh masuk kalau lokasi tidak punya rule sama
// sekali, atau ada rule untuk gender member (atau "all") yang window-nya
// mencakup waktu `at`.
func (s *AccessPolicyService) IsEligible(ctx context.Context, locationID uuid.UUID, memberGender string, at time.Time) (bool, error) {
	var rules []policyModel.LocationAccessRuleModel
	if err := s.DB.WithContext(ctx).
		Where("location_access_rules_location_id = ?", locationID).
		Find(&rules).Error; err != nil {
		return false, err
	}
	if len(rules) == 0 {
		return true, nil
	}

	for i := range rules {
		r := &rules[i]
		if r.LocationAccessRulesGender != "all" && r.LocationAccessRulesGender != memberGender {
			continue
		}
		wd, min := minuteOfDay(at, r.LocationAccessRulesTimezone)
		if wd != r.LocationAccessRulesDayOfWeek {
			continue
		}
		if inWindow(min, r.LocationAccessRulesStartMinute, r.LocationAccessRulesEndMinute) {
			return true, nil
		}
	}
	return false, nil
}

// IsBlocked: true kalau `at` jatuh di salah satu window blokir lokasi.
func (s *AccessPolicyService) IsBlocked(ctx context.Context, locationID uuid.UUID, at time.Time) (bool, error) {
	var blocks []policyModel.PrayerTimeBlockModel
	if err := s.DB.WithContext(ctx).
		Where("prayer_time_blocks_location_id = ?", locationID).
		Find(&blocks).Error; err != nil {
		return false, err
	}

	for i := range blocks {
		b := &blocks[i]
		wd, min := minuteOfDay(at, b.PrayerTimeBlocksTimezone)
		if b.PrayerTimeBlocksDayOfWeek != -1 && wd != b.PrayerTimeBlocksDayOfWeek {
			continue
		}
		if inWindow(min, b.PrayerTimeBlocksStartMinute, b.PrayerTimeBlocksEndMinute) {
			return true, nil
		}
	}
	return false, nil
}
