// file: internals/features/memberships/subscriptions/service/entitlement_service.go
package service

import (
	"context"
	"errors"
	"time"

	bookingSvc "fitclub_backend/internals/features/classes/bookings/service"
	subsModel "fitclub_backend/internals/features/memberships/subscriptions/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrQuotaExhausted       = errors.New("subscription quota exhausted")
)

/* ======================================================
   EntitlementService — sumber kebenaran jatah kelas membership.
   Mutasi quota selalu di transaksi sendiri dengan FOR UPDATE
   pada row subscription; booking engine memanggilnya via
   interface EntitlementReader/EntitlementMutator.
====================================================== */

type EntitlementService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewEntitlementService(db *gorm.DB) *EntitlementService {
	return &EntitlementService{DB: db, now: time.Now}
}

// GetActiveEntitlement mengembalikan entitlement aktif member untuk
// satu kategori kelas, nil kalau tidak ada. Kalau member punya beberapa
// subscription yang cocok, yang unlimited menang, lalu sisa quota terbanyak.
func (s *EntitlementService) GetActiveEntitlement(ctx context.Context, memberID uuid.UUID, classCategory string) (*bookingSvc.Entitlement, error) {
	now := s.now()

	var rows []subsModel.MemberSubscriptionModel
	if err := s.DB.WithContext(ctx).
		Where("member_subscriptions_member_id = ?", memberID).
		Where("member_subscriptions_status = ?", subsModel.SubscriptionActive).
		Where("member_subscriptions_starts_at <= ? AND member_subscriptions_ends_at > ?", now, now).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	var best *subsModel.MemberSubscriptionModel
	for i := range rows {
		sub := &rows[i]
		if !sub.CoversCategory(classCategory) {
			continue
		}
		if !sub.Unlimited() && sub.ClassesRemaining() <= 0 {
			continue
		}
		if best == nil {
			best = sub
			continue
		}
		if sub.Unlimited() && !best.Unlimited() {
			best = sub
			continue
		}
		if !sub.Unlimited() && !best.Unlimited() && sub.ClassesRemaining() > best.ClassesRemaining() {
			best = sub
		}
	}
	if best == nil {
		return nil, nil
	}

	return &bookingSvc.Entitlement{
		SubscriptionID:   best.MemberSubscriptionsID,
		Unlimited:        best.Unlimited(),
		ClassesRemaining: best.ClassesRemaining(),
	}, nil
}

// ConsumeClass menaikkan classes_used_this_period dengan guard quota.
// Unlimited plan tetap dihitung pemakaiannya tapi tanpa batas.
func (s *EntitlementService) ConsumeClass(ctx context.Context, subscriptionID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub subsModel.MemberSubscriptionModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("member_subscriptions_id = ?", subscriptionID).
			First(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubscriptionNotFound
			}
			return err
		}

		if !sub.Unlimited() && sub.ClassesRemaining() <= 0 {
			return ErrQuotaExhausted
		}

		return tx.Model(&subsModel.MemberSubscriptionModel{}).
			Where("member_subscriptions_id = ?", subscriptionID).
			UpdateColumn("member_subscriptions_classes_used_this_period",
				gorm.Expr("member_subscriptions_classes_used_this_period + 1")).Error
	})
}

// RestoreClass mengembalikan 1 jatah (refund credit), floor di 0.
func (s *EntitlementService) RestoreClass(ctx context.Context, subscriptionID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&subsModel.MemberSubscriptionModel{}).
			Where("member_subscriptions_id = ?", subscriptionID).
			Where("member_subscriptions_classes_used_this_period > 0").
			UpdateColumn("member_subscriptions_classes_used_this_period",
				gorm.Expr("member_subscriptions_classes_used_this_period - 1"))
		if res.Error != nil {
			return res.Error
		}
		// used sudah 0 → tidak ada yang direstore, bukan error
		return nil
	})
}
