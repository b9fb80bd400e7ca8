// file: internals/features/memberships/class_packs/service/class_pack_service.go
package service

import (
	"context"
	"errors"
	"time"

	bookingSvc "fitclub_backend/internals/features/classes/bookings/service"
	packModel "fitclub_backend/internals/features/memberships/class_packs/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBalanceNotFound  = errors.New("class pack balance not found")
	ErrBalanceExhausted = errors.New("class pack balance exhausted")
)

/* ======================================================
   ClassPackService — saldo kredit paket kelas.
   Decrement/Increment jalan di transaksi sendiri dengan
   FOR UPDATE pada row balance; dipanggil booking engine
   via interface ClassPackReader/ClassPackMutator.
====================================================== */

type ClassPackService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewClassPackService(db *gorm.DB) *ClassPackService {
	return &ClassPackService{DB: db, now: time.Now}
}

// GetEligibleBalances: balance aktif, belum expired, ada sisa kredit,
// dan scope-nya mencakup kelas ini. Urutan expiry diserahkan ke resolver.
func (s *ClassPackService) GetEligibleBalances(ctx context.Context, memberID, classID uuid.UUID, classCategory string) ([]bookingSvc.PackBalance, error) {
	now := s.now()

	var rows []packModel.ClassPackBalanceModel
	if err := s.DB.WithContext(ctx).
		Where("class_pack_balances_member_id = ?", memberID).
		Where("class_pack_balances_status = ?", packModel.ClassPackActive).
		Where("class_pack_balances_expires_at > ?", now).
		Where("class_pack_balances_classes_remaining > 0").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]bookingSvc.PackBalance, 0, len(rows))
	for i := range rows {
		b := &rows[i]
		if !b.CoversClass(classID, classCategory) {
			continue
		}
		out = append(out, bookingSvc.PackBalance{
			BalanceID:        b.ClassPackBalancesID,
			ClassesRemaining: b.ClassPackBalancesClassesRemaining,
			ExpiresAt:        b.ClassPackBalancesExpiresAt,
		})
	}
	return out, nil
}

// Decrement memotong 1 kredit; balance yang habis ditandai exhausted.
func (s *ClassPackService) Decrement(ctx context.Context, balanceID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b packModel.ClassPackBalanceModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("class_pack_balances_id = ?", balanceID).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBalanceNotFound
			}
			return err
		}

		if b.ClassPackBalancesClassesRemaining <= 0 {
			return ErrBalanceExhausted
		}

		updates := map[string]interface{}{
			"class_pack_balances_classes_remaining": gorm.Expr("class_pack_balances_classes_remaining - 1"),
		}
		if b.ClassPackBalancesClassesRemaining == 1 {
			updates["class_pack_balances_status"] = packModel.ClassPackExhausted
		}
		return tx.Model(&packModel.ClassPackBalanceModel{}).
			Where("class_pack_balances_id = ?", balanceID).
			Updates(updates).Error
	})
}

// Increment mengembalikan 1 kredit (refund), cap di classes_purchased.
// Balance exhausted hidup lagi jadi active.
func (s *ClassPackService) Increment(ctx context.Context, balanceID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b packModel.ClassPackBalanceModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("class_pack_balances_id = ?", balanceID).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBalanceNotFound
			}
			return err
		}

		if b.ClassPackBalancesClassesRemaining >= b.ClassPackBalancesClassesPurchased {
			return nil
		}

		updates := map[string]interface{}{
			"class_pack_balances_classes_remaining": gorm.Expr("class_pack_balances_classes_remaining + 1"),
		}
		if b.ClassPackBalancesStatus == packModel.ClassPackExhausted {
			updates["class_pack_balances_status"] = packModel.ClassPackActive
		}
		return tx.Model(&packModel.ClassPackBalanceModel{}).
			Where("class_pack_balances_id = ?", balanceID).
			Updates(updates).Error
	})
}
