// file: internals/route/index.go
package route

import (
	"log"
	"strconv"

	"fitclub_backend/internals/configs"
	"fitclub_backend/internals/constants"
	authMiddleware "fitclub_backend/internals/middlewares/auth"

	bookingRoute "fitclub_backend/internals/features/classes/bookings/route"
	bookingSvc "fitclub_backend/internals/features/classes/bookings/service"
	scheduleRoute "fitclub_backend/internals/features/classes/class_schedules/route"

	packRoute "fitclub_backend/internals/features/memberships/class_packs/route"
	packSvc "fitclub_backend/internals/features/memberships/class_packs/service"
	subsRoute "fitclub_backend/internals/features/memberships/subscriptions/route"
	subsSvc "fitclub_backend/internals/features/memberships/subscriptions/service"

	paymentRoute "fitclub_backend/internals/features/payment/payments/route"
	paymentSvc "fitclub_backend/internals/features/payment/payments/service"

	policyRoute "fitclub_backend/internals/features/access/policies/route"
	policySvc "fitclub_backend/internals/features/access/policies/service"

	memberRoute "fitclub_backend/internals/features/members/members/route"
	notifRoute "fitclub_backend/internals/features/notifications/route"
	notifSvc "fitclub_backend/internals/features/notifications/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes merakit seluruh dependency graph booking engine lalu
// mount semua route group. Mengembalikan BookingService supaya main
// bisa menjalankan scheduler sweep di atasnya.
func SetupRoutes(app *fiber.App, db *gorm.DB) *bookingSvc.BookingService {
	// ===================== SERVICES =====================
	entitlements := subsSvc.NewEntitlementService(db)
	packs := packSvc.NewClassPackService(db)
	payments := paymentSvc.NewPaymentService(db)
	policies := policySvc.NewAccessPolicyService(db)
	notifier := notifSvc.NewNotifierService(db)

	// Midtrans Snap client (sekali saat bootstrap)
	useProd := func() bool {
		if v := configs.GetEnv("MIDTRANS_USE_PROD"); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
		return false
	}()
	paymentSvc.InitMidtrans(configs.MidtransServerKey, useProd)

	booking := bookingSvc.NewBookingService(
		db,
		&bookingSvc.PaymentSourceResolver{
			Entitlements: entitlements,
			Packs:        packs,
		},
		&bookingSvc.EligibilityGate{
			Gender: policies,
			Prayer: policies,
		},
		entitlements,
		packs,
		payments,
		notifier,
	)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Mounting public routes...")
	public := app.Group("/api")
	memberRoute.AuthRoutes(public, db)
	paymentRoute.PaymentPublicRoutes(public, payments)

	// ===================== MEMBER (/api/m) =====================
	log.Println("[INFO] Mounting member routes...")
	member := app.Group("/api/m", authMiddleware.AuthMiddleware())
	memberRoute.MemberProfileRoutes(member, db)
	scheduleRoute.ClassScheduleUserRoutes(member, db)
	bookingRoute.BookingUserRoutes(member, db, booking)
	subsRoute.SubscriptionUserRoutes(member, db)
	packRoute.ClassPackUserRoutes(member, db)
	paymentRoute.PaymentUserRoutes(member, payments)
	notifRoute.NotificationUserRoutes(member, db)

	// ===================== ADMIN (/api/a) =====================
	log.Println("[INFO] Mounting admin routes...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleAdmin, constants.RoleOwner),
	)
	scheduleRoute.ClassScheduleAdminRoutes(admin, db)
	bookingRoute.BookingAdminRoutes(admin, db, booking)
	subsRoute.SubscriptionAdminRoutes(admin, db)
	packRoute.ClassPackAdminRoutes(admin, db)
	policyRoute.AccessPolicyAdminRoutes(admin, db)

	return booking
}
