package service

import (
	"log"

	"gorm.io/gorm"

	"campushub_backend/internals/features/home/notifications/model"
)

// Notify inserts a notification best-effort. Delivery failures are logged and
// never fail the request that triggered the notification.
func Notify(db *gorm.DB, n model.NotificationModel) {
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[WARN] notification insert failed (recipient=%s type=%s): %v", n.RecipientID, n.Type, err)
	}
}

// NotifyMany fans out a batch of notifications in one insert, best-effort.
func NotifyMany(db *gorm.DB, ns []model.NotificationModel) {
	if len(ns) == 0 {
		return
	}
	if err := db.Create(&ns).Error; err != nil {
		log.Printf("[WARN] notification batch insert failed (%d rows): %v", len(ns), err)
	}
}
