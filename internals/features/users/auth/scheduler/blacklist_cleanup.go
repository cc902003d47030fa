package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"campushub_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanup removes expired tokens from the blacklist once a
// day so the table the auth middleware scans stays small.
func StartBlacklistCleanup(db *gorm.DB) {
	go func() {
		for {
			res := db.Where("expires_at < ?", time.Now()).
				Delete(&model.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[WARN] token blacklist cleanup failed: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] token blacklist cleanup removed %d rows", res.RowsAffected)
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}
