package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/home/notifications/dto"
	"campushub_backend/internals/features/home/notifications/model"
	helper "campushub_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/notifications/my
func (ctrl *NotificationController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.NotificationModel{}).Where("recipient_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("is_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var notifications []model.NotificationModel
	if err := q.Order(p.SortBy + " " + p.SortOrder).
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	var unread int64
	ctrl.DB.Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = false", userID).
		Count(&unread)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "ok",
		"data":         dto.ToNotificationResponseList(notifications),
		"pagination":   helper.BuildMeta(total, p),
		"unread_count": unread,
	})
}

// PUT /api/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notification read")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonUpdated(c, "Notification marked read", fiber.Map{"id": id})
}

// PUT /api/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = false", userID).
		Update("is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notifications read")
	}
	return helper.JsonUpdated(c, "All notifications marked read", fiber.Map{"updated": res.RowsAffected})
}

// POST /api/notifications (admin)
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	senderID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	n := model.NotificationModel{
		RecipientID:   req.RecipientID,
		RecipientRole: req.Role,
		Title:         req.Title,
		Message:       req.Message,
		Type:          req.Type,
		Link:          req.Link,
		SenderID:      &senderID,
	}
	if err := ctrl.DB.Create(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}
	return helper.JsonCreated(c, "Notification sent", dto.ToNotificationResponse(n))
}

// POST /api/notifications/broadcast (admin)
//
// Fans a single message out to every active user holding any of the given
// roles.
func (ctrl *NotificationController) Broadcast(c *fiber.Ctx) error {
	var req dto.BroadcastRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	senderID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	type recipient struct {
		ID   uuid.UUID
		Role string
	}
	var recipients []recipient
	if err := ctrl.DB.Table("users").
		Select("id, role").
		Where("role IN ? AND is_active = true AND deleted_at IS NULL", req.Roles).
		Scan(&recipients).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve recipients")
	}

	notifications := make([]model.NotificationModel, 0, len(recipients))
	for _, r := range recipients {
		notifications = append(notifications, model.NotificationModel{
			RecipientID:   r.ID,
			RecipientRole: r.Role,
			Title:         req.Title,
			Message:       req.Message,
			Type:          req.Type,
			Link:          req.Link,
			SenderID:      &senderID,
		})
	}
	if len(notifications) > 0 {
		if err := ctrl.DB.CreateInBatches(notifications, 500).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to broadcast notification")
		}
	}
	return helper.JsonCreated(c, "Broadcast sent", fiber.Map{"recipients": len(notifications)})
}
