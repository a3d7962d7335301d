package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/repository"
	"github.com/prostech/outbound-api/internal/service"
	"go.uber.org/zap"
)

// NotificationHandler handles HTTP requests for notification emails
type NotificationHandler struct {
	notificationService *service.NotificationService
	logger              *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler instance
func NewNotificationHandler(notificationService *service.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// Recipients godoc
// @Summary List notification recipients
// @Description Lists who a notification kind would be sent to, with their active delivery counts in the window.
// @Tags Notifications
// @Produce json
// @Param kind query string false "Notification kind" Enums(delivery_schedule, overdue_alert, customs_clearance, customer_schedule) default(delivery_schedule)
// @Param weeks query int false "Weeks ahead (defaults to the configured window)"
// @Success 200 {array} domain.Recipient
// @Failure 400 {object} domain.APIError "Unknown kind or invalid weeks"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Router /api/v1/notifications/recipients [get]
func (h *NotificationHandler) Recipients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind := domain.NotificationKind(q.Get("kind"))
	if kind == "" {
		kind = domain.NotificationDeliverySchedule
	}
	weeks, err := intParam(q, "weeks", 0)
	if err != nil {
		respondError(w, h.logger, "list recipients", err)
		return
	}

	recipients, err := h.notificationService.Recipients(r.Context(), kind, weeks)
	if err != nil {
		respondError(w, h.logger, "list recipients", err)
		return
	}
	if recipients == nil {
		recipients = []domain.Recipient{}
	}
	respondJSON(w, http.StatusOK, recipients)
}

// Preview godoc
// @Summary Preview notifications
// @Description Renders subject, HTML body and attachments for each recipient without sending anything.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body domain.NotificationRequest true "Notification request"
// @Success 200 {array} domain.NotificationPreviewDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError "Named recipient not found"
// @Failure 422 {object} domain.APIError "Too many recipients"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Router /api/v1/notifications/preview [post]
func (h *NotificationHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	previews, err := h.notificationService.Preview(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, "preview notifications", err)
		return
	}
	respondJSON(w, http.StatusOK, previews)
}

// Send godoc
// @Summary Send notifications
// @Description Sends the notification emails of a request. The body must carry "confirm": true.
// @Description Individual recipient failures are reported in the summary with a 200.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body domain.NotificationRequest true "Notification request"
// @Success 200 {object} domain.SendSummary
// @Failure 400 {object} domain.APIError "Invalid request or missing confirmation"
// @Failure 404 {object} domain.APIError "Named recipient not found"
// @Failure 422 {object} domain.APIError "Too many recipients"
// @Failure 429 {object} domain.APIError "Send rate limit exceeded"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Router /api/v1/notifications/send [post]
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.notificationService.Send(r.Context(), &req)
	if err != nil {
		if summary != nil {
			// cancelled mid-run; report what was sent
			h.logger.Warn("notification send interrupted", zap.Error(err), zap.Int("sent", summary.Sent))
			respondJSON(w, http.StatusOK, summary)
			return
		}
		respondError(w, h.logger, "send notifications", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// Log godoc
// @Summary List notification log
// @Description Returns recent send attempts, newest first.
// @Tags Notifications
// @Produce json
// @Param kind query string false "Notification kind" Enums(delivery_schedule, overdue_alert, customs_clearance, customer_schedule)
// @Param status query string false "Send status" Enums(sent, failed, skipped)
// @Param email query string false "Recipient email"
// @Param since query string false "Earliest send date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.NotificationLog}
// @Failure 400 {object} domain.APIError
// @Failure 503 {object} domain.APIError "Notification log database disabled"
// @Router /api/v1/notifications/log [get]
func (h *NotificationHandler) Log(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	filter := repository.NotificationLogFilter{
		Kind:   strings.TrimSpace(q.Get("kind")),
		Status: strings.TrimSpace(q.Get("status")),
		Email:  strings.TrimSpace(q.Get("email")),
	}
	if raw := strings.TrimSpace(q.Get("since")); raw != "" {
		since, err := time.Parse(dateLayout, raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "since must be a YYYY-MM-DD date")
			return
		}
		filter.Since = &since
	}

	entries, total, err := h.notificationService.Log(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, h.logger, "list notification log", err)
		return
	}
	if entries == nil {
		entries = []domain.NotificationLog{}
	}
	respondJSON(w, http.StatusOK, domain.NewPaginatedResponse(entries, total, page, pageSize))
}
