package domain

import "time"

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// DeliveriesResponse carries line-level rows for a filter
type DeliveriesResponse struct {
	Count   int                 `json:"count"`
	Rows    []DeliveryLine      `json:"rows"`
	Notices []DataQualityNotice `json:"notices,omitempty"`
	Message string              `json:"message,omitempty"`
}

// FilterOptionsDTO lists the selectable values per filter dimension
type FilterOptionsDTO struct {
	Options map[Dimension][]string `json:"options"`
	MinETD  *time.Time             `json:"min_etd,omitempty"`
	MaxETD  *time.Time             `json:"max_etd,omitempty"`
}

// NotificationRequest is the body of preview and send requests
type NotificationRequest struct {
	Kind         NotificationKind `json:"kind" validate:"required,oneof=delivery_schedule overdue_alert customs_clearance customer_schedule"`
	Recipients   []string         `json:"recipients" validate:"omitempty,dive,required"`
	CustomsTo    []string         `json:"customs_to" validate:"omitempty,dive,email"`
	ExtraCC      []string         `json:"extra_cc" validate:"omitempty,dive,email"`
	IncludeCC    bool             `json:"include_cc"`
	WeeksAhead   int              `json:"weeks_ahead" validate:"omitempty,gte=1,lte=12"`
	Confirm      bool             `json:"confirm"`
	ArchiveFiles *bool            `json:"archive_files,omitempty"`
}

// AttachmentInfo describes a generated attachment without its payload
type AttachmentInfo struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// NotificationPreviewDTO is the rendered output for one recipient
type NotificationPreviewDTO struct {
	Recipient   string              `json:"recipient"`
	Email       string              `json:"email"`
	CC          []string            `json:"cc,omitempty"`
	Subject     string              `json:"subject"`
	HTML        string              `json:"html"`
	Deliveries  int                 `json:"deliveries"`
	Attachments []AttachmentInfo    `json:"attachments"`
	Notes       []string            `json:"notes,omitempty"`
	Notices     []DataQualityNotice `json:"notices,omitempty"`
}

// SendResult is the outcome for one recipient
type SendResult struct {
	Recipient  string     `json:"recipient"`
	Email      string     `json:"email"`
	Status     SendStatus `json:"status"`
	Deliveries int        `json:"deliveries"`
	Message    string     `json:"message,omitempty"`
	Notes      []string   `json:"notes,omitempty"`
}

// SendSummary aggregates the results of a send request
type SendSummary struct {
	Sent    int          `json:"sent"`
	Failed  int          `json:"failed"`
	Skipped int          `json:"skipped"`
	Results []SendResult `json:"results"`
}

// PaginatedResponse wraps one page of a list
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// NewPaginatedResponse computes the page count for total items
func NewPaginatedResponse(data interface{}, total int64, page, pageSize int) PaginatedResponse {
	pages := 0
	if pageSize > 0 {
		pages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PaginatedResponse{Data: data, Total: total, Page: page, PageSize: pageSize, TotalPages: pages}
}
