// Package whatsapp holds payloads for outbound messages and the delivery
// status webhook.
package whatsapp

import "github.com/google/uuid"

type SendRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	PhoneNumber string    `json:"phone_number" binding:"required,max=20"`
	MessageType string    `json:"message_type" binding:"omitempty,oneof=Text Template Image Document"`
	Content     string    `json:"content" binding:"required"`
	MediaURL    *string   `json:"media_url"`
	TemplateID  *string   `json:"template_id"`
}

// WebhookRequest is the provider's delivery status callback.
type WebhookRequest struct {
	WhatsAppMessageID string  `json:"whatsapp_message_id" binding:"required"`
	Status            string  `json:"status" binding:"required,oneof=Sent Delivered Read Failed"`
	ErrorMessage      *string `json:"error_message"`
}
