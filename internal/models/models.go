// Package models contains the persisted CRM entities. Identifiers are
// assigned by the application layer at creation time, never by the store.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the root entity of the CRM; most other rows hang off it.
type Customer struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName     string          `json:"first_name" gorm:"not null;size:100"`
	LastName      string          `json:"last_name" gorm:"not null;size:100"`
	Email         string          `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber   string          `json:"phone_number" gorm:"index;not null;size:20"`
	DateOfBirth   *time.Time      `json:"date_of_birth,omitempty"`
	Address       *string         `json:"address,omitempty"`
	City          *string         `json:"city,omitempty"`
	Country       *string         `json:"country,omitempty"`
	Segment       CustomerSegment `json:"segment" gorm:"size:50"`
	KYCStatus     KYCStatus       `json:"kyc_status" gorm:"size:50"`
	CustomerRef   string          `json:"customer_reference" gorm:"uniqueIndex;size:40"`
	CreditScore   *float64        `json:"credit_score,omitempty"`
	LifetimeValue *float64        `json:"lifetime_value,omitempty"`
	RiskScore     *int            `json:"risk_score,omitempty"`
	IsActive      bool            `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by" gorm:"size:100"`
	UpdatedAt     time.Time       `json:"updated_at"`
	UpdatedBy     string          `json:"updated_by,omitempty" gorm:"size:100"`

	// Relations
	Accounts     []Account     `json:"accounts,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Interactions []Interaction `json:"interactions,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Cases        []Case        `json:"cases,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Campaigns    []Campaign    `json:"campaigns,omitempty" gorm:"many2many:campaign_customers"`
}

type Account struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `json:"customer_id" gorm:"type:uuid;index;not null"`
	AccountNumber string     `json:"account_number" gorm:"uniqueIndex;not null;size:20"`
	AccountType   string     `json:"account_type" gorm:"size:50"`
	Balance       float64    `json:"balance"`
	Currency      string     `json:"currency" gorm:"size:10;default:KES"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CreatedBy     string     `json:"created_by" gorm:"size:100"`
	UpdatedAt     time.Time  `json:"updated_at"`
	UpdatedBy     string     `json:"updated_by,omitempty" gorm:"size:100"`

	Customer     *Customer     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

type Transaction struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID `json:"account_id" gorm:"type:uuid;index;not null"`
	TransactionRef  string    `json:"transaction_reference" gorm:"uniqueIndex;size:40"`
	TransactionType string    `json:"transaction_type" gorm:"size:50"`
	Amount          float64   `json:"amount"`
	BalanceAfter    float64   `json:"balance_after"`
	TransactionDate time.Time `json:"transaction_date"`
	Description     *string   `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedBy       string    `json:"created_by" gorm:"size:100"`

	Account *Account `json:"account,omitempty" gorm:"foreignKey:AccountID"`
}

type Case struct {
	ID               uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID    `json:"customer_id" gorm:"type:uuid;index;not null"`
	CaseNumber       string       `json:"case_number" gorm:"uniqueIndex;not null;size:40"`
	Title            string       `json:"title" gorm:"not null;size:255"`
	Description      string       `json:"description"`
	Status           CaseStatus   `json:"status" gorm:"size:50"`
	Priority         CasePriority `json:"priority" gorm:"size:50"`
	Category         string       `json:"category" gorm:"size:100"`
	SubCategory      string       `json:"sub_category" gorm:"size:100"`
	AssignedToUserID *uuid.UUID   `json:"assigned_to_user_id,omitempty" gorm:"type:uuid"`
	ResolvedAt       *time.Time   `json:"resolved_at,omitempty"`
	ClosedAt         *time.Time   `json:"closed_at,omitempty"`
	Resolution       *string      `json:"resolution,omitempty"`
	SLADurationHours *int         `json:"sla_duration_hours,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	CreatedBy        string       `json:"created_by" gorm:"size:100"`
	UpdatedAt        time.Time    `json:"updated_at"`
	UpdatedBy        string       `json:"updated_by,omitempty" gorm:"size:100"`

	Customer  *Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CaseNotes []CaseNote `json:"case_notes,omitempty" gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
}

type CaseNote struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CaseID     uuid.UUID `json:"case_id" gorm:"type:uuid;index;not null"`
	Note       string    `json:"note"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by" gorm:"size:100"`
}

type Interaction struct {
	ID              uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID          `json:"customer_id" gorm:"type:uuid;index;not null"`
	Channel         InteractionChannel `json:"channel" gorm:"size:50"`
	Subject         string             `json:"subject" gorm:"not null;size:255"`
	Description     string             `json:"description"`
	InteractionDate time.Time          `json:"interaction_date" gorm:"index"`
	DurationMinutes *int               `json:"duration_minutes,omitempty"`
	UserID          *uuid.UUID         `json:"user_id,omitempty" gorm:"type:uuid"`
	CreatedAt       time.Time          `json:"created_at"`
	CreatedBy       string             `json:"created_by" gorm:"size:100"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

type Campaign struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"not null;size:255"`
	Description     string    `json:"description"`
	TargetSegment   string    `json:"target_segment" gorm:"size:50"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	TargetCustomers int       `json:"target_customers"`
	ReachedCustomers int      `json:"reached_customers"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedBy       string    `json:"created_by" gorm:"size:100"`
	UpdatedAt       time.Time `json:"updated_at"`
	UpdatedBy       string    `json:"updated_by,omitempty" gorm:"size:100"`

	Customers []Customer `json:"customers,omitempty" gorm:"many2many:campaign_customers"`
}

type NextBestAction struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID  `json:"customer_id" gorm:"type:uuid;index;not null"`
	ActionType         ActionType `json:"action_type" gorm:"size:50"`
	Title              string     `json:"title" gorm:"not null;size:255"`
	Description        string     `json:"description"`
	ConfidenceScore    float64    `json:"confidence_score"`
	RecommendedProduct *string    `json:"recommended_product,omitempty"`
	RecommendedDate    time.Time  `json:"recommended_date"`
	CompletedDate      *time.Time `json:"completed_date,omitempty"`
	IsCompleted        bool       `json:"is_completed"`
	Outcome            *string    `json:"outcome,omitempty"`
	AIModelVersion     *string    `json:"ai_model_version,omitempty" gorm:"size:50"`
	CreatedAt          time.Time  `json:"created_at"`
	CreatedBy          string     `json:"created_by" gorm:"size:100"`
	UpdatedAt          time.Time  `json:"updated_at"`
	UpdatedBy          string     `json:"updated_by,omitempty" gorm:"size:100"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

type SentimentAnalysis struct {
	ID               uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID     `json:"customer_id" gorm:"type:uuid;index;not null"`
	InteractionID    *uuid.UUID    `json:"interaction_id,omitempty" gorm:"type:uuid;index"`
	CaseID           *uuid.UUID    `json:"case_id,omitempty" gorm:"type:uuid;index"`
	SentimentType    SentimentType `json:"sentiment_type" gorm:"size:50"`
	SentimentScore   float64       `json:"sentiment_score"`
	TextAnalyzed     string        `json:"text_analyzed"`
	AnalyzedDate     time.Time     `json:"analyzed_date"`
	KeyPhrases       string        `json:"key_phrases"`
	AnalysisMetadata *string       `json:"analysis_metadata,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	CreatedBy        string        `json:"created_by" gorm:"size:100"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	// Interaction/Case links carry no cascade action; rows survive
	// deletion of the linked interaction or case.
	Interaction *Interaction `json:"interaction,omitempty" gorm:"foreignKey:InteractionID;constraint:OnDelete:NO ACTION"`
	Case        *Case        `json:"case,omitempty" gorm:"foreignKey:CaseID;constraint:OnDelete:NO ACTION"`
}

type WorkflowDefinition struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name              string    `json:"name" gorm:"not null;size:255"`
	Description       string    `json:"description"`
	TriggerType       string    `json:"trigger_type" gorm:"not null;size:100"`
	TriggerConditions string    `json:"trigger_conditions"`
	Actions           string    `json:"actions"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
	ExecutionOrder    int       `json:"execution_order"`
	CreatedAt         time.Time `json:"created_at"`
	CreatedBy         string    `json:"created_by" gorm:"size:100"`
	UpdatedAt         time.Time `json:"updated_at"`
	UpdatedBy         string    `json:"updated_by,omitempty" gorm:"size:100"`

	Instances []WorkflowInstance `json:"instances,omitempty" gorm:"foreignKey:WorkflowDefinitionID;constraint:OnDelete:CASCADE"`
}

type WorkflowInstance struct {
	ID                   uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	WorkflowDefinitionID uuid.UUID      `json:"workflow_definition_id" gorm:"type:uuid;index;not null"`
	CustomerID           *uuid.UUID     `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	CaseID               *uuid.UUID     `json:"case_id,omitempty" gorm:"type:uuid;index"`
	Status               WorkflowStatus `json:"status" gorm:"size:50"`
	StartedAt            time.Time      `json:"started_at"`
	CompletedAt          *time.Time     `json:"completed_at,omitempty"`
	CurrentStep          *string        `json:"current_step,omitempty" gorm:"size:100"`
	ExecutionContext     *string        `json:"execution_context,omitempty"`
	ErrorMessage         *string        `json:"error_message,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	CreatedBy            string         `json:"created_by" gorm:"size:100"`
	UpdatedAt            time.Time      `json:"updated_at"`
	UpdatedBy            string         `json:"updated_by,omitempty" gorm:"size:100"`

	Definition *WorkflowDefinition `json:"definition,omitempty" gorm:"foreignKey:WorkflowDefinitionID"`
}

type Notification struct {
	ID         uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     *uuid.UUID       `json:"user_id,omitempty" gorm:"type:uuid;index"`
	CustomerID *uuid.UUID       `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	Type       NotificationType `json:"type" gorm:"size:50"`
	Title      string           `json:"title" gorm:"not null;size:255"`
	Message    string           `json:"message"`
	IsRead     bool             `json:"is_read"`
	ReadAt     *time.Time       `json:"read_at,omitempty"`
	ActionURL  *string          `json:"action_url,omitempty"`
	Metadata   *string          `json:"metadata,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	CreatedBy  string           `json:"created_by" gorm:"size:100"`

	// Deleting a customer nullifies the reference instead of removing
	// the notification.
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
}

type ReportTemplate struct {
	ID               uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string       `json:"name" gorm:"not null;size:255"`
	Description      string       `json:"description"`
	ReportType       string       `json:"report_type" gorm:"not null;size:100"`
	QueryDefinition  string       `json:"query_definition"`
	ParametersSchema string       `json:"parameters_schema"`
	DefaultFormat    ReportFormat `json:"default_format" gorm:"size:20"`
	IsActive         bool         `json:"is_active" gorm:"default:true"`
	LayoutTemplate   *string      `json:"layout_template,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	CreatedBy        string       `json:"created_by" gorm:"size:100"`
	UpdatedAt        time.Time    `json:"updated_at"`
	UpdatedBy        string       `json:"updated_by,omitempty" gorm:"size:100"`

	Schedules []ReportSchedule  `json:"schedules,omitempty" gorm:"foreignKey:ReportTemplateID;constraint:OnDelete:CASCADE"`
	Generated []GeneratedReport `json:"generated,omitempty" gorm:"foreignKey:ReportTemplateID;constraint:OnDelete:CASCADE"`
}

type ReportSchedule struct {
	ID                 uuid.UUID               `json:"id" gorm:"type:uuid;primaryKey"`
	ReportTemplateID   uuid.UUID               `json:"report_template_id" gorm:"type:uuid;index;not null"`
	Name               string                  `json:"name" gorm:"not null;size:255"`
	Frequency          ReportScheduleFrequency `json:"frequency" gorm:"size:20"`
	ScheduleExpression *string                 `json:"schedule_expression,omitempty" gorm:"size:100"`
	NextRunDate        *time.Time              `json:"next_run_date,omitempty"`
	LastRunDate        *time.Time              `json:"last_run_date,omitempty"`
	IsActive           bool                    `json:"is_active" gorm:"default:true"`
	Recipients         string                  `json:"recipients"`
	OutputFormat       ReportFormat            `json:"output_format" gorm:"size:20"`
	Parameters         *string                 `json:"parameters,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	CreatedBy          string                  `json:"created_by" gorm:"size:100"`

	Template *ReportTemplate `json:"template,omitempty" gorm:"foreignKey:ReportTemplateID"`
}

type GeneratedReport struct {
	ID               uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	ReportTemplateID uuid.UUID    `json:"report_template_id" gorm:"type:uuid;index;not null"`
	ReportScheduleID *uuid.UUID   `json:"report_schedule_id,omitempty" gorm:"type:uuid"`
	ReportName       string       `json:"report_name" gorm:"not null;size:255"`
	GeneratedDate    time.Time    `json:"generated_date"`
	Format           ReportFormat `json:"format" gorm:"size:20"`
	FilePath         string       `json:"file_path" gorm:"size:255"`
	FileSizeBytes    int64        `json:"file_size_bytes"`
	Parameters       *string      `json:"parameters,omitempty"`
	GeneratedByUser  *uuid.UUID   `json:"generated_by_user_id,omitempty" gorm:"type:uuid"`
	RecordCount      int          `json:"record_count"`
	IsDownloaded     bool         `json:"is_downloaded"`
	DownloadedAt     *time.Time   `json:"downloaded_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	CreatedBy        string       `json:"created_by" gorm:"size:100"`

	Template *ReportTemplate `json:"template,omitempty" gorm:"foreignKey:ReportTemplateID"`
}

type USSDSession struct {
	ID              uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID       string            `json:"session_id" gorm:"uniqueIndex;not null;size:100"`
	PhoneNumber     string            `json:"phone_number" gorm:"index;size:20"`
	CustomerID      *uuid.UUID        `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	Status          USSDSessionStatus `json:"status" gorm:"size:20"`
	CurrentMenu     string            `json:"current_menu" gorm:"size:50"`
	MenuHistory     string            `json:"menu_history"`
	UserInput       *string           `json:"user_input,omitempty"`
	StartedAt       time.Time         `json:"started_at"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	TransactionData *string           `json:"transaction_data,omitempty"`
	ErrorMessage    *string           `json:"error_message,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	CreatedBy       string            `json:"created_by" gorm:"size:100"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type WhatsAppMessage struct {
	ID                uuid.UUID             `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID             `json:"customer_id" gorm:"type:uuid;index;not null"`
	PhoneNumber       string                `json:"phone_number" gorm:"size:20"`
	MessageType       WhatsAppMessageType   `json:"message_type" gorm:"size:20"`
	Status            WhatsAppMessageStatus `json:"status" gorm:"size:20"`
	Content           string                `json:"content"`
	MediaURL          *string               `json:"media_url,omitempty"`
	TemplateID        *string               `json:"template_id,omitempty" gorm:"size:100"`
	SentAt            *time.Time            `json:"sent_at,omitempty"`
	DeliveredAt       *time.Time            `json:"delivered_at,omitempty"`
	ReadAt            *time.Time            `json:"read_at,omitempty"`
	ErrorMessage      *string               `json:"error_message,omitempty"`
	WhatsAppMessageID *string               `json:"whatsapp_message_id,omitempty" gorm:"index;size:100"`
	IsInbound         bool                  `json:"is_inbound"`
	CreatedAt         time.Time             `json:"created_at"`
	CreatedBy         string                `json:"created_by" gorm:"size:100"`
	UpdatedAt         time.Time             `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}
