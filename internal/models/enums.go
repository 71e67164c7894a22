package models

// Enumerations are stored and serialized as strings so that analytics
// groupings and API payloads stay human readable.

type CustomerSegment string

const (
	SegmentRetail       CustomerSegment = "Retail"
	SegmentSME          CustomerSegment = "SME"
	SegmentCorporate    CustomerSegment = "Corporate"
	SegmentHighNetWorth CustomerSegment = "HighNetWorth"
)

type KYCStatus string

const (
	KYCPending  KYCStatus = "Pending"
	KYCVerified KYCStatus = "Verified"
	KYCRejected KYCStatus = "Rejected"
	KYCExpired  KYCStatus = "Expired"
)

type CaseStatus string

const (
	CaseOpen            CaseStatus = "Open"
	CaseInProgress      CaseStatus = "InProgress"
	CasePendingCustomer CaseStatus = "PendingCustomer"
	CaseEscalated       CaseStatus = "Escalated"
	CaseResolved        CaseStatus = "Resolved"
	CaseClosed          CaseStatus = "Closed"
)

type CasePriority string

const (
	PriorityLow      CasePriority = "Low"
	PriorityMedium   CasePriority = "Medium"
	PriorityHigh     CasePriority = "High"
	PriorityCritical CasePriority = "Critical"
)

type InteractionChannel string

const (
	ChannelBranch     InteractionChannel = "Branch"
	ChannelCallCenter InteractionChannel = "CallCenter"
	ChannelEmail      InteractionChannel = "Email"
	ChannelSMS        InteractionChannel = "SMS"
	ChannelWhatsApp   InteractionChannel = "WhatsApp"
	ChannelMobileApp  InteractionChannel = "MobileApp"
	ChannelWeb        InteractionChannel = "Web"
	ChannelATM        InteractionChannel = "ATM"
)

type ActionType string

const (
	ActionProductRecommendation ActionType = "ProductRecommendation"
	ActionFollowUpCall          ActionType = "FollowUpCall"
	ActionSendEmail             ActionType = "SendEmail"
	ActionSendSMS               ActionType = "SendSMS"
	ActionScheduleMeeting       ActionType = "ScheduleMeeting"
	ActionUpgradeAccount        ActionType = "UpgradeAccount"
	ActionCrossSell             ActionType = "CrossSell"
	ActionRetentionOffer        ActionType = "RetentionOffer"
	ActionRiskReview            ActionType = "RiskReview"
)

type SentimentType string

const (
	SentimentVeryNegative SentimentType = "VeryNegative"
	SentimentNegative     SentimentType = "Negative"
	SentimentNeutral      SentimentType = "Neutral"
	SentimentPositive     SentimentType = "Positive"
	SentimentVeryPositive SentimentType = "VeryPositive"
)

type WorkflowStatus string

const (
	WorkflowActive    WorkflowStatus = "Active"
	WorkflowCompleted WorkflowStatus = "Completed"
	WorkflowFailed    WorkflowStatus = "Failed"
	WorkflowCancelled WorkflowStatus = "Cancelled"
)

type NotificationType string

const (
	NotificationSystem   NotificationType = "System"
	NotificationCase     NotificationType = "CaseUpdate"
	NotificationCustomer NotificationType = "CustomerUpdate"
	NotificationCampaign NotificationType = "CampaignUpdate"
	NotificationWorkflow NotificationType = "WorkflowUpdate"
)

type ReportFormat string

const (
	FormatPDF   ReportFormat = "PDF"
	FormatExcel ReportFormat = "Excel"
	FormatCSV   ReportFormat = "CSV"
	FormatJSON  ReportFormat = "JSON"
)

type ReportScheduleFrequency string

const (
	FrequencyDaily     ReportScheduleFrequency = "Daily"
	FrequencyWeekly    ReportScheduleFrequency = "Weekly"
	FrequencyMonthly   ReportScheduleFrequency = "Monthly"
	FrequencyQuarterly ReportScheduleFrequency = "Quarterly"
	FrequencyYearly    ReportScheduleFrequency = "Yearly"
)

type USSDSessionStatus string

const (
	USSDActive    USSDSessionStatus = "Active"
	USSDCompleted USSDSessionStatus = "Completed"
	USSDExpired   USSDSessionStatus = "Expired"
	USSDFailed    USSDSessionStatus = "Failed"
)

type WhatsAppMessageType string

const (
	WhatsAppText     WhatsAppMessageType = "Text"
	WhatsAppTemplate WhatsAppMessageType = "Template"
	WhatsAppImage    WhatsAppMessageType = "Image"
	WhatsAppDocument WhatsAppMessageType = "Document"
)

type WhatsAppMessageStatus string

const (
	MessagePending   WhatsAppMessageStatus = "Pending"
	MessageSent      WhatsAppMessageStatus = "Sent"
	MessageDelivered WhatsAppMessageStatus = "Delivered"
	MessageRead      WhatsAppMessageStatus = "Read"
	MessageFailed    WhatsAppMessageStatus = "Failed"
)
