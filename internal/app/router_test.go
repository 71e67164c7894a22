package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wekeza-crm/internal/config"
	"wekeza-crm/internal/models"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A pooled second connection would see a different in-memory database.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := postgres.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return BuildRouter(Deps{
		DB:     gdb,
		Logger: zap.NewNop(),
		Gen:    ident.New(),
		Cfg:    config.AppConfig{},
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v (data %s)", err, env.Data)
	}
}

func createCustomer(t *testing.T, router *gin.Engine, email, segment string) models.Customer {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/customers", map[string]any{
		"first_name":   "Amina",
		"last_name":    "Otieno",
		"email":        email,
		"phone_number": "+254700000001",
		"segment":      segment,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create customer: status %d body %s", w.Code, w.Body.String())
	}

	var created models.Customer
	decodeData(t, w, &created)
	return created
}

func TestCustomerCreateThenFetch(t *testing.T) {
	router := newTestRouter(t)

	created := createCustomer(t, router, "amina@example.com", "Retail")

	if created.ID == uuid.Nil {
		t.Fatal("server did not assign an id")
	}
	if created.CustomerRef == "" {
		t.Fatal("server did not assign a customer reference")
	}
	if !created.IsActive {
		t.Fatal("new customer should be active")
	}

	w := doJSON(t, router, http.MethodGet, "/api/customers/"+created.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch: status %d", w.Code)
	}

	var fetched models.Customer
	decodeData(t, w, &fetched)

	if fetched.ID != created.ID {
		t.Fatalf("id mismatch: %s vs %s", fetched.ID, created.ID)
	}
	if fetched.Email != "amina@example.com" {
		t.Fatalf("email = %q", fetched.Email)
	}
	if fetched.FirstName != "Amina" || fetched.LastName != "Otieno" {
		t.Fatalf("name = %q %q", fetched.FirstName, fetched.LastName)
	}
	if fetched.CustomerRef != created.CustomerRef {
		t.Fatalf("reference mismatch: %q vs %q", fetched.CustomerRef, created.CustomerRef)
	}
	if fetched.Segment != models.SegmentRetail {
		t.Fatalf("segment = %s", fetched.Segment)
	}
}

func TestCustomerCreateSetsLocation(t *testing.T) {
	router := newTestRouter(t)

	created := createCustomer(t, router, "loc@example.com", "Retail")

	w := doJSON(t, router, http.MethodGet, "/api/customers/"+created.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("location target not fetchable: %d", w.Code)
	}
}

func TestDeleteMissingReturns404(t *testing.T) {
	router := newTestRouter(t)
	missing := uuid.NewString()

	paths := []string{
		"/api/customers/" + missing,
		"/api/accounts/" + missing,
		"/api/cases/" + missing,
		"/api/interactions/" + missing,
		"/api/campaigns/" + missing,
		"/api/nextbestactions/" + missing,
		"/api/sentimentanalysis/" + missing,
		"/api/workflows/definitions/" + missing,
		"/api/notifications/" + missing,
	}

	for _, path := range paths {
		w := doJSON(t, router, http.MethodDelete, path, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("DELETE %s: status %d, want 404", path, w.Code)
		}
	}
}

func TestCustomerSegmentFilter(t *testing.T) {
	router := newTestRouter(t)

	createCustomer(t, router, "retail1@example.com", "Retail")
	createCustomer(t, router, "retail2@example.com", "Retail")
	createCustomer(t, router, "corp@example.com", "Corporate")

	w := doJSON(t, router, http.MethodGet, "/api/customers/segment/Retail", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var customers []models.Customer
	decodeData(t, w, &customers)

	if len(customers) != 2 {
		t.Fatalf("got %d customers, want 2", len(customers))
	}
	for _, c := range customers {
		if c.Segment != models.SegmentRetail {
			t.Fatalf("segment filter leaked %s", c.Segment)
		}
	}
}

func TestCaseResolveStampsFields(t *testing.T) {
	router := newTestRouter(t)
	customer := createCustomer(t, router, "case@example.com", "Retail")

	w := doJSON(t, router, http.MethodPost, "/api/cases", map[string]any{
		"customer_id": customer.ID,
		"title":       "Card not working",
		"priority":    "High",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create case: status %d body %s", w.Code, w.Body.String())
	}

	var created models.Case
	decodeData(t, w, &created)

	if created.Status != models.CaseOpen {
		t.Fatalf("new case status = %s", created.Status)
	}
	if created.CaseNumber == "" {
		t.Fatal("case number not assigned")
	}

	w = doJSON(t, router, http.MethodPut, "/api/cases/"+created.ID.String()+"/status", map[string]any{
		"status":     "Resolved",
		"resolution": "Card replaced",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("resolve: status %d body %s", w.Code, w.Body.String())
	}

	var resolved models.Case
	decodeData(t, w, &resolved)

	if resolved.Status != models.CaseResolved {
		t.Fatalf("status = %s", resolved.Status)
	}
	if resolved.ResolvedAt == nil {
		t.Fatal("ResolvedAt not stamped")
	}
	if resolved.Resolution == nil || *resolved.Resolution != "Card replaced" {
		t.Fatalf("resolution = %v", resolved.Resolution)
	}

	w = doJSON(t, router, http.MethodPut, "/api/cases/"+created.ID.String()+"/status", map[string]any{
		"status": "Closed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("close: status %d", w.Code)
	}

	var closed models.Case
	decodeData(t, w, &closed)
	if closed.ClosedAt == nil {
		t.Fatal("ClosedAt not stamped")
	}
}

func TestAccountCreateWithMissingCustomer(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/accounts", map[string]any{
		"customer_id":  uuid.NewString(),
		"account_type": "Savings",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}

func TestTransactionMovesBalance(t *testing.T) {
	router := newTestRouter(t)
	customer := createCustomer(t, router, "txn@example.com", "Retail")

	w := doJSON(t, router, http.MethodPost, "/api/accounts", map[string]any{
		"customer_id":  customer.ID,
		"account_type": "Savings",
		"balance":      1000.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create account: status %d body %s", w.Code, w.Body.String())
	}

	var account models.Account
	decodeData(t, w, &account)

	if account.Currency != "KES" {
		t.Fatalf("default currency = %q", account.Currency)
	}

	w = doJSON(t, router, http.MethodPost, "/api/accounts/"+account.ID.String()+"/transactions", map[string]any{
		"transaction_type": "Deposit",
		"amount":           500.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create transaction: status %d body %s", w.Code, w.Body.String())
	}

	var tx models.Transaction
	decodeData(t, w, &tx)

	if tx.BalanceAfter != 1500.0 {
		t.Fatalf("balance after = %v, want 1500", tx.BalanceAfter)
	}

	w = doJSON(t, router, http.MethodGet, "/api/accounts/"+account.ID.String(), nil)
	var updated models.Account
	decodeData(t, w, &updated)
	if updated.Balance != 1500.0 {
		t.Fatalf("account balance = %v, want 1500", updated.Balance)
	}
}

func TestGenerateActions(t *testing.T) {
	router := newTestRouter(t)
	customer := createCustomer(t, router, "nba@example.com", "Retail")

	w := doJSON(t, router, http.MethodPost, "/api/nextbestactions/generate/"+customer.ID.String(), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("generate: status %d body %s", w.Code, w.Body.String())
	}

	var actions []models.NextBestAction
	decodeData(t, w, &actions)

	if len(actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(actions))
	}
	if actions[0].ConfidenceScore != 0.85 || actions[1].ConfidenceScore != 0.72 {
		t.Fatalf("confidence scores = %v, %v", actions[0].ConfidenceScore, actions[1].ConfidenceScore)
	}
	if actions[0].AIModelVersion == nil || *actions[0].AIModelVersion != "v1.0-simulation" {
		t.Fatalf("model version = %v", actions[0].AIModelVersion)
	}

	w = doJSON(t, router, http.MethodGet, "/api/nextbestactions/customer/"+customer.ID.String()+"/pending", nil)
	var pending []models.NextBestAction
	decodeData(t, w, &pending)
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
}

func TestSentimentAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter(t)
	customer := createCustomer(t, router, "sent@example.com", "Retail")

	w := doJSON(t, router, http.MethodPost, "/api/sentimentanalysis/analyze", map[string]any{
		"customer_id": customer.ID,
		"text":        "Thank you for the excellent service",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("analyze: status %d body %s", w.Code, w.Body.String())
	}

	var analysis models.SentimentAnalysis
	decodeData(t, w, &analysis)

	if analysis.SentimentType != models.SentimentPositive {
		t.Fatalf("sentiment = %s", analysis.SentimentType)
	}
	if analysis.SentimentScore != 0.8 {
		t.Fatalf("score = %v", analysis.SentimentScore)
	}
	if analysis.KeyPhrases != "Thank, you, for, the, excellent" {
		t.Fatalf("key phrases = %q", analysis.KeyPhrases)
	}
}

func TestUSSDHandleEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/ussd/handle", map[string]any{
		"session_id":   "gw-1",
		"phone_number": "+254711000000",
		"text":         "",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("handle: status %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		SessionID  string `json:"session_id"`
		Message    string `json:"message"`
		EndSession bool   `json:"end_session"`
	}
	decodeData(t, w, &resp)

	if resp.EndSession {
		t.Fatal("blank input should keep the session open")
	}

	w = doJSON(t, router, http.MethodPost, "/api/ussd/handle", map[string]any{
		"session_id":   "gw-1",
		"phone_number": "+254711000000",
		"text":         "1",
	})
	decodeData(t, w, &resp)

	if !resp.EndSession {
		t.Fatal("balance check should end the session")
	}
}

func TestWhatsAppSendAndWebhook(t *testing.T) {
	router := newTestRouter(t)
	customer := createCustomer(t, router, "wa@example.com", "Retail")

	w := doJSON(t, router, http.MethodPost, "/api/whatsapp/send", map[string]any{
		"customer_id":  customer.ID,
		"phone_number": "+254722000000",
		"content":      "Your statement is ready",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("send: status %d body %s", w.Code, w.Body.String())
	}

	var message models.WhatsAppMessage
	decodeData(t, w, &message)

	if message.Status != models.MessageSent {
		t.Fatalf("status = %s", message.Status)
	}
	if message.WhatsAppMessageID == nil {
		t.Fatal("provider id not assigned")
	}

	w = doJSON(t, router, http.MethodPost, "/api/whatsapp/webhook", map[string]any{
		"whatsapp_message_id": *message.WhatsAppMessageID,
		"status":              "Delivered",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("webhook: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/whatsapp/"+message.ID.String(), nil)
	var updated models.WhatsAppMessage
	decodeData(t, w, &updated)
	if updated.Status != models.MessageDelivered {
		t.Fatalf("status = %s, want Delivered", updated.Status)
	}
	if updated.DeliveredAt == nil {
		t.Fatal("DeliveredAt not stamped")
	}

	// Unknown provider IDs are acknowledged, not errored.
	w = doJSON(t, router, http.MethodPost, "/api/whatsapp/webhook", map[string]any{
		"whatsapp_message_id": "wamid.unknown",
		"status":              "Read",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("unknown webhook: status %d", w.Code)
	}
}

func TestReportTemplateLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/reports/templates", map[string]any{
		"name":        "Monthly Portfolio",
		"report_type": "CustomerSummary",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create template: status %d body %s", w.Code, w.Body.String())
	}
	var template models.ReportTemplate
	decodeData(t, w, &template)
	if template.DefaultFormat != models.FormatPDF {
		t.Fatalf("default format = %q, want PDF", template.DefaultFormat)
	}

	w = doJSON(t, router, http.MethodPut, "/api/reports/templates/"+template.ID.String(), map[string]any{
		"name":           "Monthly Portfolio v2",
		"default_format": "CSV",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update template: status %d body %s", w.Code, w.Body.String())
	}
	var updated models.ReportTemplate
	decodeData(t, w, &updated)
	if updated.Name != "Monthly Portfolio v2" || updated.DefaultFormat != models.FormatCSV {
		t.Fatalf("update not applied: %+v", updated)
	}

	w = doJSON(t, router, http.MethodPost, "/api/reports/schedules", map[string]any{
		"report_template_id": template.ID.String(),
		"name":               "Weekly run",
		"frequency":          "Weekly",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create schedule: status %d body %s", w.Code, w.Body.String())
	}
	var schedule models.ReportSchedule
	decodeData(t, w, &schedule)

	w = doJSON(t, router, http.MethodPost, "/api/reports/schedules/"+schedule.ID.String()+"/run", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("run schedule: status %d body %s", w.Code, w.Body.String())
	}
	var generated models.GeneratedReport
	decodeData(t, w, &generated)
	if generated.RecordCount != 250 {
		t.Fatalf("record count = %d, want 250", generated.RecordCount)
	}
	if generated.Format != models.FormatCSV {
		t.Fatalf("format = %q, want CSV from schedule output", generated.Format)
	}

	w = doJSON(t, router, http.MethodGet, "/api/reports/schedules", nil)
	var schedules []models.ReportSchedule
	decodeData(t, w, &schedules)
	if len(schedules) != 1 || schedules[0].LastRunDate == nil {
		t.Fatalf("schedule run dates not stamped: %+v", schedules)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/reports/templates/"+template.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete template: status %d body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodGet, "/api/reports/templates/"+template.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted template fetch: status %d, want 404", w.Code)
	}
}

func TestAnalyticsDateRange(t *testing.T) {
	router := newTestRouter(t)
	createCustomer(t, router, "range@example.com", "Retail")

	w := doJSON(t, router, http.MethodGet, "/api/analytics/customers?end=2000-01-01T00:00:00Z", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("range query: status %d body %s", w.Code, w.Body.String())
	}
	var out struct {
		TotalCustomers int `json:"total_customers"`
	}
	decodeData(t, w, &out)
	if out.TotalCustomers != 0 {
		t.Fatalf("customers before 2000 = %d, want 0", out.TotalCustomers)
	}

	w = doJSON(t, router, http.MethodGet, "/api/analytics/customers?start=bogus", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad start bound: status %d, want 400", w.Code)
	}
}

func TestCampaignEnrollment(t *testing.T) {
	router := newTestRouter(t)
	customer := createCustomer(t, router, "camp@example.com", "Retail")

	w := doJSON(t, router, http.MethodPost, "/api/campaigns", map[string]any{
		"name":           "Premium Savings Push",
		"target_segment": "Retail",
		"start_date":     "2026-01-01T00:00:00Z",
		"end_date":       "2026-03-31T00:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create campaign: status %d body %s", w.Code, w.Body.String())
	}
	var campaign models.Campaign
	decodeData(t, w, &campaign)

	w = doJSON(t, router, http.MethodPost,
		"/api/campaigns/"+campaign.ID.String()+"/customers/"+customer.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("enroll: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet,
		"/api/campaigns/"+campaign.ID.String()+"/customers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list customers: status %d body %s", w.Code, w.Body.String())
	}
	var enrolled []models.Customer
	decodeData(t, w, &enrolled)
	if len(enrolled) != 1 {
		t.Fatalf("enrolled count = %d, want 1", len(enrolled))
	}
	if enrolled[0].ID != customer.ID {
		t.Fatalf("enrolled customer = %s, want %s", enrolled[0].ID, customer.ID)
	}

	w = doJSON(t, router, http.MethodPost,
		"/api/campaigns/"+uuid.New().String()+"/customers/"+customer.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("enroll into missing campaign: status %d, want 404", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: status %d", w.Code)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	router := newTestRouter(t)
	createCustomer(t, router, "dash@example.com", "Retail")

	w := doJSON(t, router, http.MethodGet, "/api/analytics/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: status %d body %s", w.Code, w.Body.String())
	}

	var dash struct {
		Customers struct {
			TotalCustomers int `json:"total_customers"`
		} `json:"customers"`
	}
	decodeData(t, w, &dash)

	if dash.Customers.TotalCustomers != 1 {
		t.Fatalf("total customers = %d, want 1", dash.Customers.TotalCustomers)
	}
}
