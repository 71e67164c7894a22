package whatsapp

import (
	"wekeza-crm/internal/models"
	"wekeza-crm/internal/pkg/ident"
)

// SendOutcome is what the messaging provider reports for an outbound send.
type SendOutcome struct {
	ProviderMessageID string
	Err               error
}

// Transport delivers outbound messages. The default implementation
// simulates the provider and always succeeds.
type Transport interface {
	Send(message *models.WhatsAppMessage) SendOutcome
}

// SimulatedTransport fabricates provider message IDs and reports
// immediate success.
type SimulatedTransport struct {
	gen ident.Generator
}

func NewSimulatedTransport(gen ident.Generator) *SimulatedTransport {
	return &SimulatedTransport{gen: gen}
}

func (t *SimulatedTransport) Send(message *models.WhatsAppMessage) SendOutcome {
	return SendOutcome{ProviderMessageID: t.gen.ProviderMessageID("wamid")}
}
