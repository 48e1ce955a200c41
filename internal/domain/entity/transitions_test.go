package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de órdenes de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransitionPO_Permitidas(t *testing.T) {
	permitidas := [][2]string{
		{entity.POStatusDraft, entity.POStatusSent},
		{entity.POStatusDraft, entity.POStatusCancelled},
		{entity.POStatusSent, entity.POStatusPartial},
		{entity.POStatusSent, entity.POStatusReceived},
		{entity.POStatusSent, entity.POStatusCancelled},
		{entity.POStatusPartial, entity.POStatusPartial}, // recepciones sucesivas
		{entity.POStatusPartial, entity.POStatusReceived},
	}
	for _, tc := range permitidas {
		assert.True(t, entity.CanTransitionPO(tc[0], tc[1]), "%s -> %s debe permitirse", tc[0], tc[1])
	}
}

func TestCanTransitionPO_Prohibidas(t *testing.T) {
	prohibidas := [][2]string{
		{entity.POStatusDraft, entity.POStatusReceived},  // recibir sin enviar
		{entity.POStatusDraft, entity.POStatusPartial},
		{entity.POStatusPartial, entity.POStatusCancelled}, // con mercancía recibida no se cancela
		{entity.POStatusReceived, entity.POStatusSent},
		{entity.POStatusReceived, entity.POStatusCancelled},
		{entity.POStatusCancelled, entity.POStatusSent},
	}
	for _, tc := range prohibidas {
		assert.False(t, entity.CanTransitionPO(tc[0], tc[1]), "%s -> %s debe rechazarse", tc[0], tc[1])
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de cotizaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransitionQuotation_Permitidas(t *testing.T) {
	permitidas := [][2]string{
		{entity.QuotationStatusDraft, entity.QuotationStatusSent},
		{entity.QuotationStatusSent, entity.QuotationStatusAccepted},
		{entity.QuotationStatusSent, entity.QuotationStatusRejected},
		{entity.QuotationStatusAccepted, entity.QuotationStatusConverted},
	}
	for _, tc := range permitidas {
		assert.True(t, entity.CanTransitionQuotation(tc[0], tc[1]), "%s -> %s debe permitirse", tc[0], tc[1])
	}
}

func TestCanTransitionQuotation_Prohibidas(t *testing.T) {
	prohibidas := [][2]string{
		{entity.QuotationStatusDraft, entity.QuotationStatusAccepted}, // saltarse el envío
		{entity.QuotationStatusDraft, entity.QuotationStatusConverted},
		{entity.QuotationStatusSent, entity.QuotationStatusConverted}, // convertir sin aceptar
		{entity.QuotationStatusRejected, entity.QuotationStatusAccepted},
		{entity.QuotationStatusConverted, entity.QuotationStatusDraft},
	}
	for _, tc := range prohibidas {
		assert.False(t, entity.CanTransitionQuotation(tc[0], tc[1]), "%s -> %s debe rechazarse", tc[0], tc[1])
	}
}
