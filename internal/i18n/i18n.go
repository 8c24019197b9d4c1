// Package i18n translates user-facing error messages. The locale comes from
// the Accept-Language header.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale or key is not found, and to the
// key itself as a last resort.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supported reports whether locale has a message table.
func (t *Translator) Supported(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// e.g. "en-US,en;q=0.9,pt;q=0.8": only the first preference is honoured
	first := strings.Split(acceptLang, ",")[0]
	lang := strings.TrimSpace(strings.Split(first, ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supported(lang) {
		return lang
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		"error.invalid_request":      "Invalid request",
		"error.invalid_request_body": "Invalid request body",
		"error.internal_error":       "An unexpected error occurred",
		"error.unauthorized":         "Unauthorized",
		"error.api_key_required":     "API key is required",
		"error.invalid_api_key":      "Invalid API key",
		"error.forbidden":            "Forbidden",
		"error.not_found":            "Not found",
		"error.rate_limit_exceeded":  "Too many requests, please try again later",
		"error.invalid_token":        "Invalid or expired token",
		"error.token_required":       "Authentication token is required",
		"error.timeout":              "Request timeout",

		"error.validation":                "Invalid allocation request",
		"error.validation.total_quantity": "Quantity must be greater than zero",
		"error.validation.label_count":    "Label count must be greater than zero and within the allowed maximum",
		"error.validation.quantity":       "Label quantity must not be negative",
		"error.validation.index":          "Label does not exist or cannot be edited",
		"error.validation.strategy":       "Unknown allocation strategy",
		"error.validation.context_parts":  "At least one record identifier is required",
		"error.capacity_exceeded":         "Label quantities would exceed the requested total",
		"error.reconciliation_failed":     "Label quantities do not add up to the requested total",
		"error.invalid_transition":        "This action is not allowed in the current workflow state",
		"error.workflow_not_found":        "Print workflow not found or expired",
		"error.batch_not_found":           "Print batch not found",
		"error.counter_unavailable":       "Serial counters are temporarily unavailable, please retry",
		"error.sink_unavailable":          "Print batches cannot be saved right now, please retry",
		"error.submission_rejected":       "The print batch was rejected",
	},
	"pt": {
		"error.invalid_request":      "Requisição inválida",
		"error.invalid_request_body": "Corpo da requisição inválido",
		"error.internal_error":       "Ocorreu um erro inesperado",
		"error.unauthorized":         "Não autorizado",
		"error.api_key_required":     "Chave de API é obrigatória",
		"error.invalid_api_key":      "Chave de API inválida",
		"error.forbidden":            "Proibido",
		"error.not_found":            "Não encontrado",
		"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
		"error.invalid_token":        "Token inválido ou expirado",
		"error.token_required":       "Token de autenticação é obrigatório",
		"error.timeout":              "Tempo limite da requisição excedido",

		"error.validation":                "Pedido de alocação inválido",
		"error.validation.total_quantity": "A quantidade deve ser maior que zero",
		"error.validation.label_count":    "O número de etiquetas deve ser maior que zero e dentro do máximo permitido",
		"error.validation.quantity":       "A quantidade da etiqueta não pode ser negativa",
		"error.validation.index":          "A etiqueta não existe ou não pode ser editada",
		"error.validation.strategy":       "Estratégia de alocação desconhecida",
		"error.validation.context_parts":  "É necessário pelo menos um identificador do registro",
		"error.capacity_exceeded":         "As quantidades das etiquetas excederiam o total solicitado",
		"error.reconciliation_failed":     "As quantidades das etiquetas não somam o total solicitado",
		"error.invalid_transition":        "Esta ação não é permitida no estado atual do fluxo",
		"error.workflow_not_found":        "Fluxo de impressão não encontrado ou expirado",
		"error.batch_not_found":           "Lote de impressão não encontrado",
		"error.counter_unavailable":       "Os contadores de série estão indisponíveis, tente novamente",
		"error.sink_unavailable":          "Não é possível salvar lotes de impressão agora, tente novamente",
		"error.submission_rejected":       "O lote de impressão foi rejeitado",
	},
	"nl": {
		"error.invalid_request":      "Ongeldig verzoek",
		"error.invalid_request_body": "Ongeldige aanvraag body",
		"error.internal_error":       "Er is een onverwachte fout opgetreden",
		"error.unauthorized":         "Niet geautoriseerd",
		"error.api_key_required":     "API-sleutel is vereist",
		"error.invalid_api_key":      "Ongeldige API-sleutel",
		"error.forbidden":            "Verboden",
		"error.not_found":            "Niet gevonden",
		"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
		"error.invalid_token":        "Ongeldig of verlopen token",
		"error.token_required":       "Authenticatietoken is vereist",
		"error.timeout":              "Time-out van het verzoek",

		"error.validation":                "Ongeldige toewijzingsaanvraag",
		"error.validation.total_quantity": "Hoeveelheid moet groter zijn dan nul",
		"error.validation.label_count":    "Aantal labels moet groter zijn dan nul en binnen het toegestane maximum",
		"error.validation.quantity":       "Labelhoeveelheid mag niet negatief zijn",
		"error.validation.index":          "Label bestaat niet of kan niet worden bewerkt",
		"error.validation.strategy":       "Onbekende toewijzingsstrategie",
		"error.validation.context_parts":  "Minstens één record-ID is vereist",
		"error.capacity_exceeded":         "Labelhoeveelheden zouden het gevraagde totaal overschrijden",
		"error.reconciliation_failed":     "Labelhoeveelheden tellen niet op tot het gevraagde totaal",
		"error.invalid_transition":        "Deze actie is niet toegestaan in de huidige status van de workflow",
		"error.workflow_not_found":        "Printworkflow niet gevonden of verlopen",
		"error.batch_not_found":           "Printbatch niet gevonden",
		"error.counter_unavailable":       "Serienummertellers zijn tijdelijk niet beschikbaar, probeer opnieuw",
		"error.sink_unavailable":          "Printbatches kunnen nu niet worden opgeslagen, probeer opnieuw",
		"error.submission_rejected":       "De printbatch is geweigerd",
	},
}
