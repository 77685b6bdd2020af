// Package api is the wire contract with the PromoAgente backend: the chat
// endpoint, the health snapshot, the promotion history, and the promotion
// state envelope that rides along with every chat exchange.
package api

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	State     State  `json:"state"`
}

// ChatResponse is the backend's reply. Status mirrors the state's status field
// at the top level on newer backends; older builds only send the reply text.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status,omitempty"`
	State     State  `json:"state"`
}

// SystemStatus is the flat health snapshot from GET /status. Read-only.
type SystemStatus struct {
	SystemReady     bool   `json:"system_ready"`
	OpenAI          bool   `json:"openai"`
	OpenAIVersion   string `json:"openai_version"`
	OpenAIModel     string `json:"openai_model"`
	AgnoFramework   bool   `json:"agno_framework"`
	AgnoVersion     string `json:"agno_version"`
	Orchestrator    bool   `json:"orchestrator"`
	Extractor       bool   `json:"extractor"`
	Validator       bool   `json:"validator"`
	Summarizer      bool   `json:"summarizer"`
	MemoryManager   bool   `json:"memory_manager"`
	SQLiteDB        bool   `json:"sqlite_db"`
	MessagesStored  int    `json:"messages_stored"`
	PromotionsCount int    `json:"promotions_count"`
	Environment     string `json:"environment"`
}

// PromotionRecord is one promotion from GET /promotions. Read-only; field
// names follow the backend's Portuguese schema.
type PromotionRecord struct {
	ID            string `json:"id"`
	PromoID       string `json:"promo_id"`
	SessionID     string `json:"session_id"`
	Titulo        string `json:"titulo"`
	Mecanica      string `json:"mecanica"`
	Descricao     string `json:"descricao"`
	Segmentacao   string `json:"segmentacao"`
	PeriodoInicio string `json:"periodo_inicio"`
	PeriodoFim    string `json:"periodo_fim"`
	Condicoes     string `json:"condicoes"`
	Recompensas   string `json:"recompensas"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	SentAt        string `json:"sent_at"`
}
