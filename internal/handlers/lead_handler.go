package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"leadcomposer/internal/leads"
	"leadcomposer/internal/links"
	"leadcomposer/pkg/logging"
)

// LeadHandler serves the lead list, the shared settings and the outbound links.
type LeadHandler struct {
	ws     *Workspace
	logger *logging.Logger
}

func NewLeadHandler(ws *Workspace, logger *logging.Logger) *LeadHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &LeadHandler{ws: ws, logger: logger}
}

type StateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	State
}

type LeadResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Lead    LeadView `json:"lead"`
}

type LinkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

type ShortcutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	links.Batch
}

// HandleState handles GET /api/state
func (h *LeadHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	h.ws.mu.Lock()
	state := h.ws.state()
	h.ws.mu.Unlock()

	writeJSON(w, http.StatusOK, StateResponse{Success: true, Message: "ok", State: state})
}

// HandleAdd handles POST /api/leads
func (h *LeadHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	h.ws.mu.Lock()
	lead := h.ws.list.Add()
	view := h.ws.view(lead)
	h.ws.mu.Unlock()

	h.logger.Debug().Str("lead_id", lead.ID).Msg("lead added")
	writeJSON(w, http.StatusCreated, LeadResponse{Success: true, Message: "Lead added", Lead: view})
}

// HandleRemove handles DELETE /api/leads/{id}
func (h *LeadHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.ws.mu.Lock()
	err := h.ws.list.Remove(id)
	lang := h.ws.language()
	h.ws.mu.Unlock()

	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Lead removed",
	})
}

// HandleUpdateField handles PUT /api/leads/{id}/{field} for name, phone,
// template and message.
func (h *LeadHandler) HandleUpdateField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	field := chi.URLParam(r, "field")

	var req ValueRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.ws.mu.Lock()
	defer h.ws.mu.Unlock()

	var (
		lead leads.Lead
		err  error
	)
	switch field {
	case "name":
		lead, err = h.ws.list.UpdateName(id, req.Value)
	case "phone":
		lead, err = h.ws.list.UpdatePhone(id, req.Value)
	case "template":
		lead, err = h.ws.list.UpdateTemplate(id, req.Value)
	case "message":
		lead, err = h.ws.list.UpdateMessage(id, req.Value)
	default:
		jsonError(w, fmt.Sprintf("Unknown lead field %q", field), http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, err, h.ws.language())
		return
	}

	writeJSON(w, http.StatusOK, LeadResponse{Success: true, Message: "Lead updated", Lead: h.ws.view(lead)})
}

// HandleLink handles GET /api/leads/{id}/link
func (h *LeadHandler) HandleLink(w http.ResponseWriter, r *http.Request) {
	link, lang, err := h.link(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, LinkResponse{Success: true, Message: "Link ready", Link: link})
}

// HandleQR handles GET /api/leads/{id}/qr.png
func (h *LeadHandler) HandleQR(w http.ResponseWriter, r *http.Request) {
	link, lang, err := h.link(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, lang)
		return
	}

	size := links.DefaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil && n > 0 && n <= 2048 {
			size = n
		}
	}

	png, err := links.QRCode(link, size)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to generate lead QR code")
		jsonError(w, "Failed to generate QR code image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Write(png)
}

func (h *LeadHandler) link(id string) (string, string, error) {
	h.ws.mu.Lock()
	defer h.ws.mu.Unlock()

	lang := h.ws.language()
	lead, err := h.ws.list.Get(id)
	if err != nil {
		return "", lang, err
	}
	link, err := links.WhatsAppLink(lead, h.ws.list.Settings().AgentName)
	return link, lang, err
}

// HandleShortcut handles POST /api/shortcut
func (h *LeadHandler) HandleShortcut(w http.ResponseWriter, r *http.Request) {
	h.ws.mu.Lock()
	settings := h.ws.list.Settings()
	batch, err := links.BuildBatch(h.ws.shortcutName, h.ws.list.Leads(), settings.AgentName)
	h.ws.mu.Unlock()

	if err != nil {
		writeError(w, err, settings.Language)
		return
	}

	h.logger.Info().Int("leads", batch.Count).Msg("shortcut batch built")
	writeJSON(w, http.StatusOK, ShortcutResponse{Success: true, Message: "Shortcut ready", Batch: batch})
}

// HandlePreview handles GET /api/preview
func (h *LeadHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	h.ws.mu.Lock()
	view := h.ws.view(h.ws.list.Preview())
	h.ws.mu.Unlock()

	writeJSON(w, http.StatusOK, LeadResponse{Success: true, Message: "ok", Lead: view})
}

// HandleLanguage handles PUT /api/settings/language
func (h *LeadHandler) HandleLanguage(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.ws.mu.Lock()
	defer h.ws.mu.Unlock()

	if err := h.ws.list.SetLanguage(req.Value); err != nil {
		writeError(w, err, h.ws.language())
		return
	}
	writeJSON(w, http.StatusOK, StateResponse{Success: true, Message: "Language updated", State: h.ws.state()})
}

// HandleAgent handles PUT /api/settings/agent
func (h *LeadHandler) HandleAgent(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.ws.mu.Lock()
	h.ws.list.SetAgentName(req.Value)
	settings := h.ws.list.Settings()
	h.ws.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Agent name updated",
		"settings": settings,
	})
}
