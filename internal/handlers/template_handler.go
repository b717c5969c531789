package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"leadcomposer/internal/catalog"
	"leadcomposer/internal/links"
	"leadcomposer/internal/template"
	"leadcomposer/pkg/logging"
)

// TemplateHandler serves the template catalog and the preset editor.
type TemplateHandler struct {
	ws     *Workspace
	logger *logging.Logger
}

func NewTemplateHandler(ws *Workspace, logger *logging.Logger) *TemplateHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &TemplateHandler{ws: ws, logger: logger}
}

type TemplateResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Template *catalog.Template `json:"template,omitempty"`
}

type TemplateListResponse struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message"`
	Templates []catalog.Entry    `json:"templates"`
	Custom    []catalog.Template `json:"custom"`
	Count     int                `json:"count"`
}

type TemplatePreviewRequest struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Agent   string `json:"agent"`
}

type TemplatePreviewResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Preview *template.PreviewResult `json:"preview,omitempty"`
}

// HandleList handles GET /api/templates
func (h *TemplateHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.ws.mu.Lock()
	lang := h.ws.language()
	if q := r.URL.Query().Get("lang"); q != "" {
		lang = catalog.NormalizeLanguage(q)
	}
	entries := h.ws.catalog.List(lang)
	custom := h.ws.editor.List()
	h.ws.mu.Unlock()

	writeJSON(w, http.StatusOK, TemplateListResponse{
		Success:   true,
		Message:   "ok",
		Templates: entries,
		Custom:    custom,
		Count:     len(entries),
	})
}

// HandleCreate handles POST /api/templates
func (h *TemplateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var draft catalog.Draft
	if err := decodeJSON(r, &draft); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.ws.mu.Lock()
	created, err := h.ws.editor.Create(draft)
	lang := h.ws.language()
	h.ws.mu.Unlock()

	if err != nil {
		h.logError(err, "create")
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusCreated, TemplateResponse{Success: true, Message: "Template created", Template: &created})
}

// HandleGet handles GET /api/templates/{id}
func (h *TemplateHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.ws.mu.Lock()
	t, err := h.ws.editor.Get(chi.URLParam(r, "id"))
	lang := h.ws.language()
	h.ws.mu.Unlock()

	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, TemplateResponse{Success: true, Message: "ok", Template: &t})
}

// HandleUpdate handles PUT /api/templates/{id}
func (h *TemplateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var draft catalog.Draft
	if err := decodeJSON(r, &draft); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.ws.mu.Lock()
	updated, err := h.ws.editor.Update(chi.URLParam(r, "id"), draft)
	lang := h.ws.language()
	h.ws.mu.Unlock()

	if err != nil {
		h.logError(err, "update")
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, TemplateResponse{Success: true, Message: "Template updated", Template: &updated})
}

// HandleDelete handles DELETE /api/templates/{id}. Leads already composed from
// the template keep their text.
func (h *TemplateHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.ws.mu.Lock()
	err := h.ws.editor.Delete(chi.URLParam(r, "id"))
	lang := h.ws.language()
	h.ws.mu.Unlock()

	if err != nil {
		h.logError(err, "delete")
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, TemplateResponse{Success: true, Message: "Template deleted"})
}

// HandlePreview handles POST /api/templates/preview
func (h *TemplateHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req TemplatePreviewRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	agent := strings.TrimSpace(req.Agent)
	if agent == "" {
		h.ws.mu.Lock()
		agent = h.ws.list.Settings().AgentName
		h.ws.mu.Unlock()
	}
	if agent == "" {
		agent = links.DefaultAgentName
	}

	preview := template.Preview(req.Message, map[string]string{
		template.NamePlaceholder:  strings.TrimSpace(req.Name),
		template.AgentPlaceholder: agent,
	})
	writeJSON(w, http.StatusOK, TemplatePreviewResponse{Success: true, Message: "ok", Preview: &preview})
}

func (h *TemplateHandler) logError(err error, op string) {
	h.logger.Warn().Err(err).Str("op", op).Msg("template change rejected")
}
