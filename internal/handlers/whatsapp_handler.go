package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"leadcomposer/internal/links"
	"leadcomposer/internal/whatsapp"
	"leadcomposer/pkg/logging"
)

// Messenger is the linked WhatsApp account used for direct sends.
type Messenger interface {
	Status() whatsapp.Status
	Connect() error
	ClearSession() error
	SendText(ctx context.Context, digits, text string) (string, error)
	CheckNumbers(ctx context.Context, phones []string) (map[string]bool, error)
}

// WhatsAppHandler sends composed lead messages through the linked account
// instead of the wa.me link.
type WhatsAppHandler struct {
	ws     *Workspace
	client Messenger
	logger *logging.Logger
}

func NewWhatsAppHandler(ws *Workspace, client Messenger, logger *logging.Logger) *WhatsAppHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &WhatsAppHandler{ws: ws, client: client, logger: logger}
}

type StatusResponse struct {
	whatsapp.Status
	Message string `json:"message"`
}

type SendMessageResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ID          string `json:"id,omitempty"`
	SentMessage string `json:"sent_message,omitempty"`
}

type CheckRequest struct {
	Phones []string `json:"phones"`
}

type CheckResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Results map[string]bool `json:"results"`
}

// HandleStatus handles GET /api/whatsapp/status
func (h *WhatsAppHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	status := h.client.Status()
	response := StatusResponse{Status: status, Message: "WhatsApp client connected"}

	if !status.Connected {
		switch {
		case status.Connecting:
			response.Message = "WhatsApp session restoring..."
		case status.HasSession:
			response.Message = "Session exists, attempting to connect..."
		default:
			response.Message = "No session - QR code scan required"
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// HandleConnect handles POST /api/whatsapp/connect
func (h *WhatsAppHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	if h.client.Status().Connected {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Already connected to WhatsApp",
		})
		return
	}

	if err := h.client.Connect(); err != nil {
		h.logger.Error().Err(err).Msg("whatsapp connect failed")
		jsonError(w, fmt.Sprintf("Failed to connect: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Connection initiated - scan the QR code if one appears",
	})
}

// HandleDisconnect handles POST /api/whatsapp/disconnect. The stored session
// is cleared so the next connect asks for a fresh QR scan.
func (h *WhatsAppHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.client.ClearSession(); err != nil {
		jsonError(w, fmt.Sprintf("Failed to disconnect: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "WhatsApp disconnected and session cleared",
	})
}

// HandleSend handles POST /api/leads/{id}/send
func (h *WhatsAppHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	h.ws.mu.Lock()
	lang := h.ws.language()
	lead, err := h.ws.list.Get(chi.URLParam(r, "id"))
	if err == nil {
		err = links.Validate(lead)
	}
	agent := h.ws.list.Settings().AgentName
	h.ws.mu.Unlock()

	if err != nil {
		writeError(w, err, lang)
		return
	}

	text := links.Compose(lead, agent)
	id, err := h.client.SendText(r.Context(), links.Digits(lead.Phone), text)
	if err != nil {
		h.logger.Error().Err(err).Str("lead_id", lead.ID).Msg("direct send failed")
		writeError(w, err, lang)
		return
	}

	writeJSON(w, http.StatusOK, SendMessageResponse{
		Success:     true,
		Message:     "Message sent successfully",
		ID:          id,
		SentMessage: text,
	})
}

// HandleCheck handles POST /api/whatsapp/check. Without explicit phones it
// checks every lead that has one.
func (h *WhatsAppHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	h.ws.mu.Lock()
	lang := h.ws.language()
	if len(req.Phones) == 0 {
		for _, lead := range h.ws.list.Leads() {
			if strings.TrimSpace(lead.Phone) != "" {
				req.Phones = append(req.Phones, lead.Phone)
			}
		}
	}
	h.ws.mu.Unlock()

	phones := make([]string, 0, len(req.Phones))
	seen := make(map[string]bool, len(req.Phones))
	for _, phone := range req.Phones {
		digits := links.Digits(phone)
		if digits == "" || seen[digits] {
			continue
		}
		seen[digits] = true
		phones = append(phones, digits)
	}

	results, err := h.client.CheckNumbers(r.Context(), phones)
	if err != nil {
		writeError(w, err, lang)
		return
	}

	writeJSON(w, http.StatusOK, CheckResponse{
		Success: true,
		Message: fmt.Sprintf("Checked %d numbers", len(phones)),
		Results: results,
	})
}
