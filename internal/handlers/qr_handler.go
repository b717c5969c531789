package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"leadcomposer/internal/links"
)

// QRHandler holds the latest pairing code whatsmeow emitted for linking the
// device.
type QRHandler struct {
	mu        sync.RWMutex
	currentQR string
}

func NewQRHandler() *QRHandler {
	return &QRHandler{}
}

type QRResponse struct {
	QRCode    string `json:"qr_code"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

func (h *QRHandler) SetQR(qrCode string) {
	h.mu.Lock()
	h.currentQR = qrCode
	h.mu.Unlock()
}

func (h *QRHandler) ClearQR() {
	h.SetQR("")
}

func (h *QRHandler) current() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.currentQR
}

// HandleGetQR handles GET /api/whatsapp/qr
func (h *QRHandler) HandleGetQR(w http.ResponseWriter, r *http.Request) {
	code := h.current()
	if code == "" {
		writeJSON(w, http.StatusOK, QRResponse{
			Available: false,
			Message:   "No QR code available. Try connecting to WhatsApp first.",
		})
		return
	}

	writeJSON(w, http.StatusOK, QRResponse{
		QRCode:    code,
		Available: true,
		Message:   "QR code ready for scanning",
	})
}

// HandleQRImage handles GET /api/whatsapp/qr.png
func (h *QRHandler) HandleQRImage(w http.ResponseWriter, r *http.Request) {
	code := h.current()
	if code == "" {
		http.Error(w, "No QR code available. Try connecting to WhatsApp first.", http.StatusNotFound)
		return
	}

	qrBytes, err := links.QRCode(code, links.DefaultQRSize)
	if err != nil {
		http.Error(w, "Failed to generate QR code image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(qrBytes)))
	w.Write(qrBytes)
}
