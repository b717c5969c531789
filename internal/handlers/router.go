package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"leadcomposer/pkg/logging"
)

// RouterConfig wires the handlers into one router. WhatsApp and QR are nil
// when direct sending is disabled.
type RouterConfig struct {
	Logger    *logging.Logger
	Leads     *LeadHandler
	Templates *TemplateHandler
	Web       *WebHandler
	WhatsApp  *WhatsAppHandler
	QR        *QRHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(cfg.Logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "leadcomposer",
		})
	})
	r.Get("/", cfg.Web.HandlePage)

	r.Route("/api", func(api chi.Router) {
		api.Get("/state", cfg.Leads.HandleState)
		api.Get("/preview", cfg.Leads.HandlePreview)
		api.Post("/shortcut", cfg.Leads.HandleShortcut)

		api.Route("/settings", func(s chi.Router) {
			s.Put("/language", cfg.Leads.HandleLanguage)
			s.Put("/agent", cfg.Leads.HandleAgent)
		})

		api.Route("/leads", func(l chi.Router) {
			l.Post("/", cfg.Leads.HandleAdd)
			l.Route("/{id}", func(lead chi.Router) {
				lead.Delete("/", cfg.Leads.HandleRemove)
				lead.Get("/link", cfg.Leads.HandleLink)
				lead.Get("/qr.png", cfg.Leads.HandleQR)
				lead.Put("/{field}", cfg.Leads.HandleUpdateField)
				if cfg.WhatsApp != nil {
					lead.Post("/send", cfg.WhatsApp.HandleSend)
				}
			})
		})

		api.Route("/templates", func(t chi.Router) {
			t.Get("/", cfg.Templates.HandleList)
			t.Post("/", cfg.Templates.HandleCreate)
			t.Post("/preview", cfg.Templates.HandlePreview)
			t.Route("/{id}", func(tpl chi.Router) {
				tpl.Get("/", cfg.Templates.HandleGet)
				tpl.Put("/", cfg.Templates.HandleUpdate)
				tpl.Delete("/", cfg.Templates.HandleDelete)
			})
		})

		if cfg.WhatsApp != nil {
			api.Route("/whatsapp", func(wa chi.Router) {
				wa.Get("/status", cfg.WhatsApp.HandleStatus)
				wa.Post("/connect", cfg.WhatsApp.HandleConnect)
				wa.Post("/disconnect", cfg.WhatsApp.HandleDisconnect)
				wa.Post("/check", cfg.WhatsApp.HandleCheck)
				if cfg.QR != nil {
					wa.Get("/qr", cfg.QR.HandleGetQR)
					wa.Get("/qr.png", cfg.QR.HandleQRImage)
				}
			})
		}
	})

	return r
}
