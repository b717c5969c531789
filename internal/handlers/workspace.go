package handlers

import (
	"sync"

	"leadcomposer/internal/catalog"
	"leadcomposer/internal/leads"
	"leadcomposer/internal/links"
)

// Workspace is the single lead list and template catalog served over HTTP.
// The core types are not safe for concurrent use, so every handler holds mu
// while it touches them.
type Workspace struct {
	mu           sync.Mutex
	list         *leads.List
	catalog      *catalog.Catalog
	editor       *catalog.Editor
	shortcutName string
}

func NewWorkspace(list *leads.List, cat *catalog.Catalog, editor *catalog.Editor, shortcutName string) *Workspace {
	return &Workspace{
		list:         list,
		catalog:      cat,
		editor:       editor,
		shortcutName: shortcutName,
	}
}

// LeadView is a lead as the frontend renders it.
type LeadView struct {
	leads.Lead
	Ready           bool   `json:"ready"`
	TemplateLabel   string `json:"templateLabel"`
	ComposedMessage string `json:"composedMessage"`
}

// State is everything the form needs to draw itself.
type State struct {
	Settings  leads.Settings  `json:"settings"`
	Leads     []LeadView      `json:"leads"`
	Templates []catalog.Entry `json:"templates"`
	Preview   LeadView        `json:"preview"`
}

// view must be called with mu held.
func (ws *Workspace) view(lead leads.Lead) LeadView {
	settings := ws.list.Settings()
	return LeadView{
		Lead:            lead,
		Ready:           lead.Ready(),
		TemplateLabel:   ws.catalog.Label(lead.TemplateID, settings.Language),
		ComposedMessage: links.Compose(lead, settings.AgentName),
	}
}

// state must be called with mu held.
func (ws *Workspace) state() State {
	settings := ws.list.Settings()
	all := ws.list.Leads()
	views := make([]LeadView, 0, len(all))
	for _, lead := range all {
		views = append(views, ws.view(lead))
	}
	return State{
		Settings:  settings,
		Leads:     views,
		Templates: ws.catalog.List(settings.Language),
		Preview:   ws.view(ws.list.Preview()),
	}
}

// language must be called with mu held.
func (ws *Workspace) language() string {
	return ws.list.Settings().Language
}
