package handlers

import (
	"net/http"
	"strings"
)

// WebHandler serves the single-page lead form.
type WebHandler struct {
	whatsappEnabled bool
}

func NewWebHandler(whatsappEnabled bool) *WebHandler {
	return &WebHandler{whatsappEnabled: whatsappEnabled}
}

const sharedHead = `
<script src="https://cdn.tailwindcss.com"></script>
<script>
tailwind.config = {
    theme: {
        extend: {
            colors: {
                whatsapp: { 50: '#e8f8ef', 100: '#d1f1df', 500: '#25D366', 600: '#1ebe5d', 700: '#128C7E' }
            }
        }
    }
}
</script>
<style>
    @keyframes slideIn { from { transform: translateX(100%); opacity: 0; } to { transform: translateX(0); opacity: 1; } }
    @keyframes slideOut { from { transform: translateX(0); opacity: 1; } to { transform: translateX(100%); opacity: 0; } }
    .toast-enter { animation: slideIn 0.3s ease-out; }
    .toast-exit { animation: slideOut 0.2s ease-in forwards; }
</style>
`

const toastScript = `
const Toast = {
    container: null,
    init() {
        if (!this.container) {
            this.container = document.createElement('div');
            this.container.className = 'fixed top-4 right-4 z-50 flex flex-col gap-3 max-w-sm';
            document.body.appendChild(this.container);
        }
    },
    show(message, type = 'info', duration = 4000) {
        this.init();
        const colors = {
            success: 'border-green-500 bg-green-50',
            error: 'border-red-500 bg-red-50',
            info: 'border-blue-500 bg-blue-50'
        };
        const toast = document.createElement('div');
        toast.className = 'p-4 bg-white rounded-lg shadow-lg border-l-4 text-sm text-gray-700 ' + colors[type] + ' toast-enter';
        toast.textContent = message;
        toast.onclick = () => this.dismiss(toast);
        this.container.appendChild(toast);
        if (duration > 0) setTimeout(() => this.dismiss(toast), duration);
        return toast;
    },
    dismiss(toast) {
        if (toast && toast.parentElement) {
            toast.classList.remove('toast-enter');
            toast.classList.add('toast-exit');
            setTimeout(() => toast.remove(), 200);
        }
    },
    success(msg, dur) { return this.show(msg, 'success', dur); },
    error(msg, dur) { return this.show(msg, 'error', dur); },
    info(msg, dur) { return this.show(msg, 'info', dur); }
};
`

const formPage = `<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Lead Composer</title>
    ` + sharedHead + `
</head>
<body class="min-h-screen bg-gray-50">
    <div class="bg-gradient-to-br from-whatsapp-500 to-whatsapp-700 text-white">
        <div class="max-w-4xl mx-auto px-4 py-8 flex items-center justify-between">
            <h1 class="text-2xl font-bold">Lead Composer</h1>
            <div class="flex items-center gap-3">
                <input id="agent" placeholder="Agente" class="px-3 py-1.5 rounded text-gray-900 text-sm" onchange="setAgent(this.value)">
                <select id="language" class="px-3 py-1.5 rounded text-gray-900 text-sm" onchange="setLanguage(this.value)">
                    <option value="es">Castellano</option>
                    <option value="ca">Català</option>
                </select>
            </div>
        </div>
    </div>

    <div class="max-w-4xl mx-auto px-4 py-6 grid gap-6 md:grid-cols-3">
        <div class="md:col-span-2 space-y-4">
            <div id="leads" class="space-y-4"></div>
            <div class="flex gap-3">
                <button onclick="addLead()" class="px-4 py-2 bg-white border rounded-lg text-sm hover:bg-gray-100">+ Lead</button>
                <button onclick="runShortcut()" class="px-4 py-2 bg-whatsapp-600 text-white rounded-lg text-sm hover:bg-whatsapp-700">Shortcut</button>
                {{CHECK_BUTTON}}
            </div>
        </div>
        <div class="space-y-4">
            <div class="bg-white rounded-lg shadow p-4">
                <div class="flex items-center justify-between mb-2">
                    <h2 class="font-semibold text-gray-700">Vista previa</h2>
                    <span id="previewBadge" class="text-xs px-2 py-0.5 rounded bg-whatsapp-100 text-whatsapp-700"></span>
                </div>
                <p id="preview" class="whitespace-pre-wrap text-sm text-gray-700"></p>
            </div>
            <div class="bg-white rounded-lg shadow p-4 space-y-3">
                <h2 class="font-semibold text-gray-700">Plantillas</h2>
                <ul id="presets" class="space-y-2 text-sm"></ul>
                <form id="presetForm" class="space-y-2" onsubmit="savePreset(event)">
                    <input type="hidden" id="presetId">
                    <input id="presetName" placeholder="Nombre interno" class="w-full px-3 py-2 border rounded text-sm">
                    <select id="presetLang" class="w-full px-3 py-2 border rounded text-sm"
                        onchange="editPreset(document.getElementById('presetId').value)">
                        <option value="es">Castellano</option>
                        <option value="ca">Català</option>
                    </select>
                    <input id="presetLabel" placeholder="Etiqueta" class="w-full px-3 py-2 border rounded text-sm">
                    <textarea id="presetMessage" rows="5" placeholder="Hola {{name}}, soy {{agent}}"
                        class="w-full px-3 py-2 border rounded text-sm"></textarea>
                    <div class="flex gap-2">
                        <button type="submit" class="px-3 py-1.5 bg-whatsapp-600 text-white rounded text-sm">Guardar</button>
                        <button type="button" onclick="resetPreset()" class="px-3 py-1.5 border rounded text-sm">Nueva</button>
                    </div>
                </form>
            </div>
        </div>
    </div>

<script>
` + toastScript + `
const whatsappEnabled = {{WHATSAPP_ENABLED}};
let state = null;
let presets = [];

async function api(method, path, body) {
    const opts = { method, headers: {} };
    if (body !== undefined) {
        opts.headers['Content-Type'] = 'application/json';
        opts.body = JSON.stringify(body);
    }
    const res = await fetch(path, opts);
    const data = await res.json();
    if (!res.ok || !data.success) throw new Error(data.message || res.statusText);
    return data;
}

function escapeHtml(text) {
    const div = document.createElement('div');
    div.textContent = text || '';
    return div.innerHTML;
}

async function load() {
    try {
        state = await api('GET', '/api/state');
        const list = await api('GET', '/api/templates');
        presets = list.custom || [];
        render();
        renderPresets();
    } catch (e) {
        Toast.error(e.message);
    }
}

function render() {
    document.getElementById('language').value = state.settings.language;
    document.getElementById('agent').value = state.settings.agentName || '';
    document.getElementById('preview').textContent = state.preview.composedMessage;
    document.getElementById('previewBadge').textContent = state.preview.templateLabel;

    const options = state.templates.map(t =>
        '<option value="' + escapeHtml(t.id) + '">' + escapeHtml(t.label) + '</option>').join('');

    document.getElementById('leads').innerHTML = state.leads.map(lead => ` + "`" + `
        <div class="bg-white rounded-lg shadow p-4 space-y-3" data-id="${lead.id}">
            <div class="grid grid-cols-2 gap-3">
                <input class="px-3 py-2 border rounded text-sm" placeholder="Nombre" value="${escapeHtml(lead.name)}"
                    onchange="updateField('${lead.id}', 'name', this.value)">
                <input class="px-3 py-2 border rounded text-sm" placeholder="Teléfono" value="${escapeHtml(lead.phoneNumber)}"
                    onchange="updateField('${lead.id}', 'phone', this.value)">
            </div>
            <select class="w-full px-3 py-2 border rounded text-sm" onchange="updateField('${lead.id}', 'template', this.value)">${options}</select>
            <textarea rows="6" class="w-full px-3 py-2 border rounded text-sm"
                onchange="updateField('${lead.id}', 'message', this.value)">${escapeHtml(lead.customMessage)}</textarea>
            <div class="flex gap-2">
                <button onclick="openLink('${lead.id}')" ${lead.ready ? '' : 'disabled'}
                    class="px-3 py-1.5 bg-whatsapp-500 text-white rounded text-sm disabled:opacity-40">WhatsApp</button>
                <a href="/api/leads/${lead.id}/qr.png" target="_blank"
                    class="px-3 py-1.5 border rounded text-sm ${lead.ready ? '' : 'pointer-events-none opacity-40'}">QR</a>
                ${whatsappEnabled ? '<button onclick="sendDirect(\'' + lead.id + '\')" ' + (lead.ready ? '' : 'disabled') +
                    ' class="px-3 py-1.5 border rounded text-sm disabled:opacity-40">Enviar</button>' : ''}
                <button onclick="removeLead('${lead.id}')" ${state.leads.length > 1 ? '' : 'disabled'}
                    class="ml-auto px-3 py-1.5 text-red-600 text-sm disabled:opacity-40">Eliminar</button>
            </div>
        </div>` + "`" + `).join('');

    state.leads.forEach(lead => {
        document.querySelector('[data-id="' + lead.id + '"] select').value = lead.selectedTemplateId;
    });
}

async function mutate(fn) {
    try {
        await fn();
        await load();
    } catch (e) {
        Toast.error(e.message);
    }
}

function addLead() { mutate(() => api('POST', '/api/leads')); }
function removeLead(id) { mutate(() => api('DELETE', '/api/leads/' + id)); }
function updateField(id, field, value) { mutate(() => api('PUT', '/api/leads/' + id + '/' + field, { value })); }
function setLanguage(value) { mutate(() => api('PUT', '/api/settings/language', { value })); }
function setAgent(value) { mutate(() => api('PUT', '/api/settings/agent', { value })); }

function renderPresets() {
    const lang = state.settings.language;
    document.getElementById('presets').innerHTML = presets.length === 0
        ? '<li class="text-gray-400">Sin plantillas personalizadas</li>'
        : presets.map(p => '<li class="flex items-center gap-2">' +
            '<span class="flex-1 truncate">' + escapeHtml(p.label[lang] || p.label.es || p.internalName) + '</span>' +
            '<button type="button" onclick="editPreset(\'' + p.id + '\')" class="text-whatsapp-700">Editar</button>' +
            '<button type="button" onclick="deletePreset(\'' + p.id + '\')" class="text-red-600">Eliminar</button>' +
            '</li>').join('');
}

function editPreset(id) {
    const preset = presets.find(p => p.id === id);
    if (!preset) return;
    const lang = document.getElementById('presetLang').value;
    document.getElementById('presetId').value = preset.id;
    document.getElementById('presetName').value = preset.internalName;
    document.getElementById('presetLabel').value = preset.label[lang] || '';
    document.getElementById('presetMessage').value = preset.message[lang] || '';
}

function resetPreset() {
    document.getElementById('presetForm').reset();
    document.getElementById('presetId').value = '';
}

// Only the selected language is edited; other variants are sent back unchanged.
function savePreset(event) {
    event.preventDefault();
    const id = document.getElementById('presetId').value;
    const lang = document.getElementById('presetLang').value;
    const existing = presets.find(p => p.id === id) || { label: {}, message: {} };
    const label = Object.assign({}, existing.label);
    const message = Object.assign({}, existing.message);
    label[lang] = document.getElementById('presetLabel').value;
    message[lang] = document.getElementById('presetMessage').value;
    const draft = { internalName: document.getElementById('presetName').value, label, message };

    mutate(async () => {
        if (id) await api('PUT', '/api/templates/' + id, draft);
        else await api('POST', '/api/templates', draft);
        resetPreset();
        Toast.success('Plantilla guardada');
    });
}

function deletePreset(id) {
    if (!confirm('¿Eliminar la plantilla?')) return;
    mutate(() => api('DELETE', '/api/templates/' + id));
}

async function openLink(id) {
    try {
        const data = await api('GET', '/api/leads/' + id + '/link');
        window.open(data.link, '_blank');
    } catch (e) {
        Toast.error(e.message);
    }
}

async function runShortcut() {
    try {
        const data = await api('POST', '/api/shortcut');
        window.location.href = data.url;
    } catch (e) {
        Toast.error(e.message);
    }
}

async function sendDirect(id) {
    try {
        await api('POST', '/api/leads/' + id + '/send');
        Toast.success('Mensaje enviado');
    } catch (e) {
        Toast.error(e.message);
    }
}

async function checkNumbers() {
    try {
        const data = await api('POST', '/api/whatsapp/check');
        const missing = Object.keys(data.results).filter(p => !data.results[p]);
        if (missing.length === 0) Toast.success(data.message);
        else Toast.info('Sin WhatsApp: ' + missing.join(', '), 8000);
    } catch (e) {
        Toast.error(e.message);
    }
}

load();
</script>
</body>
</html>`

// HandlePage handles GET /
func (h *WebHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	checkButton := ""
	enabled := "false"
	if h.whatsappEnabled {
		checkButton = `<button onclick="checkNumbers()" class="px-4 py-2 bg-white border rounded-lg text-sm hover:bg-gray-100">Comprobar números</button>`
		enabled = "true"
	}

	html := strings.NewReplacer(
		"{{CHECK_BUTTON}}", checkButton,
		"{{WHATSAPP_ENABLED}}", enabled,
	).Replace(formPage)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}
