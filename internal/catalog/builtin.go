package catalog

// Built-in template ids, in display order.
const (
	BuiltinAppGeneral    = "app-general"
	BuiltinOutOfHours    = "reservas-fuera-horario"
	BuiltinNoCompetition = "sin-competencia"
)

type builtin struct {
	id       string
	labels   map[string]string
	messages map[string]string
}

func (b builtin) label(lang string) string {
	return localized(b.labels, lang)
}

func (b builtin) message(lang string) string {
	return localized(b.messages, lang)
}

var builtinOrder = []string{BuiltinAppGeneral, BuiltinOutOfHours, BuiltinNoCompetition}

var builtins = map[string]builtin{
	BuiltinAppGeneral: {
		id: BuiltinAppGeneral,
		labels: map[string]string{
			"es": "App de Reservas (General)",
			"ca": "App de Reserves (General)",
		},
		messages: map[string]string{
			"es": msgAppGeneralES,
			"ca": msgAppGeneralCA,
		},
	},
	BuiltinOutOfHours: {
		id: BuiltinOutOfHours,
		labels: map[string]string{
			"es": "Reservas Fuera de Horario",
			"ca": "Reserves Fora d'Horari",
		},
		messages: map[string]string{
			"es": msgOutOfHoursES,
			"ca": msgOutOfHoursCA,
		},
	},
	BuiltinNoCompetition: {
		id: BuiltinNoCompetition,
		labels: map[string]string{
			"es": "Sin Competencia",
			"ca": "Sense Competència",
		},
		messages: map[string]string{
			"es": msgNoCompetitionES,
			"ca": msgNoCompetitionCA,
		},
	},
}

const msgAppGeneralES = `Hola {{name}}

Soy {{agent}} de Exora. Vi que te interesó nuestro video sobre la app de reservas.

Te entiendo perfectamente: perder reservas fuera de horario o compartir app con tu competencia es frustrante.

Por eso Exora es diferente:
✓ Tu propia app, con tu logo y tu marca
✓ Reservas 24/7 automáticas (sin perder ni una)
✓ Cobros online integrados
✓ 0 competencia, solo tu negocio

Y lo mejor: 15 días gratis para probarlo sin compromiso.

¿Hablamos? Agenda aquí cuando te venga bien:
https://hablaconunexperto.exora.app

O entra directamente en https://exora.app, te registras en 5 minutos y yo me encargo de ayudarte con toda la configuración.

¿Te animas?`

const msgOutOfHoursES = `Hola {{name}}

Soy {{agent}} de Exora. Vi que te interesó nuestro video sobre las reservas fuera de horario.

Imagino lo frustrante que es: pierdes el 40% de las reservas porque llaman cuando estás cerrado... y el otro 60% te interrumpe mientras estás con otro cliente. Tijeras en mano, teléfono sonando.

Con Exora esto se acabó:
✓ Reservas automáticas 24/7 (capturas ese 40% perdido)
✓ Cero interrupciones mientras trabajas
✓ Cobros online integrados
✓ Tu propia app, con tu marca

Resultado: más reservas, menos estrés, más tiempo para lo que importa.

15 días gratis para probarlo, sin compromiso.

¿Hablamos? Agenda aquí cuando te venga bien: https://hablaconunexperto.exora.app

O entra directamente en https://exora.app, te registras en 5 minutos y yo me encargo de ayudarte con toda la configuración.

¿Te animas?`

const msgNoCompetitionES = `Hola {{name}}

Soy {{agent}} de Exora. Vi que te interesó nuestro video sobre dejar de compartir app con tu competencia.

Te entiendo: trabajas duro para fidelizar a tus clientes... y luego entran en una app donde ven otras 10 barberías/peluquerías. Un clic y los pierdes.

¿Por qué regalar lo que tanto te costó conseguir?

Con Exora:
✓ Tu propia app, solo tu negocio
✓ Tu logo, tu marca, tu identidad
✓ 0 competencia dentro
✓ Tus clientes son tuyos, siempre
✓ Reservas y cobros 100% bajo tu control

Tu marca merece brillar sola, no escondida entre otras.

15 días gratis para probarlo, sin compromiso.

¿Hablamos? Agenda aquí cuando te venga bien: https://hablaconunexperto.exora.app

O entra directamente en https://exora.app, te registras en 5 minutos y yo me encargo de ayudarte con toda la configuración.

¿Te animas?`

const msgAppGeneralCA = `Hola {{name}}

Sóc en {{agent}} d'Exora. He vist que t'ha interessat el nostre vídeo sobre l'app de reserves.

T'entenc perfectament: perdre reserves fora d'horari o compartir app amb la teva competència és frustrant.

Per això Exora és diferent:
✓ La teva pròpia app, amb el teu logo i la teva marca
✓ Reserves 24/7 automàtiques (sense perdre'n ni una)
✓ Cobraments online integrats
✓ 0 competència, només el teu negoci

I el millor: 15 dies gratis per provar-ho sense compromís.

Parlem? Agenda aquí quan et vagi bé:
https://hablaconunexperto.exora.app

O entra directament a https://exora.app, et registres en 5 minuts i jo m'encarrego d'ajudar-te amb tota la configuració.

T'animes?`

const msgOutOfHoursCA = `Hola {{name}}

Sóc en {{agent}} d'Exora. He vist que t'ha interessat el nostre vídeo sobre les reserves fora d'horari.

M'imagino el frustrant que és: perds el 40% de les reserves perquè truquen quan estàs tancat... i l'altre 60% t'interromp mentre estàs amb un altre client. Tisores a la mà, telèfon sonant.

Amb Exora això s'ha acabat:
✓ Reserves automàtiques 24/7 (captures aquest 40% perdut)
✓ Zero interrupcions mentre treballes
✓ Cobraments online integrats
✓ La teva pròpia app, amb la teva marca

Resultat: més reserves, menys estrès, més temps per al que importa.

15 dies gratis per provar-ho, sense compromís.

Parlem? Agenda aquí quan et vagi bé: https://hablaconunexperto.exora.app

O entra directament a https://exora.app, et registres en 5 minuts i jo m'encarrego d'ajudar-te amb tota la configuració.

T'animes?`

const msgNoCompetitionCA = `Hola {{name}}

Sóc en {{agent}} d'Exora. He vist que t'ha interessat el nostre vídeo sobre deixar de compartir app amb la teva competència.

T'entenc: treballes dur per fidelitzar els teus clients... i després entren en una app on veuen altres 10 barberies/perruqueries. Un clic i els perds.

Per què regalar el que tant et va costar aconseguir?

Amb Exora:
✓ La teva pròpia app, només el teu negoci
✓ El teu logo, la teva marca, la teva identitat
✓ 0 competència dins
✓ Els teus clients són teus, sempre
✓ Reserves i cobraments 100% sota el teu control

La teva marca mereix brillar sola, no amagada entre d'altres.

15 dies gratis per provar-ho, sense compromís.

Parlem? Agenda aquí quan et vagi bé: https://hablaconunexperto.exora.app

O entra directament a https://exora.app, et registres en 5 minuts i jo m'encarrego d'ajudar-te amb tota la configuració.

T'animes?`
