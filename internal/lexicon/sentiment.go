// Package lexicon holds the static keyword, pattern and gazetteer tables the
// analysis engines iterate over. Data only; no logic lives here.
package lexicon

// PositiveWords and NegativeWords drive the polarity counters.
var PositiveWords = []string{
	"excelente", "bueno", "buena", "genial", "perfecto", "perfecta",
	"encanta", "gusta", "interesa", "interesante", "increíble", "increible",
	"maravilloso", "maravillosa", "fantástico", "fantastico", "útil", "util",
	"fácil", "facil", "rápido", "rapido", "claro", "gracias", "contento",
	"contenta", "feliz", "satisfecho", "satisfecha", "recomiendo", "mejor",
	"agradable", "amable", "calidad", "ventaja", "beneficio", "me sirve",
}

var NegativeWords = []string{
	"malo", "mala", "terrible", "horrible", "pésimo", "pesimo", "peor",
	"caro", "cara", "costoso", "costosa", "lento", "lenta", "difícil",
	"dificil", "complicado", "complicada", "problema", "problemas", "error",
	"errores", "falla", "fallas", "molesto", "molesta", "decepcionado",
	"decepcionada", "frustrado", "frustrada", "confundido", "confundida",
	"no funciona", "no sirve", "no me gusta", "no me interesa", "desventaja",
	"queja", "reclamo", "engaño", "estafa",
}

// Intensifiers multiply the weight of an adjacent polarity match.
var Intensifiers = map[string]float64{
	"muy":            1.5,
	"mucho":          1.5,
	"muchísimo":      2.0,
	"muchisimo":      2.0,
	"demasiado":      1.8,
	"extremadamente": 2.0,
	"super":          1.5,
	"súper":          1.5,
	"totalmente":     1.7,
	"realmente":      1.4,
	"bastante":       1.3,
	"tan":            1.3,
}

// Negators flip the polarity of the following match.
var Negators = []string{"no", "nunca", "jamás", "jamas", "tampoco", "ni", "sin"}

// EmotionMarkers maps each named emotion to its marker phrases. An emotion's
// score is match density over these markers.
var EmotionMarkers = map[string][]string{
	"frustracion": {
		"frustrado", "frustrada", "frustrante", "harto", "harta", "cansado de",
		"cansada de", "no puedo más", "no puedo mas", "otra vez", "de nuevo el",
		"sigue fallando", "no funciona", "nadie me ayuda", "pérdida de tiempo",
		"perdida de tiempo",
	},
	"entusiasmo": {
		"me encanta", "excelente", "genial", "increíble", "increible",
		"perfecto", "qué bien", "que bien", "buenísimo", "buenisimo",
		"quiero empezar", "no puedo esperar", "justo lo que buscaba",
		"me interesa mucho", "fantástico", "fantastico",
	},
	"confusion": {
		"no entiendo", "confundido", "confundida", "no me queda claro",
		"no comprendo", "qué significa", "que significa", "no sé cómo",
		"no se como", "estoy perdido", "estoy perdida", "me pierdo",
		"podría explicar", "podria explicar",
	},
	"urgencia": {
		"urgente", "urge", "ahora mismo", "inmediatamente", "cuanto antes",
		"lo antes posible", "hoy mismo", "ya mismo", "rápido por favor",
		"rapido por favor", "no puedo esperar", "para ayer",
	},
	"indecision": {
		"no sé si", "no se si", "tal vez", "quizás", "quizas", "no estoy seguro",
		"no estoy segura", "déjame pensarlo", "dejame pensarlo", "lo voy a pensar",
		"tengo dudas", "por otro lado", "pero no sé", "pero no se", "depende",
	},
}

// UrgencySignals feed DetectUrgency together with punctuation cues.
var UrgencySignals = []string{
	"urgente", "urge", "ahora mismo", "inmediatamente", "cuanto antes",
	"lo antes posible", "hoy mismo", "ya mismo", "para ayer", "es para hoy",
	"necesito ya",
}

// IndecisionSignals feed DetectIndecision; hedges and contrastive connectors.
var IndecisionSignals = []string{
	"no sé", "no se", "tal vez", "quizás", "quizas", "no estoy seguro",
	"no estoy segura", "lo voy a pensar", "déjame pensarlo", "dejame pensarlo",
	"tengo dudas", "depende", "pero", "sin embargo", "por otro lado",
	"aunque", "me lo pienso",
}
