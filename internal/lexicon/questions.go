package lexicon

// InterrogativeMarkers detect questions that lack question marks.
var InterrogativeMarkers = []string{
	"qué", "que es", "cómo", "como puedo", "como funciona", "cuándo", "cuando",
	"dónde", "donde", "por qué", "por que", "cuál", "cual", "cuáles", "cuales",
	"cuánto", "cuanto", "cuánta", "cuanta", "cuántos", "cuantos", "quién",
	"quien", "puede", "podría", "podria", "me pueden", "tienen", "existe",
}

// Question type names. Scores are non-exclusive; several types may match one
// question.
const (
	QuestionFactual       = "factual"
	QuestionProcedural    = "procedimental"
	QuestionComparative   = "comparativa"
	QuestionCausal        = "causal"
	QuestionHypothetical  = "hipotetica"
	QuestionVerification  = "verificacion"
	QuestionOpinion       = "opinion"
	QuestionClarification = "aclaracion"
)

// QuestionTypeOrder fixes iteration order for deterministic tie-breaks.
var QuestionTypeOrder = []string{
	QuestionFactual, QuestionProcedural, QuestionComparative, QuestionCausal,
	QuestionHypothetical, QuestionVerification, QuestionOpinion,
	QuestionClarification,
}

// QuestionTypeMarkers maps each question type to its marker phrases.
var QuestionTypeMarkers = map[string][]string{
	QuestionFactual: {
		"qué es", "que es", "cuál es", "cual es", "cuáles son", "cuales son",
		"cuánto", "cuanto", "cuánta", "cuanta", "cuántos", "cuantos",
		"cuándo", "cuando", "dónde", "donde", "quién", "quien",
	},
	QuestionProcedural: {
		"cómo puedo", "como puedo", "cómo se", "como se", "cómo funciona",
		"como funciona", "qué pasos", "que pasos", "de qué manera",
		"de que manera", "cómo hago", "como hago", "cómo instalo",
		"como instalo", "cómo configuro", "como configuro",
	},
	QuestionComparative: {
		"cuál es mejor", "cual es mejor", "qué diferencia", "que diferencia",
		"diferencia entre", "comparado con", "versus", "en comparación",
		"en comparacion", "es mejor que", "cuál conviene", "cual conviene",
	},
	QuestionCausal: {
		"por qué", "por que", "a qué se debe", "a que se debe", "cuál es la razón",
		"cual es la razon", "qué causa", "que causa", "por cuál motivo",
		"por cual motivo",
	},
	QuestionHypothetical: {
		"qué pasaría", "que pasaria", "qué pasa si", "que pasa si",
		"si yo", "en caso de", "supongamos", "y si", "qué sucede si",
		"que sucede si",
	},
	QuestionVerification: {
		"es cierto", "es verdad", "verdad que", "confirman", "seguro que",
		"están seguros", "estan seguros", "puedo confiar", "incluye",
		"tiene garantía", "tiene garantia", "¿tienen", "tienen",
	},
	QuestionOpinion: {
		"qué opinas", "que opinas", "qué opinan", "que opinan",
		"qué recomiendas", "que recomiendas", "qué me recomiendan",
		"que me recomiendan", "qué piensas", "que piensas", "vale la pena",
		"les parece",
	},
	QuestionClarification: {
		"a qué te refieres", "a que te refieres", "qué quieres decir",
		"que quieres decir", "no entendí", "no entendi", "puedes explicar",
		"podrías explicar", "podrias explicar", "en otras palabras",
		"o sea",
	},
}

// QuestionTypeIntents maps the winning question type to a coarse intent label.
var QuestionTypeIntents = map[string]string{
	QuestionFactual:       "informacion",
	QuestionProcedural:    "instruccion",
	QuestionComparative:   "comparacion",
	QuestionCausal:        "explicacion",
	QuestionHypothetical:  "exploracion",
	QuestionVerification:  "validacion",
	QuestionOpinion:       "recomendacion",
	QuestionClarification: "aclaracion",
}

// ComplexityIndicators push a question's complexity class upward when present.
var ComplexityIndicators = []string{
	"integración", "integracion", "implementación", "implementacion",
	"arquitectura", "configuración avanzada", "configuracion avanzada",
	"migración", "migracion", "api", "escalabilidad", "rendimiento",
	"sin embargo", "además", "ademas", "por otro lado", "considerando",
	"teniendo en cuenta", "en el caso de que",
}
