package lexicon

import "regexp"

// Entity extraction patterns. One matcher per entity type; gazetteers are
// substring-matched case-insensitively.

var (
	EmailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// PhonePattern accepts international prefixes, separators and 7-12 digit
	// local numbers, e.g. "+52 55 1234 5678", "555-123-4567", "5512345678".
	PhonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?(?:\(\d{2,3}\)[\s.\-]?)?\d{2,4}[\s.\-]?\d{3,4}[\s.\-]?\d{3,4}`)

	// DatePatterns cover numeric (12/05/2024, 2024-05-12) and written Spanish
	// forms (12 de mayo, 12 de mayo de 2024).
	DatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`(?i)\b\d{1,2}\s+de\s+(?:enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)(?:\s+de\s+\d{4})?\b`),
	}

	// NamePattern matches capitalized word sequences of length 2+, the
	// heuristic for person names ("Juan Pérez", "María José López").
	NamePattern = regexp.MustCompile(`\b[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+)+\b`)
)

// NameStopwords are capitalized sequences the name heuristic must skip:
// sentence starters, month names and known non-person phrases.
var NameStopwords = []string{
	"Buenos Días", "Buenas Tardes", "Buenas Noches", "Hola Buenos",
	"Muchas Gracias", "Por Favor", "Estados Unidos", "Ciudad De",
	"América Latina", "San Juan",
}

// NameLeadingStopwords are capitalized sentence-position words stripped from
// the front of a name match ("Soy Juan Pérez" yields "Juan Pérez").
var NameLeadingStopwords = []string{
	"Soy", "Hola", "Me", "Mi", "El", "La", "Los", "Las", "Estoy", "Gracias",
	"Saludos", "Buenos", "Buenas", "Mucho", "Gusto", "Habla", "Atiende",
}

// OrganizationGazetteer lists known company names and organization markers.
var OrganizationGazetteer = []string{
	"google", "microsoft", "amazon", "apple", "meta", "facebook", "oracle",
	"ibm", "sap", "salesforce", "telmex", "bimbo", "cemex", "femsa",
	"banorte", "bbva", "santander", "banamex", "liverpool", "coppel",
	"walmart", "oxxo", "pemex", "televisa", "s.a. de c.v.", "s.a.", "s.l.",
	"inc.", "corp.",
}

// LocationGazetteer lists known cities, states and countries.
var LocationGazetteer = []string{
	"méxico", "mexico", "cdmx", "ciudad de méxico", "guadalajara",
	"monterrey", "puebla", "querétaro", "queretaro", "tijuana", "cancún",
	"cancun", "mérida", "merida", "león", "leon", "toluca", "colombia",
	"bogotá", "bogota", "medellín", "medellin", "argentina", "buenos aires",
	"chile", "santiago", "perú", "peru", "lima", "españa", "espana",
	"madrid", "barcelona", "estados unidos", "miami", "houston",
}

// ProductKeywords drive generic product detection.
var ProductKeywords = []string{
	"plan", "paquete", "licencia", "suscripción", "suscripcion", "membresía",
	"membresia", "servicio", "producto", "programa", "curso", "software",
	"plataforma", "sistema", "aplicación", "aplicacion", "app", "módulo",
	"modulo", "versión premium", "version premium", "plan básico",
	"plan basico", "plan pro", "plan elite",
}
