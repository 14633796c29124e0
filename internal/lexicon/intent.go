package lexicon

// Base purchase-intent and rejection keyword sets. Industry models bootstrap
// from these plus the industry-specific additions below; unknown industries
// fall back to the base sets alone, never to an empty model.

var BaseIntentKeywords = []string{
	"me interesa", "interesa", "comprar", "compra", "precio", "precios",
	"costo", "cuánto cuesta", "cuanto cuesta", "contratar", "adquirir",
	"pagar", "formas de pago", "descuento", "promoción", "promocion",
	"quiero empezar", "cómo empiezo", "como empiezo", "demo", "prueba",
	"cotización", "cotizacion", "presupuesto", "factura", "enviar información",
	"enviar informacion", "más información", "mas informacion", "agendar",
	"cuándo puedo", "cuando puedo", "disponibilidad", "lo llevo", "lo quiero",
}

var BaseRejectionKeywords = []string{
	"no me interesa", "no gracias", "no quiero", "no lo necesito",
	"no necesito", "muy caro", "demasiado caro", "no tengo dinero",
	"no tengo presupuesto", "no por ahora", "en otro momento", "quizás después",
	"quizas despues", "ya tengo", "ya compré", "ya compre", "no insistas",
	"deja de", "no me contacten", "borrar mis datos", "no estoy interesado",
	"no estoy interesada",
}

// IndustryIntentKeywords extends the base set per industry.
var IndustryIntentKeywords = map[string][]string{
	"software": {
		"licencias", "usuarios", "integración", "integracion", "api",
		"plan anual", "por usuario", "onboarding", "implementación",
		"implementacion", "migrar",
	},
	"inmobiliaria": {
		"visita", "agendar visita", "escrituras", "crédito", "credito",
		"hipoteca", "enganche", "apartar", "metros cuadrados", "ubicación",
		"ubicacion",
	},
	"automotriz": {
		"prueba de manejo", "financiamiento", "mensualidades", "seminuevo",
		"versión", "version", "kilometraje", "garantía extendida",
		"garantia extendida", "tomar a cuenta",
	},
	"educacion": {
		"inscripción", "inscripcion", "inscribirme", "beca", "temario",
		"certificado", "diploma", "horarios", "modalidad", "colegiatura",
	},
	"salud": {
		"cita", "agendar cita", "consulta", "tratamiento", "valoración",
		"valoracion", "seguro médico", "seguro medico", "especialista",
	},
}

// IndustryRejectionKeywords extends the base rejection set per industry.
var IndustryRejectionKeywords = map[string][]string{
	"software": {
		"ya usamos otro", "tenemos proveedor", "no escalamos", "open source",
	},
	"inmobiliaria": {
		"ya compré casa", "ya compre casa", "no me alcanza", "muy lejos",
	},
	"automotriz": {
		"ya tengo coche", "ya tengo auto", "no manejo",
	},
	"educacion": {
		"no tengo tiempo de estudiar", "ya me inscribí", "ya me inscribi",
	},
	"salud": {
		"ya tengo médico", "ya tengo medico", "ya me atendí", "ya me atendi",
	},
}

// EngagementMarkers raise the engagement sub-score: specific, invested
// questions and first-person commitments.
var EngagementMarkers = []string{
	"específicamente", "especificamente", "exactamente", "en mi caso",
	"mi empresa", "mi equipo", "nosotros", "necesito que", "me urge",
	"cuándo podemos", "cuando podemos", "podemos agendar",
}
