package lexicon

// Stopwords is the Spanish stopword list applied after normalization.
var Stopwords = map[string]bool{
	"a": true, "al": true, "algo": true, "ante": true, "antes": true,
	"aquel": true, "aquella": true, "aqui": true, "así": true, "asi": true,
	"con": true, "como": true, "cual": true, "cuando": true, "de": true,
	"del": true, "desde": true, "donde": true, "dos": true, "el": true,
	"ella": true, "ellas": true, "ellos": true, "en": true, "entre": true,
	"era": true, "es": true, "esa": true, "ese": true, "eso": true,
	"esta": true, "estas": true, "este": true, "esto": true, "estos": true,
	"fue": true, "ha": true, "hay": true, "la": true, "las": true,
	"le": true, "les": true, "lo": true, "los": true, "más": true,
	"mas": true, "me": true, "mi": true, "mis": true, "muy": true,
	"nada": true, "ni": true, "no": true, "nos": true, "nosotros": true,
	"o": true, "otra": true, "otro": true, "para": true, "pero": true,
	"poco": true, "por": true, "porque": true, "que": true, "quien": true,
	"se": true, "ser": true, "si": true, "sí": true, "sin": true,
	"sobre": true, "son": true, "su": true, "sus": true, "también": true,
	"tambien": true, "te": true, "tiene": true, "tienen": true, "todo": true,
	"tu": true, "un": true, "una": true, "uno": true, "unos": true,
	"ya": true, "yo": true, "usted": true, "ustedes": true, "está": true,
	"hola": true, "gracias": true, "buenos": true,
	"buenas": true, "días": true, "dias": true, "tardes": true,
	"noches": true, "quiero": true, "quisiera": true, "favor": true,
}

// KeywordCategories maps each domain category to the keywords that signal it.
// Classification iterates these tables generically; order fixes tie-breaks.
var KeywordCategoryOrder = []string{
	"producto", "precio", "calidad", "problema", "soporte", "tiempo", "comparacion",
}

var KeywordCategories = map[string][]string{
	"producto": {
		"producto", "plan", "paquete", "servicio", "programa", "licencia",
		"suscripcion", "suscripción", "software", "plataforma", "sistema",
		"funcionalidad", "funcionalidades", "caracteristicas",
		"características", "version", "versión", "modulo", "módulo", "curso",
	},
	"precio": {
		"precio", "precios", "costo", "costos", "caro", "cara", "barato",
		"barata", "descuento", "descuentos", "promocion", "promoción",
		"pago", "pagos", "mensualidad", "presupuesto", "cotizacion",
		"cotización", "factura", "inversion", "inversión", "tarifa",
	},
	"calidad": {
		"calidad", "bueno", "buena", "excelente", "confiable", "garantia",
		"garantía", "durabilidad", "rendimiento", "eficiente", "seguro",
		"segura", "certificado", "certificación", "certificacion",
	},
	"problema": {
		"problema", "problemas", "error", "errores", "falla", "fallas",
		"defecto", "defectos", "queja", "quejas", "reclamo", "reclamos",
		"lento", "lenta", "dificil", "difícil", "complicado", "complicada",
		"no funciona",
	},
	"soporte": {
		"soporte", "ayuda", "asistencia", "atencion", "atención", "contacto",
		"asesor", "asesoria", "asesoría", "capacitacion", "capacitación",
		"tutorial", "documentacion", "documentación", "respuesta",
	},
	"tiempo": {
		"tiempo", "plazo", "plazos", "entrega", "demora", "duracion",
		"duración", "horario", "horarios", "disponibilidad", "fecha",
		"fechas", "rapido", "rápido", "inmediato",
	},
	"comparacion": {
		"competencia", "competidor", "competidores", "alternativa",
		"alternativas", "diferencia", "diferencias", "comparar",
		"comparacion", "comparación", "versus", "mejor que", "otros",
	},
}
