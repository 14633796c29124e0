package lexicon

// Objection taxonomy. Each type pairs detection keywords with a response
// strategy; tier adjustments live in the tier table below.

const (
	ObjectionPrecioAlto       = "PRECIO_ALTO"
	ObjectionFaltaPresupuesto = "FALTA_PRESUPUESTO"
	ObjectionComparacion      = "COMPARACION_COMPETENCIA"
	ObjectionValorPercibido   = "VALOR_PERCIBIDO"
	ObjectionTiming           = "TIMING"
)

// ObjectionTypeOrder fixes detection precedence when several types match.
var ObjectionTypeOrder = []string{
	ObjectionPrecioAlto, ObjectionFaltaPresupuesto, ObjectionComparacion,
	ObjectionValorPercibido, ObjectionTiming,
}

// ObjectionKeywords maps each objection type to its trigger phrases.
var ObjectionKeywords = map[string][]string{
	ObjectionPrecioAlto: {
		"muy caro", "demasiado caro", "es caro", "caro", "costoso",
		"mucho dinero", "precio muy alto", "precio alto", "no vale tanto",
		"carísimo", "carisimo",
	},
	ObjectionFaltaPresupuesto: {
		"no tengo presupuesto", "no hay presupuesto", "no me alcanza",
		"no tengo dinero", "sin presupuesto", "fuera de mi presupuesto",
		"no puedo pagar",
	},
	ObjectionComparacion: {
		"la competencia", "otro proveedor", "más barato en", "mas barato en",
		"otra empresa", "otras opciones", "cotizando con", "me ofrecen",
		"vi uno más barato", "vi uno mas barato",
	},
	ObjectionValorPercibido: {
		"no le veo el valor", "para qué me sirve", "para que me sirve",
		"no necesito tanto", "es demasiado para mí", "es demasiado para mi",
		"no lo voy a usar", "qué me garantiza", "que me garantiza",
	},
	ObjectionTiming: {
		"más adelante", "mas adelante", "el próximo mes", "el proximo mes",
		"el año que viene", "no es el momento", "después lo veo",
		"despues lo veo", "ahorita no", "en unos meses",
	},
}

// ObjectionResponses pairs each objection type with a response strategy.
var ObjectionResponses = map[string]string{
	ObjectionPrecioAlto:       "Entiendo que el precio es una consideración importante. Más que un gasto es una inversión: el retorno promedio de nuestros clientes supera el costo en los primeros meses. También tenemos un plan más accesible que cubre lo esencial.",
	ObjectionFaltaPresupuesto: "Comprendo la restricción de presupuesto. Podemos empezar con el plan básico y escalar cuando el retorno lo justifique, o dividir el pago en mensualidades sin intereses.",
	ObjectionComparacion:      "Es bueno comparar opciones. La diferencia está en el soporte dedicado y las garantías que incluimos; con gusto le preparo un comparativo punto por punto para que decida con datos.",
	ObjectionValorPercibido:   "Permítame mostrarle casos concretos de clientes con su mismo perfil y los resultados que obtuvieron; así puede evaluar el valor real antes de decidir.",
	ObjectionTiming:           "Entiendo que el momento importa. Puedo congelar el precio actual por 30 días para que no pierda la promoción mientras lo decide.",
}

// Tier holds one entry of the pricing ladder, ordered top down.
type Tier struct {
	Name  string
	Price float64
}

// TierLadder is the product tier ladder used for price-objection adjustments.
var TierLadder = []Tier{
	{Name: "Elite", Price: 4999},
	{Name: "Pro", Price: 2999},
	{Name: "Básico", Price: 1499},
}

// ROIMultiplier estimates value framing in objection responses: expected
// return per unit of price over the first year.
const ROIMultiplier = 2.4
