package locale

// Locale is the context key type for the request locale.
type Locale struct{}

const (
	// EN is English.
	EN = "en"
	// ES is Spanish.
	ES = "es"
	// FR is French.
	FR = "fr"
)

// LangList contains all supported language codes.
var LangList = []string{EN, ES, FR}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN
