package pricing

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// MonthLabeler formatea la etiqueta "Mes Año" de un mes calendario.
type MonthLabeler func(year int, month time.Month) string

var (
	monthsES = [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}

	supportedLocales = []language.Tag{language.Spanish, language.English}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

// EnglishMonths etiqueta "January 2024".
func EnglishMonths(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// SpanishMonths etiqueta "enero de 2024" (formato es-ES de mes largo y año).
func SpanishMonths(year int, month time.Month) string {
	return fmt.Sprintf("%s de %d", monthsES[month-1], year)
}

// LabelerFor devuelve el formateador del idioma soportado más cercano a tag.
func LabelerFor(tag language.Tag) MonthLabeler {
	base, _ := tag.Base()
	if en, _ := language.English.Base(); base == en {
		return EnglishMonths
	}
	return SpanishMonths
}

// MatchLocale negocia el idioma a partir de un valor tipo Accept-Language
// ("en-US,en;q=0.8") o un tag simple ("es"). Vacío o inválido → fallback.
func MatchLocale(accept string, fallback language.Tag) language.Tag {
	if accept == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return supportedLocales[idx]
}
