package monitor

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// diacritics is the fixed substitution set folding accented characters to
// their base Latin letter. The sharp-s doubles.
var diacritics = strings.NewReplacer(
	"ä", "a", "ö", "o", "ü", "u",
	"Ä", "A", "Ö", "O", "Ü", "U",
	"ß", "ss",
	"é", "e", "è", "e", "ê", "e",
	"á", "a", "à", "a",
	"í", "i", "ó", "o", "ú", "u",
	"č", "c", "š", "s", "ž", "z",
)

func foldDiacritics(s string) string {
	return diacritics.Replace(s)
}

// normalizeDestination folds diacritics, trims whitespace and title-cases
// single-word names. Multi-word and hyphenated names pass through so that
// all-caps source data is tamed without mangling composites.
func normalizeDestination(s string) string {
	s = strings.TrimSpace(foldDiacritics(s))
	if len(s) > 1 && !strings.ContainsAny(s, " -") {
		r := []rune(strings.ToLower(s))
		r[0] = unicode.ToUpper(r[0])
		s = string(r)
	}
	return s
}

// Parse turns one raw monitor payload into a de-duplicated list of
// departure groups. Malformed input yields an empty list, never a panic;
// the caller is expected to wait out its retry delay before the next
// attempt.
func Parse(raw string) []*DepartureGroup {
	var resp stopResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		log.Warn().Err(err).Int("bytes", len(raw)).Msg("Malformed monitor payload")
		return nil
	}

	// Alert map is built completely before any group is emitted so a late
	// traffic record still reaches groups for its routes.
	alerts := map[string]string{}
	for _, ti := range resp.Data.TrafficInfos {
		text := strings.TrimSpace(ti.Description)
		if text == "" {
			text = strings.TrimSpace(ti.Title)
		}
		text = foldDiacritics(text)
		for _, route := range ti.RelatedLines {
			alerts[route] = text
		}
	}

	groups := []*DepartureGroup{}
	index := map[string]*DepartureGroup{}
	for _, mon := range resp.Data.Monitors {
		for _, line := range mon.Lines {
			for _, dep := range line.Departures.Departure {
				// Vehicle-level identity is the most specific source;
				// fall back to the coarser line-level fields.
				name, towards := line.Name, line.Towards
				if dep.Vehicle != nil && (dep.Vehicle.Name != "" || dep.Vehicle.Towards != "") {
					name, towards = dep.Vehicle.Name, dep.Vehicle.Towards
				}
				if name == "" && towards == "" {
					continue
				}
				direction := normalizeDestination(towards)

				key := name + "\x00" + direction
				g, ok := index[key]
				if !ok {
					g = &DepartureGroup{
						RouteName:     name,
						DirectionText: direction,
						AlertText:     alerts[name],
					}
					index[key] = g
					groups = append(groups, g)
				}
				// -1 marks an unknown countdown upstream; skip it.
				if cd := dep.DepartureTime.Countdown; cd != nil && *cd >= 0 {
					g.Countdowns = append(g.Countdowns, *cd)
				}
			}
		}
	}
	return groups
}
