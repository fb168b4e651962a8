package correios

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// deliveredPhrase is the fixed wording the carrier uses on the final
// event of a delivered shipment. There is no stable status taxonomy, so
// delivery is detected by substring.
const deliveredPhrase = "Objeto entregue"

// internationalUnitType marks a country-level facility with no locality.
const internationalUnitType = "País"

// eventTimeLayout matches the carrier's locale-free timestamp strings,
// e.g. "2023-11-02T16:23:05".
const eventTimeLayout = "2006-01-02T15:04:05"

const (
	unknownCategoryName        = "Desconhecido"
	unknownCategoryDescription = "Não identificado"
)

// correiosResponse mirrors the carrier's undocumented JSON schema. Every
// field the carrier sometimes omits is optional here; presence is checked
// explicitly before use.
type correiosResponse struct {
	Objects []correiosObject `json:"objetos"`
}

type correiosObject struct {
	Code       string          `json:"codObjeto"`
	PostalType *postalType     `json:"tipoPostal,omitempty"`
	Message    *string         `json:"mensagem,omitempty"`
	Events     []correiosEvent `json:"eventos,omitempty"`
}

type postalType struct {
	Category    string `json:"categoria"`
	Description string `json:"descricao"`
}

type correiosEvent struct {
	Code            string        `json:"codigo"`
	Description     string        `json:"descricao"`
	CreatedAt       string        `json:"dtHrCriado"`
	Unit            correiosUnit  `json:"unidade"`
	DestinationUnit *correiosUnit `json:"unidadeDestino,omitempty"`
}

type correiosUnit struct {
	Address correiosAddress `json:"endereco"`
	Name    string          `json:"nome"`
	Type    string          `json:"tipo"`
}

type correiosAddress struct {
	City string `json:"cidade"`
	UF   string `json:"uf"`
}

// parsedLocation is the resolved (locality, origin) pair for one facility.
type parsedLocation struct {
	locality *string
	origin   string
}

// titleCase word-capitalizes s. A cases.Caser is stateful, so one is
// built per call rather than shared across concurrent fetches.
func titleCase(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// parseResponse converts one raw carrier payload into a Tracking record.
// It is pure and never fails: payloads without an events collection, or
// carrying an explicit message, come back as not_found.
func parseResponse(data correiosResponse, code string) Tracking {
	if len(data.Objects) == 0 {
		return invalidTracking(code, ErrorNotFound)
	}

	object := data.Objects[0]
	if object.Message != nil || len(object.Events) == 0 {
		return invalidTracking(code, ErrorNotFound)
	}

	// The carrier orders events most-recent-first.
	events := make([]Event, 0, len(object.Events))
	for _, raw := range object.Events {
		location := locationRules(raw.Unit)

		var destination *string
		if raw.DestinationUnit != nil {
			origin := locationRules(*raw.DestinationUnit).origin
			destination = &origin
		}

		trackedAt, _ := time.Parse(eventTimeLayout, raw.CreatedAt)

		events = append(events, Event{
			Locality:    location.locality,
			Status:      raw.Description,
			Origin:      location.origin,
			Destination: destination,
			TrackedAt:   trackedAt,
		})
	}

	newest, oldest := events[0], events[len(events)-1]
	category := parseCategory(object.PostalType)

	return Tracking{
		Code:        code,
		Category:    &category,
		Events:      events,
		IsDelivered: strings.Contains(newest.Status, deliveredPhrase),
		PostedAt:    &oldest.TrackedAt,
		UpdatedAt:   &newest.TrackedAt,
	}
}

// locationRules resolves a facility into its (locality, origin) pair.
// Country-level units are the only non-domestic class in the schema.
func locationRules(unit correiosUnit) parsedLocation {
	if unit.Type == internationalUnitType {
		return parsedLocation{
			locality: nil,
			origin:   titleCase(unit.Name),
		}
	}

	city := titleCase(unit.Address.City)
	locality := city + " / " + unit.Address.UF

	return parsedLocation{
		locality: &locality,
		origin:   unit.Type + " - " + locality,
	}
}

// parseCategory normalizes the optional postal-type classification.
// Descriptions usually embed the two-letter domestic service code in
// lowercase (e.g. the "se" in "Etiqueta Logica Se"); that token is restored to
// uppercase unless the description is already the unidentified or
// international wording.
func parseCategory(pt *postalType) Category {
	if pt == nil {
		return Category{
			Name:        unknownCategoryName,
			Description: unknownCategoryDescription,
		}
	}

	name := pt.Category
	if name == "" {
		name = unknownCategoryName
	}
	description := pt.Description
	if description == "" {
		description = unknownCategoryDescription
	}

	name = titleCase(name)
	description = titleCase(description)

	if !strings.Contains(description, "Identificado") && !strings.Contains(description, "Internacional") {
		for _, word := range strings.Fields(description) {
			if utf8.RuneCountInString(word) == 2 {
				description = strings.Replace(description, word, strings.ToUpper(word), 1)
				break
			}
		}
	}

	return Category{
		Name:        name,
		Description: description,
	}
}
