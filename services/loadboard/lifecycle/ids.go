package lifecycle

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// equipmentCodes are the short codes used in structured load ids for the
// common trailer types. Unknown equipment falls back to its first letter.
var equipmentCodes = map[string]string{
	"Van":        "V",
	"Reefer":     "R",
	"Flatbed":    "F",
	"Step Deck":  "SD",
	"Power Only": "PO",
}

// DeriveLoadID builds the structured load identifier from route and equipment
// metadata, e.g. FF-ATL-MIA-V-83412. The uuid-derived suffix keeps two loads
// on the same lane distinct. The id is stamped once at creation and immutable
// afterwards.
func DeriveLoadID(origin, destination, equipment string) string {
	return fmt.Sprintf("FF-%s-%s-%s-%s",
		cityCode(origin),
		cityCode(destination),
		equipmentCode(equipment),
		uniquifier(),
	)
}

// DeriveLoadBoardNumber derives the stable six-digit number used for
// voice/phone communication from the load id. Same id, same number, always;
// it must never be regenerated once assigned.
func DeriveLoadBoardNumber(loadID string) string {
	h := fnv.New32a()
	h.Write([]byte(loadID))
	return fmt.Sprintf("%06d", 100000+h.Sum32()%900000)
}

// cityCode reduces "Atlanta, GA" to "ATL": the first three letters of the
// city name, uppercased.
func cityCode(city string) string {
	var letters []rune
	for _, r := range city {
		if r == ',' {
			break
		}
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 3 {
			break
		}
	}
	if len(letters) == 0 {
		return "XXX"
	}
	return string(letters)
}

func equipmentCode(equipment string) string {
	if code, ok := equipmentCodes[equipment]; ok {
		return code
	}
	trimmed := strings.TrimSpace(equipment)
	if trimmed == "" {
		return "G"
	}
	return strings.ToUpper(trimmed[:1])
}

// uniquifier returns five digits sourced from a fresh uuid.
func uniquifier() string {
	id := uuid.New().ID()
	return fmt.Sprintf("%05d", id%100000)
}
