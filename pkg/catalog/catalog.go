/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stonkchonk/interplanetary-localization/pkg/vector"
)

/*****************************************************************************************************************/

// CatalogStar is a single entry in the loaded catalog: a dense integer id, its name, its position
// on the celestial sphere, and its visual magnitude (smaller is brighter).
type CatalogStar struct {
	ID              int
	Name            string
	Position        vector.UnitVector
	VisualMagnitude float64
}

/*****************************************************************************************************************/

// Catalog is a dense-id mapping from id (assigned by order of successful parse, starting at zero)
// to CatalogStar.
type Catalog map[int]CatalogStar

/*****************************************************************************************************************/

// byteIndices are 1-indexed, inclusive byte ranges into a single fixed-width catalog line.
type byteIndices struct {
	nameStart, nameEnd           int
	hdNumberStart, hdNumberEnd   int
	raHoursStart, raHoursEnd     int
	raMinutesStart, raMinutesEnd int
	raSecondsStart, raSecondsEnd int
	decSignStart, decSignEnd     int
	decDegStart, decDegEnd       int
	decMinStart, decMinEnd       int
	decSecStart, decSecEnd       int
	vmagStart, vmagEnd           int
}

/*****************************************************************************************************************/

// indices is the fixed-width layout for this catalog format, as specified in §4.1.
var indices = byteIndices{
	nameStart: 5, nameEnd: 14,
	hdNumberStart: 26, hdNumberEnd: 31,
	raHoursStart: 76, raHoursEnd: 77,
	raMinutesStart: 78, raMinutesEnd: 79,
	raSecondsStart: 80, raSecondsEnd: 83,
	decSignStart: 84, decSignEnd: 84,
	decDegStart: 85, decDegEnd: 86,
	decMinStart: 87, decMinEnd: 88,
	decSecStart: 89, decSecEnd: 90,
	vmagStart: 103, vmagEnd: 107,
}

/*****************************************************************************************************************/

// substr extracts the 1-indexed, inclusive byte range [start, end] from line and trims whitespace.
// Returns false if the line is too short to contain the range.
func substr(line string, start, end int) (string, bool) {
	if start < 1 || end < start || end > len(line) {
		return "", false
	}
	return strings.TrimSpace(line[start-1 : end]), true
}

/*****************************************************************************************************************/

// canonicalizeWhitespace collapses any run of internal whitespace in a name to a single space.
func canonicalizeWhitespace(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

/*****************************************************************************************************************/

// parseLine parses a single fixed-width catalog line into a CatalogStar (without its id, which
// is assigned by the caller in order of successful parse). A nil, nil return means the line
// describes a non-stellar object (nebula, galaxy, cluster, ...) and should be silently skipped.
func parseLine(line string) (*CatalogStar, error) {
	name, ok := substr(line, indices.nameStart, indices.nameEnd)
	if !ok {
		return nil, nil
	}

	if name == "" {
		hdNumber, ok := substr(line, indices.hdNumberStart, indices.hdNumberEnd)
		if !ok || hdNumber == "" {
			return nil, nil
		}
		name = "HD" + hdNumber
	}
	name = canonicalizeWhitespace(name)

	vmagStr, ok := substr(line, indices.vmagStart, indices.vmagEnd)
	if !ok {
		return nil, nil
	}
	vmag, err := strconv.ParseFloat(vmagStr, 64)
	if err != nil {
		return nil, nil
	}

	sex, ok := parseSexagesimal(line)
	if !ok {
		return nil, nil
	}

	return &CatalogStar{
		Name:            name,
		Position:        vector.NewFromSexagesimal(sex),
		VisualMagnitude: vmag,
	}, nil
}

/*****************************************************************************************************************/

func parseSexagesimalField(line string, start, end int) (float64, bool) {
	raw, ok := substr(line, start, end)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func parseSexagesimal(line string) (vector.Sexagesimal, bool) {
	var s vector.Sexagesimal
	var ok bool

	if s.RAHours, ok = parseSexagesimalField(line, indices.raHoursStart, indices.raHoursEnd); !ok {
		return vector.Sexagesimal{}, false
	}
	if s.RAMinutes, ok = parseSexagesimalField(line, indices.raMinutesStart, indices.raMinutesEnd); !ok {
		return vector.Sexagesimal{}, false
	}
	if s.RASeconds, ok = parseSexagesimalField(line, indices.raSecondsStart, indices.raSecondsEnd); !ok {
		return vector.Sexagesimal{}, false
	}
	if s.DecDegrees, ok = parseSexagesimalField(line, indices.decDegStart, indices.decDegEnd); !ok {
		return vector.Sexagesimal{}, false
	}
	if s.DecMinutes, ok = parseSexagesimalField(line, indices.decMinStart, indices.decMinEnd); !ok {
		return vector.Sexagesimal{}, false
	}
	if s.DecSeconds, ok = parseSexagesimalField(line, indices.decSecStart, indices.decSecEnd); !ok {
		return vector.Sexagesimal{}, false
	}

	signRaw, ok := substr(line, indices.decSignStart, indices.decSignEnd)
	if !ok {
		return vector.Sexagesimal{}, false
	}
	switch signRaw {
	case "-":
		s.DecSign = -1
	case "+", "":
		s.DecSign = 1
	default:
		return vector.Sexagesimal{}, false
	}

	return s, true
}

/*****************************************************************************************************************/

// Load parses a fixed-width star catalog from r into a Catalog. Ids are dense integers assigned
// by order of successful parse, starting at zero. A malformed line (one describing a nebula,
// galaxy or cluster rather than a star) is skipped silently - see §4.1. Load only returns an
// error on genuine I/O failure.
func Load(r io.Reader) (Catalog, error) {
	catalog := make(Catalog)

	scanner := bufio.NewScanner(r)
	// Catalog lines can be long; grow the buffer beyond the default 64KiB token limit just in case.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nextID := 0

	for scanner.Scan() {
		line := scanner.Text()

		star, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("catalog: unexpected parse failure: %w", err)
		}
		if star == nil {
			continue
		}

		star.ID = nextID
		catalog[nextID] = *star
		nextID++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalog: failed to read catalog: %w", err)
	}

	return catalog, nil
}

/*****************************************************************************************************************/

// FilterByMagnitude returns the subset of the catalog with visual magnitude <= limit (brighter
// than or equal to the cutoff), per §4.2 step 1.
func (c Catalog) FilterByMagnitude(limit float64) Catalog {
	filtered := make(Catalog)
	for id, star := range c {
		if star.VisualMagnitude <= limit {
			filtered[id] = star
		}
	}
	return filtered
}

/*****************************************************************************************************************/
