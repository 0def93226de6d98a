/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"strings"
	"testing"
)

/*****************************************************************************************************************/

// buildLine places each field at its 1-indexed byte position, padding with spaces, mirroring
// the fixed-width catalog format described in §4.1.
func buildLine(fields map[[2]int]string, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = ' '
	}
	for rng, value := range fields {
		start, end := rng[0], rng[1]
		copy(buf[start-1:end], value)
	}
	return string(buf)
}

/*****************************************************************************************************************/

func starLine(name, hd string, raH, raM, raS string, decSign, decD, decM, decS string, vmag string) string {
	return buildLine(map[[2]int]string{
		{indices.nameStart, indices.nameEnd}:         name,
		{indices.hdNumberStart, indices.hdNumberEnd}: hd,
		{indices.raHoursStart, indices.raHoursEnd}:   raH,
		{indices.raMinutesStart, indices.raMinutesEnd}: raM,
		{indices.raSecondsStart, indices.raSecondsEnd}: raS,
		{indices.decSignStart, indices.decSignEnd}:     decSign,
		{indices.decDegStart, indices.decDegEnd}:       decD,
		{indices.decMinStart, indices.decMinEnd}:       decM,
		{indices.decSecStart, indices.decSecEnd}:       decS,
		{indices.vmagStart, indices.vmagEnd}:           vmag,
	}, 110)
}

/*****************************************************************************************************************/

func TestLoadParsesWellFormedStarLine(t *testing.T) {
	line := starLine("Sirius", "48915", "06", "45", "08.9", "-", "16", "42", "58", "-1.46")

	cat, err := Load(strings.NewReader(line))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if len(cat) != 1 {
		t.Fatalf("Load() returned %d stars; want 1", len(cat))
	}

	star := cat[0]
	if star.ID != 0 {
		t.Errorf("star.ID = %d; want 0", star.ID)
	}
	if star.Name != "Sirius" {
		t.Errorf("star.Name = %q; want %q", star.Name, "Sirius")
	}
	if star.VisualMagnitude != -1.46 {
		t.Errorf("star.VisualMagnitude = %v; want -1.46", star.VisualMagnitude)
	}
}

/*****************************************************************************************************************/

func TestLoadFallsBackToHDNameWhenNameEmpty(t *testing.T) {
	line := starLine("", "1", "01", "00", "00.0", "+", "00", "00", "00", "5.00")

	cat, err := Load(strings.NewReader(line))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cat[0].Name != "HD1" {
		t.Errorf("star.Name = %q; want %q", cat[0].Name, "HD1")
	}
}

/*****************************************************************************************************************/

func TestLoadCanonicalizesInternalWhitespace(t *testing.T) {
	line := starLine("A   B", "1", "01", "00", "00.0", "+", "00", "00", "00", "5.00")

	cat, err := Load(strings.NewReader(line))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cat[0].Name != "A B" {
		t.Errorf("star.Name = %q; want %q", cat[0].Name, "A B")
	}
}

/*****************************************************************************************************************/

// A line describing a non-stellar object (e.g. a nebula) fails to parse as a float somewhere
// and must be silently dropped rather than aborting the load.
func TestLoadSkipsMalformedNonStellarLine(t *testing.T) {
	lines := starLine("Sirius", "48915", "06", "45", "08.9", "-", "16", "42", "58", "-1.46") + "\n" +
		buildLine(map[[2]int]string{{indices.nameStart, indices.nameEnd}: "NGC 1976"}, 110)

	cat, err := Load(strings.NewReader(lines))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if len(cat) != 1 {
		t.Fatalf("Load() returned %d stars; want 1 (non-stellar line should be skipped)", len(cat))
	}
}

/*****************************************************************************************************************/

func TestLoadAssignsDenseSequentialIDs(t *testing.T) {
	lines := strings.Join([]string{
		starLine("Star A", "1", "01", "00", "00.0", "+", "00", "00", "00", "1.00"),
		buildLine(nil, 110), // blank line: not a star, skipped
		starLine("Star B", "2", "02", "00", "00.0", "+", "00", "00", "00", "2.00"),
	}, "\n")

	cat, err := Load(strings.NewReader(lines))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if len(cat) != 2 {
		t.Fatalf("Load() returned %d stars; want 2", len(cat))
	}
	if cat[0].Name != "Star A" || cat[1].Name != "Star B" {
		t.Errorf("unexpected ids: %+v", cat)
	}
}

/*****************************************************************************************************************/

func TestFilterByMagnitude(t *testing.T) {
	lines := strings.Join([]string{
		starLine("Bright", "1", "01", "00", "00.0", "+", "00", "00", "00", "1.00"),
		starLine("Faint", "2", "02", "00", "00.0", "+", "00", "00", "00", "9.00"),
	}, "\n")

	cat, err := Load(strings.NewReader(lines))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	filtered := cat.FilterByMagnitude(4.0)
	if len(filtered) != 1 {
		t.Fatalf("FilterByMagnitude(4.0) returned %d stars; want 1", len(filtered))
	}
}
