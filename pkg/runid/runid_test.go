/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package runid

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestNewReturnsNonEmptyID(t *testing.T) {
	id := New()
	if id == "" {
		t.Fatal("New() returned an empty string")
	}
	if len(id) != 26 {
		t.Errorf("New() returned %q with length %d; want a 26-character ULID", id, len(id))
	}
}

/*****************************************************************************************************************/

func TestNewReturnsDistinctIDsAcrossCalls(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := New()
		if _, ok := seen[id]; ok {
			t.Fatalf("New() produced a duplicate id %q on call %d", id, i)
		}
		seen[id] = struct{}{}
	}
}

/*****************************************************************************************************************/
