/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package runid mints a short, sortable identifier for a single CLI invocation (a catalog build
// or a solve attempt), so its log lines can be correlated without a tracing system.
package runid

/*****************************************************************************************************************/

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid"
)

/*****************************************************************************************************************/

// New returns a new ULID string seeded from the current time.
func New() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

/*****************************************************************************************************************/
