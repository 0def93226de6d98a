/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package catalogstore persists a pairing.PairTable as the "deterministic tables" described in §6:
// a local SQLite database, written once by the Phase A catalog-build command and loaded once per
// process by Phase B. The pairing.NeighborTable is not stored; Load rederives it from the loaded
// PairTable. Round-tripping through the store reproduces both in-memory tables exactly (testable
// property 7).
package catalogstore

/*****************************************************************************************************************/

import (
	"fmt"
	"sort"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stonkchonk/interplanetary-localization/pkg/pairing"
)

/*****************************************************************************************************************/

// pairRow is the GORM model backing a single CatalogPair row.
type pairRow struct {
	ID               uint `gorm:"primarykey"`
	FirstID          int  `gorm:"index:idx_first"`
	SecondID         int  `gorm:"index:idx_second"`
	CosineSeparation float64
	SortOrder        int `gorm:"index:idx_sort_order"`
}

/*****************************************************************************************************************/

func (pairRow) TableName() string {
	return "catalog_pairs"
}

/*****************************************************************************************************************/

// Store wraps a GORM/SQLite connection holding a single catalog's persisted PairTable.
// NeighborTable is never stored directly - it is always rederived from the PairTable on load,
// which is what keeps the two representations from drifting apart (§3: NeighborTable is
// "derived from PairTable").
type Store struct {
	db *gorm.DB
}

/*****************************************************************************************************************/

// Open opens (or creates) a SQLite database at path and ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("catalogstore: failed to open %s: %w", path, err)
	}

	if err := db.AutoMigrate(&pairRow{}); err != nil {
		return nil, fmt.Errorf("catalogstore: failed to migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

/*****************************************************************************************************************/

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

/*****************************************************************************************************************/

// Save persists table, replacing any previously stored pairs. SortOrder records the table's
// position so Load can reproduce the exact ascending-by-cosine ordering without relying on
// floating-point comparisons surviving a round trip through SQLite.
func (s *Store) Save(table pairing.PairTable) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + pairRow{}.TableName()).Error; err != nil {
			return fmt.Errorf("catalogstore: failed to clear existing pairs: %w", err)
		}

		rows := make([]pairRow, len(table))
		for i, pair := range table {
			rows[i] = pairRow{
				FirstID:          pair.FirstID,
				SecondID:         pair.SecondID,
				CosineSeparation: pair.CosineSeparation,
				SortOrder:        i,
			}
		}

		if len(rows) == 0 {
			return nil
		}

		const batchSize = 500
		if err := tx.CreateInBatches(&rows, batchSize).Error; err != nil {
			return fmt.Errorf("catalogstore: failed to save pairs: %w", err)
		}

		return nil
	})
}

/*****************************************************************************************************************/

// Load reconstructs the PairTable (in its original sorted order) and its derived NeighborTable.
func (s *Store) Load() (pairing.PairTable, pairing.NeighborTable, error) {
	var rows []pairRow

	if err := s.db.Order("sort_order asc").Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("catalogstore: failed to load pairs: %w", err)
	}

	// Defensive re-sort: SortOrder is the source of truth, but an externally-edited database
	// should not silently desync the two representations.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })

	table := make(pairing.PairTable, len(rows))
	for i, row := range rows {
		table[i] = pairing.CatalogPair{
			FirstID:          row.FirstID,
			SecondID:         row.SecondID,
			CosineSeparation: row.CosineSeparation,
		}
	}

	return table, table.Neighbors(), nil
}

/*****************************************************************************************************************/
