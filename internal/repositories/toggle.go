package repositories

import "gorm.io/gorm"

// toggleRow flips a unique relation row on or off. The delete and the
// conditional insert run inside one transaction so two concurrent toggles
// on the same key cannot both observe "absent" and double-insert; the
// unique index on the relation backs this up at the schema level.
//
// row must carry the key fields to insert; query/args identify the same
// row for deletion. Returns true when the relation is active afterwards.
func toggleRow(gdb *gorm.DB, row interface{}, query string, args ...interface{}) (bool, error) {
	active := false
	err := gdb.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(query, args...).Delete(row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			// Row existed: toggled off.
			return nil
		}
		active = true
		return tx.Create(row).Error
	})
	return active, err
}
