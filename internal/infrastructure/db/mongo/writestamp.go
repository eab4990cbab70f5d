package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// The audit columns are stamped here, once, rather than per entity.
// Every repository routes inserts through stampInsert and updates
// through stampUpdate so updated_at is refreshed on every write.

// stampInsert returns the audit timestamps for a new document.
func stampInsert() (createdAt, updatedAt time.Time) {
	now := time.Now().UTC()
	return now, now
}

// stampUpdate adds a fresh updated_at to the $set document.
func stampUpdate(set bson.M) bson.M {
	set["updated_at"] = time.Now().UTC()
	return set
}
