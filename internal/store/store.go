package store

import "context"

// Collection names for the two favorites collections.
const (
	CollectionFavoriteDrivers      = "favoritedriver"
	CollectionFavoriteConstructors = "favoriteconstructor"
)

// Favorites is the persistence surface for the favorites collections.
// Implementations render storage-assigned identifiers as plain strings;
// driver-internal ID types never cross this boundary. There is no update,
// delete, filtering, or uniqueness constraint: duplicate business keys are
// stored as separate documents.
type Favorites interface {
	// InsertOne stores doc in the named collection and returns the newly
	// assigned identifier in string form.
	InsertOne(ctx context.Context, collection string, doc any) (string, error)

	// ListAll returns every document in the named collection in storage
	// order, with any identifier field rewritten to its string form.
	ListAll(ctx context.Context, collection string) ([]map[string]any, error)

	// Name reports the connected database name, for diagnostics.
	Name() string

	// Collections lists the collection names present in the database, for
	// diagnostics.
	Collections(ctx context.Context) ([]string, error)
}
