package domain

// FavoriteDriver is the client-supplied payload for a bookmarked driver.
// DriverID carries the Ergast driver identifier; the remaining fields are
// optional display data persisted as-is.
type FavoriteDriver struct {
	DriverID    string `json:"driver_id"`
	Code        string `json:"code,omitempty"`
	GivenName   string `json:"given_name,omitempty"`
	FamilyName  string `json:"family_name,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// FavoriteConstructor is the client-supplied payload for a bookmarked
// constructor.
type FavoriteConstructor struct {
	ConstructorID string `json:"constructor_id"`
	Name          string `json:"name,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
}
