package types

// Migration is a single SQL migration. SQL holds both directions separated by
// the "-- +migrate Up" marker, down statements first.
type Migration struct {
	ID  string
	SQL string
	// Prefix is prepended to the ID so several components can share one database
	Prefix string
}
