package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService     = "service"
	FieldVersion     = "version"
	FieldResource    = "resource"
	FieldTeam        = "team"
	FieldPlayer      = "player"
	FieldPlayerID    = "player_id"
	FieldNationality = "nationality"
	FieldDate        = "date"
	FieldCount       = "count"
	FieldPath        = "path"
)
