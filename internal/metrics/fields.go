package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrResource = "resource"
)
