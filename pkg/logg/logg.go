// Package logg holds the shared zap field names so log output stays
// consistent across layers.
package logg

const (
	Layer     = "layer"
	Operation = "operation"
	Action    = "action"
	Selector  = "selector"
	URL       = "url"
	RunID     = "run_id"
)
