package outliner

import "github.com/tsawler/outliner/classify"

// classifyOptions holds the builder's configuration state.
type classifyOptions struct {
	config     classify.Config
	haveConfig bool
}

// defaultOptions returns the default builder options.
func defaultOptions() classifyOptions {
	return classifyOptions{}
}
