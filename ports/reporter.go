package ports

import (
	"randlab/app"
)

// Reporter renders a completed pipeline run. The core never performs I/O;
// every output format lives behind this port.
type Reporter interface {
	Report(result *app.RunResult) error
}
