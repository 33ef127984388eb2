package orbit

import (
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Echo logs every position at debug level as "x=<x> y=<y>", starting with
// the initial position. It is diagnostic output only.
type Echo struct {
	logger hclog.Logger
}

func NewEcho(logger hclog.Logger) *Echo {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Echo{logger: logger}
}

func (e *Echo) OnStep(step int, x sim.State, t float64) {
	if !e.logger.IsDebug() {
		return
	}
	e.logger.Debug("x="+format(x[0])+" y="+format(x[1]), "step", step)
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
