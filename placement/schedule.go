package placement

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mcpnr/mcpnr/netlist"
)

// Schedule is an ordered sequence of placement steps.
type Schedule []Step

// DefaultSchedule recovers the reference placer's default schedule
// (config.rs's Config::from_args): an unconstrained analytical solve to
// spread cells out, centering as diffusion setup, four interleaved
// Diffusion/ConstrainedAnalytical rounds at region_size=2, delta_t=0.1
// (three ConstrainedAnalytical recovery passes at 2 iterations, one at 1),
// and a final shorter Diffusion pass (64 iterations, same region_size=2)
// at delta_t=0.05 to settle.
// delta_t=0.1 respects the FTCS stability bound dt <= 1/6 (spec.md §4.4)
// with headroom; the reference never runs closer to the bound than that.
func DefaultSchedule() Schedule {
	const cliqueThreshold = 2
	mainDiffusion := Diffusion{RegionSize: 2, Iterations: 512, DT: 0.1}

	return Schedule{
		UnconstrainedAnalytical{CliqueThreshold: cliqueThreshold},
		CenterCells{},
		mainDiffusion,
		ConstrainedAnalytical{CliqueThreshold: cliqueThreshold, Iterations: 2},
		mainDiffusion,
		ConstrainedAnalytical{CliqueThreshold: cliqueThreshold, Iterations: 2},
		mainDiffusion,
		ConstrainedAnalytical{CliqueThreshold: cliqueThreshold, Iterations: 2},
		mainDiffusion,
		ConstrainedAnalytical{CliqueThreshold: cliqueThreshold, Iterations: 1},
		Diffusion{RegionSize: 2, Iterations: 64, DT: 0.05},
	}
}

// Orchestrator runs a Schedule against a netlist hypergraph.
type Orchestrator struct {
	Schedule Schedule
	Geometry GeometryConfig
}

// Run executes each step in order, aborting immediately on the first
// failing step with the step's index and type attached for context.
func (o Orchestrator) Run(net *netlist.NetlistHypergraph) error {
	for i, step := range o.Schedule {
		log := logrus.WithFields(logrus.Fields{"step_index": i, "step_type": stepName(step)})
		log.Debug("placement: running step")
		if err := step.Apply(net, o.Geometry); err != nil {
			log.WithError(err).Error("placement: step failed")
			return errors.Wrapf(err, "placement: step %d (%s)", i, stepName(step))
		}
	}
	return nil
}

func stepName(s Step) string {
	switch s.(type) {
	case CenterCells:
		return "CenterCells"
	case UnconstrainedAnalytical:
		return "UnconstrainedAnalytical"
	case Diffusion:
		return "Diffusion"
	case ConstrainedAnalytical:
		return "ConstrainedAnalytical"
	default:
		return "Unknown"
	}
}
