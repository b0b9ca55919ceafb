package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/velmir/ravine/bench"
	"github.com/velmir/ravine/graph"
	"github.com/velmir/ravine/smp"
)

var sweep []int

// ProfileCmd scores the task-parallel shared-memory DFS against the
// serial baseline over a sweep of worker counts, reporting speedup and
// efficiency per point.
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Compare serial and task-parallel DFS",
	RunE:  runProfile,
}

func init() {
	ProfileCmd.Flags().IntSliceVar(&sweep, "sweep", []int{2, 4, 8, 16}, "worker counts to profile")
}

func runProfile(cmd *cobra.Command, args []string) error {
	g, err := graph.Scatter(config.Vertices)
	if err != nil {
		return err
	}
	logrus.Infof("profiling DFS over %d vertices, %d edges", g.Order(), g.Size())

	baseline, err := bench.Measure("serial", func() (int, error) {
		res, serr := smp.Serial(g, smp.WithWorkRounds(config.WorkRounds))
		if serr != nil {
			return 0, serr
		}

		return len(res.Order), nil
	})
	if err != nil {
		return err
	}
	logrus.Infof("serial: %.3f ms, %d vertices",
		float64(baseline.Elapsed.Nanoseconds())/1e6, baseline.Visited)

	for _, workers := range sweep {
		workers := workers
		sample, merr := bench.Measure(fmt.Sprintf("parallel-%d", workers), func() (int, error) {
			res, perr := smp.Parallel(g,
				smp.WithWorkers(workers),
				smp.WithWorkRounds(config.WorkRounds))
			if perr != nil {
				return 0, perr
			}

			return len(res.Order), nil
		})
		if merr != nil {
			return merr
		}

		row := bench.Score(baseline, sample, workers)
		logrus.Infof("workers=%-3d time=%9.3f ms speedup=%.4f efficiency=%.4f",
			row.Workers, float64(row.Sample.Elapsed.Nanoseconds())/1e6,
			row.Speedup, row.Efficiency)
	}

	return nil
}
