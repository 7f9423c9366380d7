package experiments

import (
	"context"
	"path"

	"github.com/marl-lab/gridwalk/environments"
	"github.com/marl-lab/gridwalk/policies"
	"github.com/marl-lab/gridwalk/types"
	"github.com/spf13/cobra"
)

// ChainWalk compares the exploration policies on the classic chain
// walk: a small prize two cells away, a large one at the far end
func ChainWalk(episodes, horizon int, saveDir string, runs int, art string, ctx context.Context) error {
	c := types.NewComparison(&types.ComparisonConfig{
		Runs:         runs,
		Episodes:     episodes,
		Horizon:      horizon,
		RecordPath:   saveDir,
		RecordTraces: true,
		RecordPolicy: true,
	})

	plotsDir := path.Join(saveDir, "plots")
	c.AddAnalysis("Coverage", types.NewCoverageAnalyzer(nil), types.CoveragePlotter(plotsDir))
	c.AddAnalysis("Return", types.NewReturnAnalyzer(), types.ReturnPlotter(plotsDir))

	monitorWorld, err := environments.NewChainWalk(art)
	if err != nil {
		return err
	}
	c.AddAnalysis("RightEnd", types.NewMonitorAnalyzer(environments.ReachedRightEnd(monitorWorld)), types.MonitorReporter("Right end"))

	addExperiment := func(name string, policy types.Policy) error {
		env, err := environments.NewChainWalk(art)
		if err != nil {
			return err
		}
		c.AddExperiment(types.NewExperiment(name, policy, env, env.GoalReward()))
		return nil
	}

	if err := addExperiment("Random", types.NewRandomPolicy()); err != nil {
		return err
	}
	if err := addExperiment("QLearning", policies.NewQLearningPolicy(0.3, 0.7, 0.05)); err != nil {
		return err
	}
	if err := addExperiment("NegFreq", policies.NewSoftMaxNegFreqPolicy(0.3, 0.7, 1, false)); err != nil {
		return err
	}
	if err := addExperiment("BonusGreedy", policies.NewBonusPolicyGreedy(0.1, 0.99, 0.02, true)); err != nil {
		return err
	}

	c.Run(ctx)
	return nil
}

func ChainCommand() *cobra.Command {
	var art string

	cmd := &cobra.Command{
		Use: "chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ChainWalk(episodes, horizon, saveDir, runs, art, context.Background())
		},
	}
	cmd.PersistentFlags().StringVar(&art, "art", environments.DefaultChainArt, "Single row of art for the chain walk")
	return cmd
}
