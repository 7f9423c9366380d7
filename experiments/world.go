package experiments

import (
	"context"
	"path"

	"github.com/marl-lab/gridwalk/environments"
	"github.com/marl-lab/gridwalk/policies"
	"github.com/marl-lab/gridwalk/types"
	"github.com/spf13/cobra"
)

// defaultWorldArt is a two walker world split by a wall, with the
// goal behind it. The door teleports from the bottom right corner
// back next to the goal.
var defaultWorldArt = []string{
	"..........",
	".P...#....",
	".....#....",
	"..####..*.",
	".....#....",
	".Q...#....",
	"..........",
}

var defaultWorldDoors = []environments.Door{
	{From: environments.Cell{I: 6, J: 9}, To: environments.Cell{I: 2, J: 9}},
}

// World compares the exploration policies on a multi walker grid
// world with walls, a door and a rewarding goal cell
func World(episodes, horizon int, saveDir string, runs int, goalReward float64, ctx context.Context) error {
	c := types.NewComparison(&types.ComparisonConfig{
		Runs:         runs,
		Episodes:     episodes,
		Horizon:      horizon,
		RecordPath:   saveDir,
		RecordTraces: false,
		RecordPolicy: true,
	})

	plotsDir := path.Join(saveDir, "plots")
	c.AddAnalysis("Coverage", types.NewCoverageAnalyzer(nil), types.CoveragePlotter(plotsDir))
	c.AddAnalysis("HeatMap", environments.NewHeatMapAnalyzer(), environments.HeatMapComparator(plotsDir))
	c.AddAnalysis("VisitGraph", types.NewVisitGraphAnalyzer(), types.VisitGraphRecorder(path.Join(saveDir, "graphs")))

	addExperiment := func(name string, policy types.Policy) error {
		env, err := environments.FromArt(defaultWorldArt, goalReward, defaultWorldDoors...)
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

func WorldCommand() *cobra.Command {
	var goalReward float64

	cmd := &cobra.Command{
		Use: "world",
		RunE: func(cmd *cobra.Command, args []string) error {
			return World(episodes, horizon, saveDir, runs, goalReward, context.Background())
		},
	}
	cmd.PersistentFlags().Float64Var(&goalReward, "goal-reward", 10, "Reward paid by the goal cell")
	return cmd
}
