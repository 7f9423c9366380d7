package experiments

import (
	"github.com/marl-lab/gridwalk/config"
	"github.com/marl-lab/gridwalk/explorer"
	"github.com/spf13/cobra"
)

var (
	episodes int
	horizon  int
	saveDir  string
	runs     int

	cfg *config.Config
)

// GetRootCommand builds the command tree. Flag defaults come from the
// environment where a variable is set.
func GetRootCommand() (*cobra.Command, error) {
	var err error
	cfg, err = config.FromEnv()
	if err != nil {
		return nil, err
	}

	rootCommand := &cobra.Command{
		Use:   "gridwalk",
		Short: "A toy playground for multi-agent reinforcement learning on grid worlds",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 10000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 100, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", cfg.ResultsDir, "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	// adding the subcommands here
	rootCommand.AddCommand(ChainCommand())
	rootCommand.AddCommand(WorldCommand())
	rootCommand.AddCommand(PlayCommand())
	rootCommand.AddCommand(ServeCommand())
	rootCommand.AddCommand(PolicyCommand())
	rootCommand.AddCommand(explorer.ExploreCommand())
	return rootCommand, nil
}
