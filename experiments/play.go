package experiments

import (
	"context"
	"os"
	"path"

	"github.com/marl-lab/gridwalk/environments"
	"github.com/marl-lab/gridwalk/store"
	"github.com/marl-lab/gridwalk/types"
	"github.com/marl-lab/gridwalk/ui"
	"github.com/spf13/cobra"
)

// buildChainSession prepares an interactive chain walk session.
// The agent is a trained q table loaded from the store when a policy
// name is given, a random walker otherwise, or nothing at all.
func buildChainSession(ctx context.Context, art, policyName string, useRedis, human bool) (*ui.Session, map[string]string, error) {
	env, err := environments.NewChainWalk(art)
	if err != nil {
		return nil, nil, err
	}

	var agent ui.Decider
	switch {
	case human:
	case policyName != "":
		var policyStore store.PolicyStore = store.NewFileStore(path.Join(saveDir, "policies"))
		if useRedis {
			policyStore = store.NewRedisStore(cfg.RedisAddr, cfg.RedisPrefix)
		}
		q, err := policyStore.Load(ctx, policyName)
		if err != nil {
			return nil, nil, err
		}
		agent = ui.NewGreedyDecider(q)
	default:
		agent = ui.NewPolicyDecider(types.NewRandomPolicy())
	}

	walker := env.Walkers()[0]
	keys := map[string]string{
		"a": walker + ":" + environments.Left,
		"d": walker + ":" + environments.Right,
		"w": walker + ":" + environments.Stay,
	}
	session := ui.NewSession(env, env.GoalReward(), env.Renderer(), agent)
	return session, keys, nil
}

func PlayCommand() *cobra.Command {
	var art string
	var policyName string
	var useRedis bool
	var human bool

	cmd := &cobra.Command{
		Use:  "play",
		Long: "Play the chain walk in the terminal, alone or alongside an agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session, keys, err := buildChainSession(ctx, art, policyName, useRedis, human)
			if err != nil {
				return err
			}
			return ui.Play(session, &ui.PlayConfig{
				Keys:  keys,
				Delay: cfg.PlayDelay,
				In:    os.Stdin,
				Out:   os.Stdout,
			})
		},
	}
	cmd.PersistentFlags().StringVar(&art, "art", environments.DefaultChainArt, "Single row of art for the chain walk")
	cmd.PersistentFlags().StringVar(&policyName, "policy", "", "Name of a stored policy to drive the agent")
	cmd.PersistentFlags().BoolVar(&useRedis, "redis", false, "Load the policy from redis instead of the file store")
	cmd.PersistentFlags().BoolVar(&human, "human", false, "Play without an agent")
	return cmd
}
