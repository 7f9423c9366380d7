package experiments

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/marl-lab/gridwalk/environments"
	"github.com/marl-lab/gridwalk/ui"
	"github.com/spf13/cobra"
)

func ServeCommand() *cobra.Command {
	var art string
	var policyName string
	var useRedis bool
	var port int

	cmd := &cobra.Command{
		Use:  "serve",
		Long: "Expose a chain walk session over HTTP to watch and steer it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			session, keys, err := buildChainSession(ctx, art, policyName, useRedis, false)
			if err != nil {
				return err
			}
			server := ui.NewServer(session, port, keys)
			fmt.Printf("Serving the game on localhost:%d\n", port)
			return server.Start(ctx)
		},
	}
	cmd.PersistentFlags().StringVar(&art, "art", environments.DefaultChainArt, "Single row of art for the chain walk")
	cmd.PersistentFlags().StringVar(&policyName, "policy", "", "Name of a stored policy to drive the agent")
	cmd.PersistentFlags().BoolVar(&useRedis, "redis", false, "Load the policy from redis instead of the file store")
	cmd.PersistentFlags().IntVar(&port, "port", 8090, "Port to serve the game on")
	return cmd
}
