package experiments

import (
	"context"
	"fmt"
	"path"

	"github.com/marl-lab/gridwalk/store"
	"github.com/spf13/cobra"
)

func fileStore() *store.FileStore {
	return store.NewFileStore(path.Join(saveDir, "policies"))
}

func redisStore() *store.RedisStore {
	return store.NewRedisStore(cfg.RedisAddr, cfg.RedisPrefix)
}

// PolicyCommand manages recorded policy checkpoints
func PolicyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "policy",
		Long: "Manage recorded policy checkpoints",
	}

	var useRedis bool
	list := &cobra.Command{
		Use: "list",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s store.PolicyStore = fileStore()
			if useRedis {
				s = redisStore()
			}
			names, err := s.List(context.Background())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&useRedis, "redis", false, "List the policies stored in redis")

	push := &cobra.Command{
		Use:  "push [name]",
		Long: "Copy a recorded policy from the file store to redis",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			q, err := fileStore().Load(ctx, args[0])
			if err != nil {
				return err
			}
			rs := redisStore()
			defer rs.Close()
			if err := rs.Save(ctx, args[0], q); err != nil {
				return err
			}
			fmt.Printf("Pushed policy %s to %s\n", args[0], cfg.RedisAddr)
			return nil
		},
	}

	pull := &cobra.Command{
		Use:  "pull [name]",
		Long: "Copy a policy from redis to the file store",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rs := redisStore()
			defer rs.Close()
			q, err := rs.Load(ctx, args[0])
			if err != nil {
				return err
			}
			if err := fileStore().Save(ctx, args[0], q); err != nil {
				return err
			}
			fmt.Printf("Pulled policy %s from %s\n", args[0], cfg.RedisAddr)
			return nil
		},
	}

	cmd.AddCommand(list)
	cmd.AddCommand(push)
	cmd.AddCommand(pull)
	return cmd
}
