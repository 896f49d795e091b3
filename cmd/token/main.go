// token は運用と動作確認のためにアクセストークンを発行します。
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ogurasousui/staffing-engine/internal/adapters/grpc/handler"
	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/platform/config"
)

func main() {
	if err := tokenCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tokenCmd() *cobra.Command {
	var (
		configPath string
		act        actor.Actor
		role       string
		ttl        time.Duration
	)

	cmd := &cobra.Command{
		Use:          "token",
		Short:        "Issue a signed access token for an actor",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			if configPath == "" {
				configPath = os.Getenv("CONFIG_PATH")
			}
			if configPath == "" {
				configPath = "assets/local.yaml"
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			parsed, err := actor.ParseRole(role)
			if err != nil {
				return err
			}
			act.Role = parsed

			signed, err := handler.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer).Issue(act, time.Now(), ttl)
			if err != nil {
				return err
			}
			cmd.Println(signed)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "path to config file")
	f.StringVar(&act.UserID, "user", "", "user id (sub claim)")
	f.StringVar(&role, "role", string(actor.RoleSuperAdmin), "actor role")
	f.StringVar(&act.AgencyID, "agency", "", "agency id")
	f.StringVar(&act.EmployerID, "employer", "", "employer id")
	f.StringVar(&act.EmployeeID, "employee", "", "employee id")
	f.DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
