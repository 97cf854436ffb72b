package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/odyssey-erp/finflow/cmd/flowctl/cli"
	"github.com/odyssey-erp/finflow/internal/app"
	"github.com/odyssey-erp/finflow/internal/flow"
)

func main() {
	_ = godotenv.Load()

	var cfg *app.Config
	loadConfig := func() (*app.Config, error) {
		if cfg != nil {
			return cfg, nil
		}
		loaded, err := app.LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
		return cfg, nil
	}

	env := cli.Env{
		Stdout: os.Stdout,
		OpenRepo: func(ctx context.Context) (flow.Repository, func(), error) {
			c, err := loadConfig()
			if err != nil {
				return nil, nil, err
			}
			res, err := app.OpenResources(ctx, c, app.NewLogger(c), false)
			if err != nil {
				return nil, nil, err
			}
			return res.Store, res.Close, nil
		},
		OpenJobs: func(ctx context.Context) (*cli.JobsCLI, error) {
			c, err := loadConfig()
			if err != nil {
				return nil, err
			}
			return cli.NewJobsCLI(c.AsynqRedisOpt()), nil
		},
	}

	if err := cli.NewApp(env).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
