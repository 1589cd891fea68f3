package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathlab/internal/config"
	"github.com/katalvlaran/pathlab/search"
)

// cli carries state shared by every subcommand once setup has run.
type cli struct {
	v       *viper.Viper
	cfg     config.Config
	log     *logrus.Logger
	envFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New()}
	root := &cobra.Command{
		Use:               "pathlab",
		Short:             "Grid pathfinding sandbox: BFS, DFS, UCS, DLS, IDDFS and bidirectional BFS",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.Int("depth-limit", search.DefaultDepthLimit, "budget for depth-limited search")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&c.envFile, "env-file", "", ".env file to load (default ./.env)")
	c.bind(config.KeyDepthLimit, flags.Lookup("depth-limit"))
	c.bind(config.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(c.tuiCmd(), c.serveCmd(), c.runCmd())
	return root
}

// setup loads .env, resolves configuration and builds the logger.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	boot := logrus.New()
	boot.SetOutput(cmd.ErrOrStderr())
	var files []string
	if c.envFile != "" {
		files = append(files, c.envFile)
	}
	config.LoadDotEnv(boot, files...)

	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = cfg.Logger(cmd.ErrOrStderr())
	return nil
}
