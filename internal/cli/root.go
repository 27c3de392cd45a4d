package cli

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Neev4n/CodeCrafters-Shell-GO/minishell/internal/config"
	"github.com/Neev4n/CodeCrafters-Shell-GO/minishell/internal/logger"
	"github.com/Neev4n/CodeCrafters-Shell-GO/minishell/internal/shell"
	pkgshell "github.com/Neev4n/CodeCrafters-Shell-GO/minishell/pkg/shell"
)

const version = "0.1.0"

var (
	cfgFile  string
	logLevel string
	startDir string
	prompt   string
)

// rootCmd runs the interactive shell
var rootCmd = &cobra.Command{
	Use:   "minishell",
	Short: "minishell - a tiny file shell",
	Long: `minishell reads one command per line and runs it against the local
filesystem: pwd, cd, ls, mkdir, rmdir, touch, cp [-r], rm, cat, wc, zip and
unzip, with > and >> output redirection. Type exit to quit.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.minishell/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&startDir, "dir", "", "starting working directory (default is the current directory)")
	rootCmd.Flags().StringVar(&prompt, "prompt", "", "prompt shown on interactive terminals")

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logCfg := logger.DefaultConfig()
	if cfg.Logging.Level != "" {
		logCfg.Level = cfg.Logging.Level
	}
	logCfg.File = cfg.Logging.File
	logCfg.Pretty = cfg.Logging.Pretty
	logCfg.Out = cmd.ErrOrStderr()

	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	defer log.Close()

	session, err := pkgshell.NewSession(afero.NewOsFs(), cfg.Shell.StartDir, cfg.Shell.HomeDir)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	reader, err := shell.NewReader(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Shell.Prompt)
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer reader.Close()

	sh := pkgshell.New(session, reader, cmd.OutOrStdout(), cmd.ErrOrStderr(),
		pkgshell.WithLogger(log.Session()))

	return sh.Run(cmd.Context())
}

// loadConfig layers flags over the config file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("dir") {
		cfg.Shell.StartDir = startDir
	}
	if cmd.Flags().Changed("prompt") {
		cfg.Shell.Prompt = prompt
	}

	if err := cfg.ResolveDirs(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// GetRootCmd returns the root command for testing
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}
