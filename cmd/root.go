package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/packvault/packvault/internal/config"
	"github.com/packvault/packvault/internal/engine"
	"github.com/packvault/packvault/internal/remote"
	"github.com/packvault/packvault/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var (
	flagDir     string
	flagAgent   string
	flagGit     string
	flagBranch  string
	flagPath    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "packvault",
	Short: "Sync AI assistant artifacts with PackVault",
	Long: `packvault compares the artifacts on this machine (commands,
standards, skills) against the PackVault server's canonical state and
turns the differences into change proposals.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Local sync root (defaults to PACKVAULT_DIR or .)")
	rootCmd.PersistentFlags().StringVar(&flagAgent, "agent", "", "Agent target filter (claude, cursor, continue, copilot)")
	rootCmd.PersistentFlags().StringVar(&flagGit, "git", "", "Pull from a git remote (owner/repo[:path][@ref]) instead of the server")
	rootCmd.PersistentFlags().StringVar(&flagBranch, "branch", "", "Git branch when --git is used")
	rootCmd.PersistentFlags().StringVar(&flagPath, "path", "", "Relative path inside the package source")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("packvault %s\n", Version)
	},
}

// setup resolves config, logger and collaborators shared by the sync
// commands.
type setup struct {
	cfg     *config.Config
	log     zerolog.Logger
	client  *remote.Client
	fetcher engine.Fetcher
	baseDir string
}

func newSetup() (*setup, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flagAgent != "" {
		if _, ok := config.AgentByName(flagAgent); !ok {
			return nil, fmt.Errorf("unknown agent %q (supported: claude, cursor, continue, copilot)", flagAgent)
		}
	}

	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	} else if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	s := &setup{
		cfg:     cfg,
		log:     log,
		client:  remote.NewClient(cfg.ServerURL, cfg.Token, log),
		baseDir: cfg.BaseDir,
	}
	if flagDir != "" {
		s.baseDir = flagDir
	}

	if flagGit != "" {
		s.fetcher = remote.NewGitSource(log)
	} else {
		s.fetcher = s.client
	}
	return s, nil
}

func (s *setup) request(packages []string) engine.FetchRequest {
	agent := s.cfg.Agent
	if flagAgent != "" {
		agent = flagAgent
	}
	return engine.FetchRequest{
		Packages:     packages,
		GitRemote:    flagGit,
		GitBranch:    flagBranch,
		RelativePath: flagPath,
		Agent:        agent,
	}
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Render(ui.Error, "Error: "+msg))
	os.Exit(1)
}
