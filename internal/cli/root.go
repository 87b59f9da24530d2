// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/cybersafe-tui/internal/bot"
	"github.com/jeranaias/cybersafe-tui/internal/config"
	"github.com/jeranaias/cybersafe-tui/internal/logging"
	"github.com/jeranaias/cybersafe-tui/internal/ui/styles"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// options holds flag values.
type options struct {
	configPath  string
	verbose     bool
	seed        uint64
	noBanner    bool
	noTyping    bool
	typingDelay time.Duration
	summary     bool
}

// app carries state shared by all commands once PersistentPreRunE ran.
type app struct {
	opts    options
	logger  *zap.Logger
	profile termenv.Profile
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the cybersafe command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "cybersafe",
		Short: "South African cybersecurity awareness assistant",
		Long: `cybersafe is a friendly console assistant with tips on passwords,
phishing, privacy, safe browsing and social media.

Run without arguments to start a chat session.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runChat,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "config file (default ~/.cybersafe/config.toml)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "debug logging (written to log.file)")
	flags.Uint64Var(&a.opts.seed, "seed", 0, "seed for repeatable phishing tips (0 = random)")
	flags.BoolVar(&a.opts.noBanner, "no-banner", false, "skip the ASCII banner")
	a.addChatFlags(root)

	root.AddCommand(
		a.newChatCommand(),
		a.newTUICommand(),
		a.newTipsCommand(),
		a.newConfigCommand(),
		newVersionCommand(),
	)
	return root
}

// setup loads configuration, applies flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.RenderWarning(fmt.Sprintf("%v (using defaults)", err)))
	}
	if cfg == nil {
		cfg = config.Default()
	}
	a.applyFlags(cmd, cfg)
	config.SetGlobal(cfg)

	a.profile = ConfigureColor(cfg.UI.Color, cmd.OutOrStdout())

	logger, err := logging.New(cfg.Log, a.opts.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.Uint64("seed", cfg.Bot.Seed),
		zap.String("color", cfg.UI.Color),
	)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.opts.configPath != "" {
		return config.LoadFromPath(a.opts.configPath)
	}
	return config.Load()
}

// applyFlags copies explicitly set flags over the loaded config.
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Bot.Seed = a.opts.seed
	}
	if flags.Changed("no-banner") && a.opts.noBanner {
		cfg.Bot.ShowBanner = false
	}
	if flags.Changed("no-typing") && a.opts.noTyping {
		cfg.UI.Typing = false
	}
	if flags.Changed("typing-delay") {
		ms := int(a.opts.typingDelay / time.Millisecond)
		if ms < 0 {
			ms = 0
		}
		cfg.UI.TypingDelayMS = ms
	}
}

// rng returns the random source for the phishing tips. A zero seed means a
// clock-seeded source.
func (a *app) rng() *rand.Rand {
	seed := config.Global().Bot.Seed
	if seed == 0 {
		return nil
	}
	return bot.NewSeededRand(seed)
}
