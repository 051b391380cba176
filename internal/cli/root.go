package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/colock-player/internal/config"
	"github.com/ytget/colock-player/internal/controller"
	"github.com/ytget/colock-player/internal/locale"
	"github.com/ytget/colock-player/internal/logging"
	"github.com/ytget/colock-player/internal/model"
	"github.com/ytget/colock-player/internal/platform"
)

const appName = "colock"

// PlayerFactory builds an audio player for a configured command line
type PlayerFactory func(command string, logger *zap.SugaredLogger) (controller.Player, error)

// GUIRunner starts the desktop application
type GUIRunner func(opts config.Options, logger *zap.SugaredLogger) error

// Deps are the pieces the commands cannot build themselves
type Deps struct {
	NewPlayer PlayerFactory
	RunGUI    GUIRunner
	// HandleDir overrides the directory for playback handles
	HandleDir string
}

// DefaultPlayerFactory builds the platform command player
func DefaultPlayerFactory(command string, logger *zap.SugaredLogger) (controller.Player, error) {
	player, err := platform.NewCommandPlayer(command, logger)
	if err != nil {
		return nil, err
	}
	return player, nil
}

// flags holds the global flag values
type flags struct {
	envFile       string
	serverURL     string
	lineType      string
	minAudioBytes int
	timeout       time.Duration
	discardStale  bool
	player        string
	lang          string
	verbose       bool
	jsonLogs      bool
}

// session is the per-invocation state shared by the commands
type session struct {
	opts     config.Options
	logger   *zap.SugaredLogger
	texts    *locale.Localization
	styles   Styles
	notifier *TerminalNotifier
}

// NewRootCommand creates the colock command tree
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.NewPlayer == nil {
		deps.NewPlayer = DefaultPlayerFactory
	}

	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Consonant-lock language converter and voice player",
		Long: `colock - A command line client for the colock language service.

Converts Japanese text with the getColockLanguage endpoint and reads the
result aloud through the generateVoice endpoint.

Configuration is read from a .env file and COLOCK_* environment variables;
flags override both.

Examples:
  # Convert text with the default row
  colock convert こんにちは

  # Convert to the "ka" row and play the result
  colock speak -l ka こんにちは

  # Start the desktop application
  colock gui
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.envFile, "env-file", "", "env file to load (default .env if present)")
	pf.StringVarP(&f.serverURL, "server", "s", "", "service root URL (env "+config.EnvServerURL+")")
	pf.StringVarP(&f.lineType, "line-type", "l", "", "row to lock consonants to (env "+config.EnvLineType+")")
	pf.IntVar(&f.minAudioBytes, "min-audio-bytes", 0, "smallest voice payload accepted (env "+config.EnvMinAudioBytes+")")
	pf.DurationVar(&f.timeout, "timeout", 0, "per-request timeout, 0 for none (env "+config.EnvTimeout+")")
	pf.BoolVar(&f.discardStale, "discard-stale", false, "drop responses superseded by a newer request (env "+config.EnvDiscardStale+")")
	pf.StringVar(&f.player, "player", "", "audio player command line (env "+config.EnvPlayer+")")
	pf.StringVar(&f.lang, "lang", "", "message language: ja or en (env "+config.EnvLanguage+")")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&f.jsonLogs, "json-logs", false, "log as JSON")

	rootCmd.AddCommand(newConvertCmd(f, deps))
	rootCmd.AddCommand(newSpeakCmd(f, deps))
	rootCmd.AddCommand(newLineTypesCmd())
	rootCmd.AddCommand(newGUICmd(f, deps))

	return rootCmd
}

// Execute runs the command tree with the default dependencies
func Execute(deps Deps) error {
	return NewRootCommand(deps).Execute()
}

// resolveOptions merges env configuration with explicitly set flags
func resolveOptions(cmd *cobra.Command, f *flags) (config.Options, error) {
	var (
		opts config.Options
		err  error
	)
	if f.envFile != "" {
		opts, err = config.FromEnv(f.envFile)
	} else {
		opts, err = config.FromEnv()
	}
	if err != nil {
		return config.Options{}, err
	}

	pf := cmd.Flags()
	if pf.Changed("server") {
		opts.ServerURL = f.serverURL
		opts.MarkExplicit(config.FieldServerURL)
	}
	if pf.Changed("line-type") {
		opts.DefaultLineType = model.LineType(f.lineType)
		opts.MarkExplicit(config.FieldLineType)
	}
	if pf.Changed("min-audio-bytes") {
		opts.MinAudioBytes = config.ClampMinAudioBytes(f.minAudioBytes)
		opts.MarkExplicit(config.FieldMinAudioBytes)
	}
	if pf.Changed("timeout") {
		if f.timeout < 0 {
			return config.Options{}, fmt.Errorf("timeout must not be negative")
		}
		opts.RequestTimeout = f.timeout
		opts.MarkExplicit(config.FieldTimeout)
	}
	if pf.Changed("discard-stale") {
		opts.DiscardStale = f.discardStale
		opts.MarkExplicit(config.FieldDiscardStale)
	}
	if pf.Changed("player") {
		opts.PlayerCommand = f.player
		opts.MarkExplicit(config.FieldPlayer)
	}
	if pf.Changed("lang") {
		opts.Language = f.lang
		opts.MarkExplicit(config.FieldLanguage)
	}
	return opts, nil
}

func newSession(cmd *cobra.Command, f *flags) (*session, error) {
	opts, err := resolveOptions(cmd, f)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{Debug: f.verbose, JSON: f.jsonLogs})
	if err != nil {
		return nil, err
	}
	if !f.verbose {
		logger = logger.Desugar().WithOptions(zap.IncreaseLevel(zap.WarnLevel)).Sugar()
	}

	texts := locale.NewLocalization()
	texts.SetLanguage(opts.Language)

	styles := NewStyles(DefaultTheme)
	return &session{
		opts:     opts,
		logger:   logger,
		texts:    texts,
		styles:   styles,
		notifier: NewTerminalNotifier(cmd.ErrOrStderr(), styles),
	}, nil
}

func (s *session) controllerOptions() []controller.Option {
	return append(controller.FromConfig(s.opts), controller.WithLogger(s.logger))
}

func printResult(w io.Writer, styles Styles, result model.ConversionResult) {
	if result.IsError() {
		return
	}
	fmt.Fprintln(w, styles.Result.Render(result.Text))
}
