package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/colock-player/internal/api"
	"github.com/ytget/colock-player/internal/controller"
	"github.com/ytget/colock-player/internal/model"
	"github.com/ytget/colock-player/internal/platform"
)

// ErrConversionFailed is returned when the service could not convert the input
var ErrConversionFailed = errors.New("conversion failed")

// ErrPlaybackFailed is returned when the voice cycle ended with an error
var ErrPlaybackFailed = errors.New("playback failed")

func newConvertCmd(f *flags, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "convert TEXT...",
		Short: "Convert text to the colock language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, f)
			if err != nil {
				return err
			}
			defer s.logger.Sync() //nolint:errcheck

			conversion, _ := s.newConversion(nil)
			return s.convert(cmd, conversion, strings.Join(args, " "))
		},
	}
}

func newSpeakCmd(f *flags, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "speak TEXT...",
		Short: "Convert text and read the result aloud",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, f)
			if err != nil {
				return err
			}
			defer s.logger.Sync() //nolint:errcheck

			play := NewTerminalControl("play", cmd.ErrOrStderr(), s.styles)
			panel := controller.NewControlPanel(nil, nil, play, s.texts)
			conversion, client := s.newConversion(panel)

			if err := s.convert(cmd, conversion, strings.Join(args, " ")); err != nil {
				return err
			}

			player, err := deps.NewPlayer(s.opts.PlayerCommand, s.logger)
			if err != nil {
				return fmt.Errorf("audio player unavailable: %w", err)
			}

			handles := platform.NewHandleStore(deps.HandleDir, s.logger)
			voice := controller.NewVoicePlaybackController(client, conversion.Store(), controller.PlatformHandles(handles),
				player, panel, s.notifier, s.texts, s.controllerOptions()...)

			return playAndWait(commandContext(cmd), voice)
		},
	}
}

func newLineTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "line-types",
		Short: "List the rows the service can lock consonants to",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, lt := range model.LineTypes() {
				line := string(lt)
				if lt == model.DefaultLineType {
					line += " (default)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}

func newGUICmd(f *flags, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Start the desktop application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.RunGUI == nil {
				return fmt.Errorf("desktop application is not available in this build")
			}
			s, err := newSession(cmd, f)
			if err != nil {
				return err
			}
			defer s.logger.Sync() //nolint:errcheck
			return deps.RunGUI(s.opts, s.logger)
		},
	}
}

func (s *session) newConversion(panel *controller.ControlPanel) (*controller.ConversionController, *api.Client) {
	client := api.NewClient(s.opts.ServerURL, api.WithLogger(s.logger))
	conversion := controller.NewConversionController(client, controller.NewResultStore(), panel, s.notifier, s.texts, s.controllerOptions()...)
	return conversion, client
}

func (s *session) convert(cmd *cobra.Command, conversion *controller.ConversionController, input string) error {
	result := conversion.Convert(commandContext(cmd), input, s.opts.DefaultLineType)
	if result.IsError() {
		return ErrConversionFailed
	}
	printResult(cmd.OutOrStdout(), s.styles, result)
	return nil
}

// playAndWait runs one voice cycle and blocks until its terminal event
func playAndWait(ctx context.Context, voice *controller.VoicePlaybackController) error {
	finished := make(chan error, 1)
	voice.SetFinishCallback(func(event model.TerminalEvent, cause error) {
		if event == model.PlaybackFailed {
			cause = fmt.Errorf("%w: %w", ErrPlaybackFailed, cause)
		} else {
			cause = nil
		}
		select {
		case finished <- cause:
		default:
		}
	})

	if err := voice.Play(ctx); err != nil {
		return err
	}

	select {
	case err := <-finished:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
