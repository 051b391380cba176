package platform

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/colock-player/internal/model"
)

// Player command constants
const (
	AFPlayCommand     = "afplay"
	PowerShellCommand = "powershell"
	PAPlayCommand     = "paplay"
	APlayCommand      = "aplay"
	FFPlayCommand     = "ffplay"
)

// Player command parameters
var (
	FFPlayArgs     = []string{"-nodisp", "-autoexit", "-loglevel", "error"}
	PowerShellArgs = []string{"-NoProfile", "-NonInteractive", "-Command"}
	LinuxPlayers   = []string{PAPlayCommand, APlayCommand, FFPlayCommand}
)

// lookPath is replaced in tests
var lookPath = exec.LookPath

// CommandPlayer plays audio files through a command-line player
type CommandPlayer struct {
	command string
	args    []string
	logger  *zap.SugaredLogger
}

// NewCommandPlayer returns a player for the current OS. A non-empty custom
// command line (e.g. "mpv --no-video") overrides detection; the file path is
// appended as the last argument.
func NewCommandPlayer(custom string, logger *zap.SugaredLogger) (*CommandPlayer, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	if fields := strings.Fields(custom); len(fields) > 0 {
		return &CommandPlayer{command: fields[0], args: fields[1:], logger: logger}, nil
	}

	switch runtime.GOOS {
	case OSDarwin:
		return &CommandPlayer{command: AFPlayCommand, logger: logger}, nil
	case OSWindows:
		return &CommandPlayer{command: PowerShellCommand, args: PowerShellArgs, logger: logger}, nil
	case OSLinux:
		return newLinuxPlayer(logger)
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// newLinuxPlayer picks the first available player
func newLinuxPlayer(logger *zap.SugaredLogger) (*CommandPlayer, error) {
	for _, name := range LinuxPlayers {
		if _, err := lookPath(name); err == nil {
			p := &CommandPlayer{command: name, logger: logger}
			if name == FFPlayCommand {
				p.args = FFPlayArgs
			}
			return p, nil
		}
	}
	return nil, fmt.Errorf("no audio player found (tried %s)", strings.Join(LinuxPlayers, ", "))
}

// Command returns the player executable
func (p *CommandPlayer) Command() string {
	return p.command
}

// Args builds the argument list for a file
func (p *CommandPlayer) Args(path string) []string {
	if p.command == PowerShellCommand {
		script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", strings.ReplaceAll(path, "'", "''"))
		return append(append([]string{}, p.args...), script)
	}
	return append(append([]string{}, p.args...), path)
}

// Play starts the player and returns once it is running. done is called
// exactly once, from another goroutine, with the terminal event.
func (p *CommandPlayer) Play(ctx context.Context, path string, done func(model.TerminalEvent, error)) error {
	cmd := exec.CommandContext(ctx, p.command, p.Args(path)...)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.command, err)
	}
	p.logger.Debugf("Player started: %s (pid %d)", p.command, cmd.Process.Pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			done(model.PlaybackFailed, fmt.Errorf("%s exited: %w", p.command, err))
			return
		}
		done(model.PlaybackEnded, nil)
	}()

	return nil
}
