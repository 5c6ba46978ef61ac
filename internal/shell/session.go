package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/shlex"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/viktoryBurm/vfsh"
	"github.com/viktoryBurm/vfsh/config"
	"github.com/viktoryBurm/vfsh/internal/util"
)

// Session drives a single shell session: optional startup script playback
// followed by the interactive read-eval-print loop. Commands run strictly
// in sequence; one command's output and directory change are visible
// before the next line is parsed.
type Session struct {
	fs   *vfsh.FS
	disp *Dispatcher
	cfg  *config.Config
	in   io.Reader
	out  io.Writer
	log  util.Logger
}

func NewSession(fs *vfsh.FS, cfg *config.Config, in io.Reader, out io.Writer) *Session {
	sessionID := uuid.New().String()
	return &Session{
		fs:   fs,
		disp: NewDispatcher(fs, out),
		cfg:  cfg,
		in:   in,
		out:  out,
		log:  util.GetLogger("session").With().Str("session", sessionID).Logger(),
	}
}

// Prompt formats the input prompt as user@host:dir$ where dir is "/" for
// the root or the final path segment otherwise.
func (s *Session) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$ ", s.cfg.Username, s.cfg.Hostname, vfsh.Basename(s.fs.Cwd()))
}

// Run plays the startup script if one is configured, then enters the
// interactive loop. It returns when the user exits or input ends.
func (s *Session) Run() {
	if s.cfg.ScriptPath != "" {
		if exit := s.RunScript(s.cfg.ScriptPath); exit {
			return
		}
	}
	s.interactive()
}

// RunScript executes the newline-separated commands in the script at path.
// Blank lines and lines starting with "#" are skipped; every other line is
// echoed with the current prompt before execution, as if typed. Playback
// stops early on an exit command, reported by the true return.
func (s *Session) RunScript(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Error().Err(err).Str("script", path).Msg("Failed to read startup script")
		return false
	}
	s.log.Info().Str("script", path).Msg("Running startup script")

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fmt.Fprintf(s.out, "%s%s\n", s.Prompt(), line)
		exit := s.runLine(line)
		fmt.Fprintln(s.out)
		if exit {
			s.log.Debug().Int("line", i+1).Msg("Script requested exit")
			return true
		}
	}
	s.log.Info().Str("script", path).Msg("Startup script finished")
	return false
}

// interactive reads commands until exit or end of input. An interrupt
// signal is swallowed with a hint instead of terminating the session.
func (s *Session) interactive() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer func() {
		signal.Stop(sigCh)
		close(sigCh)
	}()
	go func() {
		for range sigCh {
			fmt.Fprintln(s.out, "\nType 'exit' to leave")
		}
	}()

	if s.isTerminal() {
		fmt.Fprintln(s.out, "Available commands: ls, cd, cat, pwd, echo, wc, du, tree, exit")
	}

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.Prompt())
		if !scanner.Scan() {
			// EOF ends the session like an exit command would
			fmt.Fprintln(s.out)
			s.log.Debug().Msg("End of input")
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if s.runLine(line) {
			return
		}
	}
}

// runLine tokenizes one input line and dispatches it. Tokenization honors
// quoting; an unbalanced quote is reported and the line is skipped.
func (s *Session) runLine(line string) bool {
	parts, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(s.out, "parse error: %v\n", err)
		return false
	}
	if len(parts) == 0 {
		return false
	}
	return s.disp.Execute(parts[0], parts[1:])
}

func (s *Session) isTerminal() bool {
	f, ok := s.in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
