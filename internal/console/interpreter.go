package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/game"
	"github.com/osse101/Mansion_Go/internal/logger"
	"github.com/osse101/Mansion_Go/internal/metrics"
	"github.com/osse101/Mansion_Go/internal/naming"
)

// Options tunes the console
type Options struct {
	// ClearScreen clears the terminal before the game start and after every input line
	ClearScreen bool
}

// Interpreter reads player input line by line and drives a game
type Interpreter struct {
	game     *game.Game
	registry *Registry
	reader   *bufio.Reader
	out      io.Writer
	opts     Options
}

// NewInterpreter creates an interpreter reading from in and writing to out
func NewInterpreter(g *game.Game, in io.Reader, out io.Writer, opts Options) *Interpreter {
	return &Interpreter{
		game:     g,
		registry: NewGameRegistry(g),
		reader:   bufio.NewReader(in),
		out:      out,
		opts:     opts,
	}
}

// Run plays until the player confirms quitting, input ends or ctx is done
func (i *Interpreter) Run(ctx context.Context) error {
	ctx = logger.WithSessionID(ctx, logger.NewID())
	log := logger.FromContext(ctx)
	log.Info(LogMsgSessionStarted)

	i.clear()
	i.println(MsgWelcome)
	i.println(i.game.Look(ctx))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		i.print(Prompt)
		line, tooLong, err := i.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info(LogMsgEndOfInput)
				return nil
			}
			return err
		}
		i.clear()

		if tooLong {
			log.Warn(LogMsgLineTooLong, "limit", MaxLineBytes)
			i.reject(logger.WithCommandID(ctx, logger.NewID()), "")
			continue
		}

		if !i.Execute(ctx, line) {
			log.Info(LogMsgSessionEnded)
			return nil
		}
	}
}

// Execute handles one line of input and reports whether play continues
func (i *Interpreter) Execute(ctx context.Context, line string) bool {
	ctx = logger.WithCommandID(ctx, logger.NewID())
	log := logger.FromContext(ctx)

	verb, arg, hasArg := strings.Cut(naming.NormalizeInput(line), " ")
	cmd, ok := i.registry.Get(verb)
	if !ok || cmd.TakesArgument() != hasArg {
		i.reject(ctx, verb)
		return true
	}

	var output string
	err := metrics.InstrumentCommand(cmd.Name(), func() error {
		var runErr error
		output, runErr = cmd.Run(ctx, arg)
		return runErr
	}, classify(cmd))

	switch {
	case err == nil:
		log.Debug(LogMsgCommand, "verb", verb)
		i.println(output)
	case errors.Is(err, errQuit):
		return !i.confirmQuit()
	default:
		i.report(ctx, cmd, verb, err)
	}
	return true
}

// reject answers input that matches no command
func (i *Interpreter) reject(ctx context.Context, verb string) {
	metrics.CommandsTotal.WithLabelValues(metrics.VerbUnknown, metrics.ResultRejected).Inc()
	i.report(ctx, nil, verb, fmt.Errorf("%w: '%s'", domain.ErrUnknownCommand, verb))
}

// report prints the player-facing text for a command error
func (i *Interpreter) report(ctx context.Context, cmd Command, verb string, err error) {
	log := logger.FromContext(ctx)

	msg, known := messageFor(cmd, err)
	if !known {
		log.Error(LogMsgUnexpected, "verb", verb, "error", err)
		msg = MsgUnexpected
	} else {
		log.Debug(LogMsgCommand, "verb", verb, "error", err)
	}
	i.println(msg)
}

// confirmQuit asks before leaving. End of input counts as yes.
func (i *Interpreter) confirmQuit() bool {
	i.print(MsgQuitPrompt)
	line, tooLong, err := i.readLine()
	if err != nil {
		return true
	}
	return !tooLong && naming.NormalizeInput(line) == confirmYes
}

// readLine returns the next line without its line ending. A line longer than
// MaxLineBytes is consumed whole and reported as too long, so reading resumes
// at the following line. The last line may end without a newline.
func (i *Interpreter) readLine() (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, readErr := i.reader.ReadLine()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) && (len(buf) > 0 || tooLong) {
				return string(buf), tooLong, nil
			}
			return "", false, readErr
		}

		if !tooLong {
			if len(buf)+len(chunk) > MaxLineBytes {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

func (i *Interpreter) clear() {
	if i.opts.ClearScreen {
		i.print(ClearScreen)
	}
}

func (i *Interpreter) print(s string) {
	fmt.Fprint(i.out, s)
}

func (i *Interpreter) println(s string) {
	fmt.Fprintln(i.out, s)
}
