package shell

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/beka-birhanu/grid-maze/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
)

var ErrMissingDependency = errors.New("session dependency is missing")

// KeyReader yields one key press at a time. go-tty's TTY satisfies it.
type KeyReader interface {
	ReadRune() (rune, error)
}

// Session plays levels one after another until the player quits or declines
// another level.
type Session struct {
	keys     KeyReader
	out      io.Writer
	newLevel i.LevelFactory
	logger   general_i.Logger
	levels   int
}

// Config holds the dependencies of a session.
type Config struct {
	Keys     KeyReader
	Out      io.Writer
	NewLevel i.LevelFactory
	Logger   general_i.Logger
}

// NewSession creates a session from c.
func NewSession(c *Config) (*Session, error) {
	if c.Keys == nil || c.Out == nil || c.NewLevel == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	return &Session{
		keys:     c.Keys,
		out:      c.Out,
		newLevel: c.NewLevel,
		logger:   c.Logger,
	}, nil
}

// Levels returns how many levels have been started.
func (s *Session) Levels() int {
	return s.levels
}

// Run plays until the player quits. Running out of input counts as quitting.
func (s *Session) Run() error {
	for {
		won, err := s.playLevel()
		if err != nil {
			return err
		}
		if !won {
			return nil
		}

		if _, err := fmt.Fprintf(s.out, "\n%s\n", PlayAgainText); err != nil {
			return err
		}

		r, err := s.readKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !IsYes(r) {
			s.logger.Info(fmt.Sprintf("player stopped after %d level(s)", s.levels))
			return nil
		}
	}
}

// playLevel runs one level. It reports true when the player escaped and false
// when they quit.
func (s *Session) playLevel() (bool, error) {
	level, err := s.newLevel()
	if err != nil {
		return false, fmt.Errorf("starting level: %w", err)
	}
	s.levels++

	obs := level.View()
	message := WelcomeText
	for {
		if err := s.draw(Render(obs, message)); err != nil {
			return false, err
		}

		r, err := s.readKey()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		cmd, action := ParseKey(r)
		switch action {
		case ActionQuit:
			s.logger.Info("player quit")
			return false, nil
		case ActionUnknown:
			message = UnknownText
			continue
		}

		obs, err = level.Step(cmd)
		if err != nil {
			return false, fmt.Errorf("applying %s: %w", cmd, err)
		}

		if obs.Won {
			return true, s.draw(EscapeText + "\n")
		}
		message = OutcomeMessage(cmd, obs.LastMessage, obs.PlayerDir)
	}
}

// readKey returns the next non-whitespace key.
func (s *Session) readKey() (rune, error) {
	for {
		r, err := s.keys.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// draw clears the screen and writes frame.
func (s *Session) draw(frame string) error {
	_, err := io.WriteString(s.out, clearScreenEscape+frame)
	return err
}
