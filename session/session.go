// Package session implements the interactive prompt of roadtrip: it asks
// for two country identifiers, prints the border route between them and
// repeats until the user types EXIT or the input ends.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/roadtrip/route"
)

// Quit is the sentinel that ends a session, compared after upper-casing.
const Quit = "EXIT"

// Messages written by Run.
const (
	PromptFirst  = "Enter the name of the first country (type EXIT to quit): "
	PromptSecond = "Enter the name of the second country (type EXIT to quit): "
	InvalidInput = "Invalid country name. Please enter a valid country name."
)

// DefaultCacheSize is the number of routes memoized when WithCacheSize is
// not given.
const DefaultCacheSize = 256

// errQuit ends Run without an error.
var errQuit = errors.New("session: quit")

type pair struct{ from, to string }

// Session is one interactive conversation over a reader and a writer.
// A Session is not safe for concurrent use; the Engine it wraps is.
type Session struct {
	engine *route.Engine
	in     *bufio.Scanner
	out    io.Writer
	cache  *lru.Cache[pair, *route.Itinerary]
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*settings)

type settings struct {
	cacheSize int
	logger    *slog.Logger
}

// WithCacheSize sets how many routes are memoized.
func WithCacheSize(n int) Option {
	return func(s *settings) { s.cacheSize = n }
}

// WithLogger sets the logger used for query diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Session answering from e, reading answers from in and
// writing prompts and routes to out.
func New(e *route.Engine, in io.Reader, out io.Writer, opts ...Option) (*Session, error) {
	st := settings{cacheSize: DefaultCacheSize, logger: slog.Default()}
	for _, opt := range opts {
		opt(&st)
	}
	cache, err := lru.New[pair, *route.Itinerary](st.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("session: cache: %w", err)
	}

	return &Session{
		engine: e,
		in:     bufio.NewScanner(in),
		out:    out,
		cache:  cache,
		logger: st.logger,
	}, nil
}

// Run prompts for country pairs until EXIT, end of input or ctx is done.
// Unknown identifiers re-prompt; an unreachable destination is reported
// and the loop continues. Only read and write failures and ctx errors are
// returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		from, err := s.ask(ctx, PromptFirst)
		if err != nil {
			return ignoreQuit(err)
		}
		to, err := s.ask(ctx, PromptSecond)
		if err != nil {
			return ignoreQuit(err)
		}
		it, err := s.Route(from, to)
		if err != nil {
			return err
		}
		if err := WriteItinerary(s.out, it); err != nil {
			return err
		}
	}
}

// Route returns the itinerary from one identifier to another, memoized.
func (s *Session) Route(from, to string) (*route.Itinerary, error) {
	key := pair{from, to}
	if it, ok := s.cache.Get(key); ok {
		s.logger.Debug("route cache hit", slog.String("from", from), slog.String("to", to))
		return it, nil
	}
	it, err := s.engine.Itinerary(from, to)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, it)

	return it, nil
}

// Cached returns the number of memoized routes.
func (s *Session) Cached() int { return s.cache.Len() }

// ask prompts until a known identifier is entered.
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := io.WriteString(s.out, prompt); err != nil {
			return "", fmt.Errorf("session: write: %w", err)
		}
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return "", fmt.Errorf("session: read: %w", err)
			}
			return "", errQuit
		}

		id := strings.ToUpper(strings.TrimSpace(s.in.Text()))
		if id == Quit {
			return "", errQuit
		}
		if s.engine.Known(id) {
			return id, nil
		}
		s.logger.Debug("rejected country identifier", slog.String("input", id))
		if _, err := fmt.Fprintln(s.out, InvalidInput); err != nil {
			return "", fmt.Errorf("session: write: %w", err)
		}
	}
}

// WriteItinerary prints it in the session format: a "Route from A to B:"
// header followed by one "* X --> Y (N km.)" line per hop, or a single
// "No path exists" line. N is the capital distance of the hop; hops without
// one show their border length instead.
func WriteItinerary(w io.Writer, it *route.Itinerary) error {
	var b strings.Builder
	if !it.Found() {
		fmt.Fprintf(&b, "No path exists from %s to %s.\n", it.From, it.To)
	} else {
		fmt.Fprintf(&b, "Route from %s to %s:\n", it.From, it.To)
		for _, h := range it.Hops {
			if h.CapitalKm >= 0 {
				fmt.Fprintf(&b, "* %s --> %s (%d km.)\n", h.From, h.To, h.CapitalKm)
			} else {
				fmt.Fprintf(&b, "* %s --> %s (border %d km.)\n", h.From, h.To, h.BorderKm)
			}
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}

	return nil
}

func ignoreQuit(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
