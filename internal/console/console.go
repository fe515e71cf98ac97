package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/serroba/linkledger/internal/shortener"
	"go.uber.org/zap"
)

// Service is the part of shortener.Service the console drives.
type Service interface {
	shortener.CommandHandler
	shortener.QueryHandler
	Events(ctx context.Context) ([]shortener.Event, error)
}

const usage = `commands:
  create <url> [slug]   shorten url, optionally under slug
  redirect <slug>       follow slug and count the redirect
  change <slug> <url>   point slug at url
  stats <slug>          show url and redirect count
  events                list recorded events
  help                  show this message`

// Console executes one command per input line and writes one result per command.
type Console struct {
	svc    Service
	logger *zap.Logger
}

// New creates a console over svc.
func New(svc Service, logger *zap.Logger) *Console {
	return &Console{svc: svc, logger: logger}
}

// Run reads commands from r until EOF or ctx is done.
// Domain errors are reported on w and do not stop the loop.
// A cancelled ctx returns immediately even while waiting for input.
func (c *Console) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	lines, readErr := readLines(ctx, r)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var raw string

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return ctx.Err()
				}
			}

			raw = line
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.Exec(ctx, line, w); err != nil {
			if !isDomainError(err) {
				return err
			}

			if _, werr := fmt.Fprintf(w, "error: %v\n", err); werr != nil {
				return werr
			}
		}
	}
}

// readLines scans r in the background. The scan error, nil on EOF, is sent
// on the error channel before lines is closed. A reader blocked in Read
// outlives ctx until r returns.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		errc <- scanner.Err()
	}()

	return lines, errc
}

// ErrUsage is returned for malformed or unknown commands.
var ErrUsage = errors.New("usage")

// Exec runs a single command line.
func (c *Console) Exec(ctx context.Context, line string, w io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := fields[0], fields[1:]

	c.logger.Debug("console command", zap.String("command", cmd), zap.Strings("args", args))

	switch {
	case cmd == "create" && (len(args) == 1 || len(args) == 2):
		var slug shortener.Slug
		if len(args) == 2 {
			slug = shortener.Slug(args[1])
		}

		link, err := c.svc.CreateShortLink(ctx, shortener.URL(args[0]), slug)
		if err != nil {
			return err
		}

		return writeLink(w, "created", link)
	case cmd == "redirect" && len(args) == 1:
		link, err := c.svc.Redirect(ctx, shortener.Slug(args[0]))
		if err != nil {
			return err
		}

		return writeLink(w, "redirect", link)
	case cmd == "change" && len(args) == 2:
		link, err := c.svc.ChangeShortLink(ctx, shortener.Slug(args[0]), shortener.URL(args[1]))
		if err != nil {
			return err
		}

		return writeLink(w, "changed", link)
	case cmd == "stats" && len(args) == 1:
		stats, err := c.svc.GetStats(ctx, shortener.Slug(args[0]))
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "stats %s -> %s redirects=%d\n", stats.Link.Slug, stats.Link.URL, stats.Redirects)

		return err
	case cmd == "events" && len(args) == 0:
		return c.writeEvents(ctx, w)
	case cmd == "help":
		_, err := fmt.Fprintln(w, usage)

		return err
	default:
		return fmt.Errorf("%w: %q, try help", ErrUsage, line)
	}
}

func (c *Console) writeEvents(ctx context.Context, w io.Writer) error {
	events, err := c.svc.Events(ctx)
	if err != nil {
		return err
	}

	for _, e := range events {
		if e.Kind == shortener.EventLinkRedirected {
			_, err = fmt.Fprintf(w, "%d %s %s\n", e.Sequence, e.Kind, e.Slug)
		} else {
			_, err = fmt.Fprintf(w, "%d %s %s -> %s\n", e.Sequence, e.Kind, e.Slug, e.URL)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func writeLink(w io.Writer, verb string, link shortener.ShortLink) error {
	_, err := fmt.Fprintf(w, "%s %s -> %s\n", verb, link.Slug, link.URL)

	return err
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrUsage) ||
		errors.Is(err, shortener.ErrSlugNotFound) ||
		errors.Is(err, shortener.ErrSlugAlreadyInUse) ||
		errors.Is(err, shortener.ErrInvalidURL)
}
