package replay

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/cellviz/nicodash/internal/core/dashboard"
	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
)

// Event is a single control change read from the replay input.
type Event struct {
	Line    int
	Control string
	Value   int
}

type line struct {
	State    model.SelectionState `json:"state"`
	Snapshot model.MetricSnapshot `json:"snapshot"`
}

// ParseEvent parses "control=value". Surrounding whitespace is ignored.
func ParseEvent(s string) (Event, error) {
	control, value, ok := strings.Cut(s, "=")
	if !ok {
		return Event{}, apperr.ErrInvalidReq.Msg("malformed event %q: expecting control=value", s)
	}

	control = strings.TrimSpace(control)
	if control == "" {
		return Event{}, apperr.ErrInvalidReq.Msg("malformed event %q: missing control", s)
	}

	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return Event{}, apperr.ErrInvalidReq.Msg("malformed event %q: value is not an integer", s)
	}

	return Event{Control: control, Value: v}, nil
}

// run drives a dashboard shell with the events read from in and writes one JSON line per
// published frame to out, the initial frame included. Blank lines and lines starting
// with # are skipped. Events the shell rejects are logged and skipped; malformed lines
// abort the replay.
func run(ctx context.Context, renderer dashboard.FrameRenderer, in io.Reader, out io.Writer) (published int, err error) {
	enc := json.NewEncoder(out)
	var encErr error
	publish := func(frame *dashboard.Frame) {
		if encErr != nil {
			return
		}
		if encErr = enc.Encode(line{State: frame.State, Snapshot: frame.Snapshot}); encErr == nil {
			published++
		}
	}

	shell, err := dashboard.NewShell(ctx, renderer, publish)
	if err != nil {
		return published, err
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		ev, err := ParseEvent(text)
		if err != nil {
			return published, errors.Wrapf(err, "line %d", lineNo)
		}
		ev.Line = lineNo

		changed, err := shell.Set(ctx, ev.Control, ev.Value)
		if err != nil {
			log.Warn().
				Err(err).
				Int("line", ev.Line).
				Str("control", ev.Control).
				Int("value", ev.Value).
				Msg("event rejected")
			continue
		}
		if !changed {
			log.Debug().Int("line", ev.Line).Str("control", ev.Control).Msg("value unchanged; nothing published")
		}
		if encErr != nil {
			return published, errors.Wrap(encErr, "failed to write snapshot")
		}
	}
	if err := scanner.Err(); err != nil {
		return published, errors.Wrap(err, "failed to read events")
	}

	if encErr != nil {
		return published, errors.Wrap(encErr, "failed to write snapshot")
	}
	return published, nil
}
