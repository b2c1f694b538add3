// Package fs provides file system adapters for event sourcing.
package fs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hpcloud/tail"
	"github.com/valyala/fastjson"

	"github.com/bft-labs/logship/pkg/event"
	"github.com/bft-labs/logship/pkg/log"
)

// TailConfig controls how a TailSource follows its file.
type TailConfig struct {
	// Path is the file to follow.
	Path string

	// Follow keeps reading as the file grows and survives rotation.
	// When false the source is drained at the end of the file.
	Follow bool

	// FromStart reads the file from the beginning instead of seeking to
	// the end first.
	FromStart bool
}

// TailSource follows a log file and yields each line as an event.
// Lines holding a JSON object become structured events with field order
// preserved; any other line is wrapped as {"message": <line>}.
// Not safe for concurrent use.
type TailSource struct {
	tail   *tail.Tail
	parser fastjson.Parser
	logger log.Logger
}

// NewTailSource opens the file and begins following it.
func NewTailSource(cfg TailConfig, logger log.Logger) (*TailSource, error) {
	var loc *tail.SeekInfo
	if !cfg.FromStart {
		loc = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(cfg.Path, tail.Config{
		Follow:   cfg.Follow,
		ReOpen:   cfg.Follow,
		Poll:     true,
		Location: loc,
		Logger:   tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("tail %s: %w", cfg.Path, err)
	}

	return &TailSource{
		tail:   t,
		logger: logger,
	}, nil
}

// Next returns the event parsed from the next line.
// Empty lines are skipped. Returns io.EOF once the file is drained and the
// source is not following.
func (s *TailSource) Next(ctx context.Context) (*event.Event, error) {
	for {
		select {
		case line, ok := <-s.tail.Lines:
			if !ok {
				return nil, io.EOF
			}
			if line.Err != nil {
				return nil, fmt.Errorf("read %s: %w", s.tail.Filename, line.Err)
			}
			if strings.TrimSpace(line.Text) == "" {
				continue
			}
			return s.parseLine(line.Text), nil

		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Close stops following the file and releases watches.
func (s *TailSource) Close() error {
	err := s.tail.Stop()
	s.tail.Cleanup()
	return err
}

// parseLine converts one line of input into an event.
func (s *TailSource) parseLine(text string) *event.Event {
	v, err := s.parser.Parse(text)
	if err != nil || v.Type() != fastjson.TypeObject {
		return event.New().Set("message", event.String(text))
	}

	obj, err := v.Object()
	if err != nil {
		return event.New().Set("message", event.String(text))
	}

	e := event.New()
	var convErr error
	obj.Visit(func(key []byte, val *fastjson.Value) {
		if convErr != nil {
			return
		}
		ev, err := convertValue(val)
		if err != nil {
			convErr = err
			return
		}
		e.Set(string(key), ev)
	})
	if convErr != nil {
		s.logger.Warn("line parsed as JSON but not representable, kept raw",
			log.Err(convErr),
		)
		return event.New().Set("message", event.String(text))
	}
	return e
}

// convertValue maps a parsed JSON value onto an event value, keeping
// number literals exactly as written in the source line.
func convertValue(v *fastjson.Value) (event.Value, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return event.Null(), nil
	case fastjson.TypeTrue:
		return event.Bool(true), nil
	case fastjson.TypeFalse:
		return event.Bool(false), nil
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return event.Value{}, err
		}
		return event.String(string(b)), nil
	case fastjson.TypeNumber:
		return event.Number(v.String()), nil
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return event.Value{}, err
		}
		var members []event.Member
		var convErr error
		obj.Visit(func(key []byte, val *fastjson.Value) {
			if convErr != nil {
				return
			}
			mv, err := convertValue(val)
			if err != nil {
				convErr = err
				return
			}
			members = append(members, event.Member{Name: string(key), Value: mv})
		})
		if convErr != nil {
			return event.Value{}, convErr
		}
		return event.Object(members...), nil
	case fastjson.TypeArray:
		arr, err := v.Array()
		if err != nil {
			return event.Value{}, err
		}
		items := make([]event.Value, 0, len(arr))
		for _, it := range arr {
			iv, err := convertValue(it)
			if err != nil {
				return event.Value{}, err
			}
			items = append(items, iv)
		}
		return event.Array(items...), nil
	default:
		return event.Value{}, fmt.Errorf("%w: unexpected JSON type %s", event.ErrUnsupportedValue, v.Type())
	}
}
