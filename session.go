package lineedit

import (
	"context"

	"go.uber.org/zap"
)

// Session drives one read-line interaction: decode an Event, resolve
// it to an Action, mutate the Buffer, and redraw. The loop has
// exactly one blocking suspension point per iteration — the call to
// EventSource.ReadEvent — matching the single-threaded cooperative
// model described in §5.
type Session struct {
	term      Terminal
	events    EventSource
	logger    *zap.Logger
	prompt    string
	overrider Overrider
	completer Completer
	suggester Suggester

	buf        *Buffer
	renderer   *renderer
	overlay    suggestionOverlay
	completion string
	hasComp    bool
}

func newSession(term Terminal, events EventSource, opts builderOptions) *Session {
	logger := opts.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	buf := opts.buffer
	if buf == nil {
		buf = NewBuffer()
	}

	return &Session{
		term:      term,
		events:    events,
		logger:    logger,
		prompt:    opts.prompt,
		overrider: opts.overrider,
		completer: opts.completer,
		suggester: opts.suggester,
		buf:       buf,
		renderer:  newRenderer(term, opts.eraseAfterRead),
	}
}

// ReadLine runs the session to completion, returning the accepted
// line, or the in-progress buffer contents alongside ErrCancelled if
// the user cancelled at the top level. ctx is honored between
// iterations for caller-side bookkeeping (logging, deadline
// awareness); the blocking read itself is not cancellable mid-flight,
// by design (§5).
func (s *Session) ReadLine(ctx context.Context) (string, error) {
	if err := s.renderer.begin(s.prompt); err != nil {
		return "", err
	}
	defer func() {
		if err := s.renderer.close(); err != nil {
			s.logger.Debug("lineedit: renderer close failed", zap.Error(err))
		}
	}()

	s.updateCompletion()
	if err := s.redraw(); err != nil {
		return "", err
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		event, err := s.events.ReadEvent()
		if err != nil {
			return "", wrapTerminalErr("read event", err)
		}

		result, done, err := s.handle(event)
		if err != nil {
			return result, err
		}
		if done {
			return result, nil
		}
	}
}

// handle processes one Event: resolves it to an Action, materializes
// any pending suggestion if the action isn't Suggest/Cancel, applies
// the action, and redraws. done is true once the line has been
// accepted or cancelled at the top level.
func (s *Session) handle(event Event) (result string, done bool, err error) {
	action := actionFor(s.overrider, event, s.buf)

	if s.overlay.active() && action.Kind != ActionSuggest && action.Kind != ActionCancel {
		s.overlay.materialize(s.buf)
		s.updateCompletion()
	}

	switch action.Kind {
	case ActionNoOp:
		return "", false, nil

	case ActionWrite:
		s.buf.Write(action.Rune)
		s.updateCompletion()
		return "", false, s.redraw()

	case ActionDelete:
		s.buf.Delete(action.Scope)
		s.updateCompletion()
		return "", false, s.redraw()

	case ActionMove:
		if s.buf.AtEnd() && action.Direction == DirectionForward {
			return s.acceptCompletion(action.Range)
		}
		s.buf.Move(action.Range, action.Direction)
		return "", false, s.redraw()

	case ActionComplete:
		return s.acceptCompletion(action.Range)

	case ActionSuggest:
		s.applySuggest(action.Direction)
		return "", false, s.redrawSuggestions()

	case ActionAccept:
		return s.buf.String(), true, nil

	case ActionCancel:
		if s.overlay.active() {
			s.overlay.dismiss()
			return "", false, s.redraw()
		}
		return s.buf.String(), true, ErrCancelled

	default:
		return "", false, nil
	}
}

func (s *Session) acceptCompletion(r Range) (string, bool, error) {
	if !s.hasComp {
		return "", false, s.redraw()
	}
	s.buf.GoToEnd()
	s.buf.WriteRange(r, s.completion)
	s.updateCompletion()
	return "", false, s.redraw()
}

func (s *Session) applySuggest(dir Direction) {
	if s.suggester == nil {
		return
	}
	if s.overlay.active() {
		s.overlay.cycle(dir)
		return
	}
	s.overlay.open(s.suggester, s.buf, dir)
}

func (s *Session) updateCompletion() {
	if s.completer == nil {
		s.hasComp = false
		s.completion = ""
		return
	}
	s.completion, s.hasComp = s.completer.CompleteFor(s.buf)
}

func (s *Session) redraw() error {
	return s.renderer.print(s.buf, s.completion, s.hasComp)
}

func (s *Session) redrawSuggestions() error {
	if !s.overlay.active() {
		return s.redraw()
	}
	return s.renderer.printSuggestions(s.overlay.index, s.overlay.options, s.buf)
}
