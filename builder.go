package lineedit

import (
	"context"

	"go.uber.org/zap"
)

// builderOptions is the plain-data form Builder accumulates into;
// last assignment for a given concern wins, matching the fluent
// "WithX returns the receiver" pattern this is grounded on.
type builderOptions struct {
	prompt         string
	buffer         *Buffer
	eraseAfterRead bool
	overrider      Overrider
	completer      Completer
	suggester      Suggester
	logger         *zap.Logger
}

// Builder is the fluent configuration façade for a Session (§4.7).
// Every method returns the receiver so calls chain; the last call for
// a given concern wins.
type Builder struct {
	opts builderOptions
}

// NewBuilder returns an unconfigured Builder: no prompt, a fresh empty
// Buffer, erase-after-read off, and no overrider/completer/suggester.
func NewBuilder() *Builder {
	return &Builder{}
}

// Prompt sets the text printed before the editable line.
func (b *Builder) Prompt(prompt string) *Builder {
	b.opts.prompt = prompt
	return b
}

// Buffer seeds the session with buf instead of a fresh empty Buffer.
func (b *Builder) Buffer(buf *Buffer) *Builder {
	b.opts.buffer = buf
	return b
}

// EraseAfterRead controls whether the renderer wipes the prompt and
// line on teardown instead of leaving it on screen with a trailing
// newline.
func (b *Builder) EraseAfterRead(erase bool) *Builder {
	b.opts.eraseAfterRead = erase
	return b
}

// Overrider installs a key-event override source, consulted before the
// default key table on every event.
func (b *Builder) Overrider(o Overrider) *Builder {
	b.opts.overrider = o
	return b
}

// Completer installs the inline tail-completion source.
func (b *Builder) Completer(c Completer) *Builder {
	b.opts.completer = c
	return b
}

// Suggester installs the drop-down suggestion source.
func (b *Builder) Suggester(s Suggester) *Builder {
	b.opts.suggester = s
	return b
}

// Logger installs a structured logger; a nil logger (the default)
// means diagnostics are discarded.
func (b *Builder) Logger(logger *zap.Logger) *Builder {
	b.opts.logger = logger
	return b
}

// ReadLine runs the configured session against term and events to
// completion, returning the accepted line, or the in-progress buffer
// text alongside ErrCancelled if the read was cancelled.
func (b *Builder) ReadLine(ctx context.Context, term Terminal, events EventSource) (string, error) {
	session := newSession(term, events, b.opts)
	return session.ReadLine(ctx)
}
