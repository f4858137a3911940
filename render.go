package lineedit

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// cursorMoveLimit is the largest single cursor-move count this
// renderer will ever issue in one ANSI escape; it mirrors the
// platform move-parameter width (u16) the original writer chunks
// against, rather than any real terminal's actual limit.
const cursorMoveLimit = 65535

// renderer is the incremental terminal writer described in §4.6. It
// tracks exactly enough state (promptLength, printedLength,
// cursorOffset, all in terminal display columns via go-runewidth) to
// issue the minimal clear/reprint/rewind sequence on every edit,
// instead of repainting the whole line.
type renderer struct {
	term           Terminal
	eraseAfterRead bool

	promptLength   int
	printedLength  int
	cursorOffset   int
	suggestionRows int
}

func newRenderer(term Terminal, eraseAfterRead bool) *renderer {
	return &renderer{term: term, eraseAfterRead: eraseAfterRead}
}

func (r *renderer) begin(prompt string) error {
	if err := r.term.EnableRawMode(); err != nil {
		return wrapTerminalErr("enable raw mode", err)
	}
	if prompt == "" {
		return nil
	}
	r.promptLength += runewidth.StringWidth(prompt)
	return r.writeString(prompt)
}

// print redraws the buffer and, if present, an inline completion tail
// rendered dim. The cursor ends back at buf's logical cursor.
func (r *renderer) print(buf *Buffer, completion string, hasCompletion bool) error {
	if err := r.clearPrintedSuggestions(); err != nil {
		return err
	}
	if err := r.clearFrom(r.printedLength - r.cursorOffset); err != nil {
		return err
	}

	text := buf.String()
	r.printedLength = runewidth.StringWidth(text)
	r.cursorOffset = r.printedLength - runewidth.StringWidth(text[:buf.Cursor()])

	if err := r.writeString(text); err != nil {
		return err
	}

	if hasCompletion && completion != "" {
		styled := termenv.String(completion).Faint().String()
		if err := r.writeString(styled); err != nil {
			return err
		}
		if err := r.rewindCursor(runewidth.StringWidth(completion)); err != nil {
			return err
		}
	}

	return r.rewindCursor(r.cursorOffset)
}

// printSuggestions draws the candidate list below the edited line.
// When selected names an option, that option is shown on the main
// line (bolded below) with the cursor at its end; when selected is
// noSelection (the cycle has walked past either end), the unmodified
// buf is shown instead and nothing below it is bolded.
func (r *renderer) printSuggestions(selected int, options []string, buf *Buffer) error {
	if err := r.clearPrintedSuggestions(); err != nil {
		return err
	}
	if err := r.clearFrom(r.printedLength - r.cursorOffset); err != nil {
		return err
	}

	var mainText string
	if selected == noSelection {
		mainText = buf.String()
	} else {
		mainText = options[selected]
	}
	if err := r.writeString(mainText); err != nil {
		return err
	}
	r.printedLength = runewidth.StringWidth(mainText)
	if selected == noSelection {
		r.cursorOffset = r.printedLength - runewidth.StringWidth(mainText[:buf.Cursor()])
	} else {
		r.cursorOffset = 0
	}

	for i, option := range options {
		text := option
		if i == selected {
			text = termenv.String(option).Bold().String()
		}
		if err := r.writeString("\n" + text); err != nil {
			return err
		}
	}
	r.suggestionRows = len(options)

	for i := len(options) - 1; i >= 0; i-- {
		if err := r.rewindCursor(runewidth.StringWidth(options[i])); err != nil {
			return err
		}
		if err := r.moveCursorUp(1); err != nil {
			return err
		}
	}
	return r.rewindCursor(r.cursorOffset)
}

// clearPrintedSuggestions removes a previously drawn suggestion block,
// if any, before the next print/printSuggestions call begins.
func (r *renderer) clearPrintedSuggestions() error {
	if r.suggestionRows == 0 {
		return nil
	}
	rows := r.suggestionRows
	r.suggestionRows = 0
	for i := 0; i < rows; i++ {
		if err := r.writeString(fmt.Sprintf("\x1b[1B\r\x1b[2K")); err != nil {
			return err
		}
	}
	return r.writeString(fmt.Sprintf("\x1b[%dA", rows) + "\r")
}

// close tears the renderer down: if eraseAfterRead, wipe the prompt
// and printed text entirely; otherwise move to the end of line, clear
// downward and emit a trailing newline so the cursor lands clean for
// whatever prints next.
func (r *renderer) close() error {
	defer func() { _ = r.term.DisableRawMode() }()

	if r.eraseAfterRead {
		return r.clearFrom(r.promptLength + r.printedLength)
	}

	if err := r.fastForwardCursor(r.cursorOffset); err != nil {
		return err
	}
	if err := r.writeString("\x1b[J"); err != nil {
		return err
	}
	return r.writeString("\n")
}

func (r *renderer) clearFrom(amount int) error {
	if err := r.rewindCursor(amount); err != nil {
		return err
	}
	return r.writeString("\x1b[J")
}

func (r *renderer) rewindCursor(amount int) error {
	return r.chunkedMove(amount, 'D')
}

func (r *renderer) fastForwardCursor(amount int) error {
	return r.chunkedMove(amount, 'C')
}

func (r *renderer) moveCursorUp(amount int) error {
	return r.chunkedMove(amount, 'A')
}

// chunkedMove issues a cursor-move escape for amount cells, splitting
// it into cursorMoveLimit-sized chunks so no single escape parameter
// exceeds the platform's single-move width.
func (r *renderer) chunkedMove(amount int, code byte) error {
	if amount == 0 {
		return nil
	}
	remaining := amount
	for remaining > cursorMoveLimit {
		if err := r.writeString(fmt.Sprintf("\x1b[%d%c", cursorMoveLimit, code)); err != nil {
			return err
		}
		remaining -= cursorMoveLimit
	}
	return r.writeString(fmt.Sprintf("\x1b[%d%c", remaining, code))
}

func (r *renderer) writeString(s string) error {
	if s == "" {
		return nil
	}
	_, err := r.term.Write([]byte(s))
	if err != nil {
		return wrapTerminalErr("write", err)
	}
	return nil
}
