// Package wordlist provides the enumeration glue shared by all
// generators: the counting output writer, digit and year suffix
// expansion, separator tables and case/leet variant expansion.
//
// Nothing here is Arabic-specific; the linguistic logic lives in the
// arabic and pattern packages. These helpers only shape and emit the
// combinatorial product around it.
package wordlist

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Options configures a Writer. The zero value writes every candidate
// exactly as emitted.
type Options struct {
	// MinLen/MaxLen bound candidate length in runes; 0 means unbounded.
	MinLen int
	MaxLen int
	// Dedup drops candidates already written by this Writer. The seen
	// set lives for one generator invocation, as large as the output.
	Dedup bool
	// ArabicDigits additionally emits an Eastern-Arabic-numeral
	// rendering of any candidate containing ASCII digits.
	ArabicDigits bool
}

// Writer funnels generated candidates to an output stream, one per
// line, applying length bounds and optional deduplication. It keeps a
// running count for the end-of-run summary.
type Writer struct {
	out  *bufio.Writer
	opts Options
	seen map[string]bool
	n    int
}

// NewWriter wraps w. Call Flush before the process exits.
func NewWriter(w io.Writer, opts Options) *Writer {
	wr := &Writer{
		out:  bufio.NewWriter(w),
		opts: opts,
	}
	if opts.Dedup {
		wr.seen = make(map[string]bool)
	}
	return wr
}

// Emit writes candidate if it passes the length bounds and has not been
// written before.
func (w *Writer) Emit(candidate string) {
	w.emit(candidate)

	if w.opts.ArabicDigits {
		if eastern := EasternArabic(candidate); eastern != candidate {
			w.emit(eastern)
		}
	}
}

func (w *Writer) emit(candidate string) {
	if w.opts.MinLen > 0 || w.opts.MaxLen > 0 {
		n := utf8.RuneCountInString(candidate)
		if w.opts.MinLen > 0 && n < w.opts.MinLen {
			return
		}
		if w.opts.MaxLen > 0 && n > w.opts.MaxLen {
			return
		}
	}

	if w.seen != nil {
		if w.seen[candidate] {
			return
		}
		w.seen[candidate] = true
	}

	w.out.WriteString(candidate)
	w.out.WriteByte('\n')
	w.n++
}

// Count returns the number of candidates written so far.
func (w *Writer) Count() int { return w.n }

// Flush drains the output buffer.
func (w *Writer) Flush() error { return w.out.Flush() }
