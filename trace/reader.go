package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/tidwall/gjson"

	"github.com/dshills/winmsg/wm"
)

// ErrBadRecord reports a trace line that is not a well-formed record.
var ErrBadRecord = errors.New("malformed trace record")

// RecordError describes which line and field of a trace failed to
// parse.
type RecordError struct {
	Line   int
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("trace line %d: field %q: %s", e.Line, e.Field, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrBadRecord }

// Reader decodes JSON-line trace records into parsed events.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a Reader consuming records from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next event in the trace. It returns io.EOF when
// the trace is exhausted. Blank lines are skipped.
func (r *Reader) Next() (wm.Event, error) {
	for r.sc.Scan() {
		r.line++
		line := r.sc.Text()
		if len(line) == 0 {
			continue
		}
		return r.parse(line)
	}
	if err := r.sc.Err(); err != nil {
		return wm.Event{}, err
	}
	return wm.Event{}, io.EOF
}

func (r *Reader) parse(line string) (wm.Event, error) {
	if !gjson.Valid(line) {
		return wm.Event{}, &RecordError{Line: r.line, Field: "", Reason: "not valid JSON"}
	}

	msg, err := r.number(line, "msg")
	if err != nil {
		return wm.Event{}, err
	}
	if msg.Int() < 0 || msg.Uint() > math.MaxUint32 {
		return wm.Event{}, &RecordError{Line: r.line, Field: "msg", Reason: "outside 32-bit range"}
	}
	wparam, err := r.number(line, "wparam")
	if err != nil {
		return wm.Event{}, err
	}
	if len(wparam.Raw) > 0 && wparam.Raw[0] == '-' {
		return wm.Event{}, &RecordError{Line: r.line, Field: "wparam", Reason: "negative"}
	}
	lparam, err := r.number(line, "lparam")
	if err != nil {
		return wm.Event{}, err
	}

	ev, err := wm.Parse(uint32(msg.Uint()), wm.WParam(wparam.Uint()), wm.LParam(lparam.Int()))
	if err != nil {
		return wm.Event{}, fmt.Errorf("trace line %d: %w", r.line, err)
	}
	return ev, nil
}

func (r *Reader) number(line, field string) (gjson.Result, error) {
	v := gjson.Get(line, field)
	if !v.Exists() {
		return v, &RecordError{Line: r.line, Field: field, Reason: "missing"}
	}
	if v.Type != gjson.Number {
		return v, &RecordError{Line: r.line, Field: field, Reason: "not a number"}
	}
	return v, nil
}
