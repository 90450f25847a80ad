/*
Package golden runs transliterations against fixed expected outputs.

Golden files hold one case per line, the ITRANS input and the expected
Devanagari output separated by a TAB:

	% greetings
	namaste	नमस्ते
	kan kan	कन कं

Blank lines and lines starting with '%' are skipped. Expected outputs are
compared in Unicode normalization form C.
*/
package golden

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'itrans.golden'
func tracer() tracing.Trace {
	return tracing.Select("itrans.golden")
}

// ErrMalformedLine is returned for a non-comment line without a TAB separator.
var ErrMalformedLine = errors.New("malformed golden line")

// Case is one expected transliteration.
type Case struct {
	Line  int // 1-based line in the source, 0 if not read from a file
	Input string
	Want  string
}

// CaseReader yields golden cases one-by-one.
// It should return io.EOF when the stream is exhausted.
type CaseReader interface {
	Next() (Case, error)
}

// Translator is the engine under test.
type Translator interface {
	Translate(text string) string
}

// Reader streams golden cases from a text source.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next case.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (Case, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		input, want, found := strings.Cut(line, "\t")
		if !found {
			return Case{}, fmt.Errorf("line %d: %w", r.line, ErrMalformedLine)
		}
		return Case{
			Line:  r.line,
			Input: input,
			Want:  norm.NFC.String(want),
		}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Case{}, err
	}
	return Case{}, io.EOF
}

// SliceReader serves cases from memory.
type SliceReader struct {
	cases []Case
	index int
}

func NewSliceReader(cases []Case) *SliceReader {
	return &SliceReader{cases: cases}
}

func (r *SliceReader) Next() (Case, error) {
	if r.index >= len(r.cases) {
		return Case{}, io.EOF
	}
	c := r.cases[r.index]
	r.index++
	return c, nil
}

// Load reads all cases from reader.
func Load(reader CaseReader) ([]Case, error) {
	var cases []Case
	for {
		c, err := reader.Next()
		if err == io.EOF {
			return cases, nil
		}
		if err != nil {
			return cases, err
		}
		cases = append(cases, c)
	}
}

// Result is the outcome of one case.
type Result struct {
	Case
	Got string
}

// OK reports whether the output matched.
func (r Result) OK() bool {
	return r.Got == r.Want
}

// Report collects the results of a run in input order.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// Mismatches returns the failed results.
func (rep Report) Mismatches() []Result {
	var failed []Result
	for _, r := range rep.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Run translates every case and compares against the expected output.
// A read error stops the run; the results so far are returned with it.
func Run(t Translator, cases CaseReader) (Report, error) {
	var rep Report
	for {
		c, err := cases.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rep, err
		}
		r := Result{Case: c, Got: t.Translate(c.Input)}
		if r.OK() {
			rep.Passed++
		} else {
			rep.Failed++
			tracer().Debugf("mismatch at line %d: %q => %q, want %q", c.Line, c.Input, r.Got, c.Want)
		}
		rep.Results = append(rep.Results, r)
	}
	tracer().Infof("golden run: passed=%d failed=%d", rep.Passed, rep.Failed)
	return rep, nil
}
