// Package aoc are quick & dirty utilities for solving the 2023 Advent of
// Code puzzles. Solutions are methods named D{day}p{part} on a struct that
// embeds *Puzzle; their doc comments carry the sample input and answer.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

// ErrSampleMismatch is returned by Run when a solver's answer for the
// sample input differs from the want= value in its doc comment.
var ErrSampleMismatch = errors.New("sample mismatch")

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples collects the samples attached to the func declarations of
// one Go source file. A sample without input reuses the previous one.
func extractSamples(filename string, src []byte, into map[string]sample) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parsing %s to extract samples: %w", filename, err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				into[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return nil
}

func extractSamplesFS(fsys fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	samples := make(map[string]sample)
	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		if err := extractSamples(name, src, samples); err != nil {
			return nil, err
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	inputDir string
	input    []byte
	log      *zap.SugaredLogger

	solver  partSolver
	samples map[string]sample
}

// InputPath is the file the real input of the current day is read from.
func (p *Puzzle) InputPath() string {
	return filepath.Join(p.inputDir, strconv.Itoa(p.year), fmt.Sprintf("%d.input", p.day.day))
}

func (p *Puzzle) loadInput() error {
	if p.input != nil {
		return nil
	}
	b, err := os.ReadFile(p.InputPath())
	if err != nil {
		return fmt.Errorf("reading input for day %d: %w", p.day.day, err)
	}
	p.input = b
	return nil
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	MustDo(p.loadInput())
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns every line of input, without line terminators.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// Debugf logs at debug level, only while solving the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods named D{day}p{part} of the struct
// pointed to by x, grouped by day and sorted by part.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("method %s: want func() any", mn)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// Options control which puzzles Run solves and where it reads and writes.
type Options struct {
	// Day restricts the run to one day; zero or negative runs every day.
	Day int
	// Part restricts the run to one part.
	Part string

	OnlySample bool
	SkipSample bool

	InputDir string
	Out      io.Writer
	Logger   *zap.Logger
}

func runDay(slvr any, year int, d day, samples map[string]sample, opts Options) error {
	p := Puzzle{
		year:     year,
		day:      d,
		samples:  samples,
		inputDir: opts.InputDir,
		log:      opts.Logger.Sugar().With("day", d.day),
	}
	out := opts.Out
	fmt.Fprintln(out, "Running day", d.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range d.parts {
		p.solver = ps
		if opts.Part != "" && ps.Part != opts.Part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && opts.OnlySample {
				continue
			} else if sm && opts.SkipSample {
				continue
			}
			p.SampleMode = sm
			if sm {
				if _, ok := samples[ps.Name]; !ok {
					return fmt.Errorf("no sample found for %v", ps.Name)
				}
			} else if err := p.loadInput(); err != nil {
				return err
			}
			t0 := time.Now()
			got := ps.fn()
			p.log.Debugw("solved", "part", ps.Part, "sample", sm, "took", time.Since(t0))
			if sm {
				want := p.Sample().want
				if fmt.Sprint(got) != want {
					fmt.Fprintf(out, "part %s: %v ❌; want %v\n", ps.Part, got, want)
					return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, ErrSampleMismatch)
				}
				fmt.Fprintf(out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(out, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

// Run solves the puzzles of slvr. The samples are read from the doc
// comments of the Go files at the root of src.
func Run(year int, src fs.FS, slvr any, opts Options) error {
	samples, err := extractSamplesFS(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if opts.Day > 0 {
		d, ok := days[opts.Day]
		if !ok {
			return fmt.Errorf("no day %d", opts.Day)
		}
		return runDay(slvr, year, d, samples, opts)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, n := range dayNums {
		if err := runDay(slvr, year, days[n], samples, opts); err != nil {
			return err
		}
		fmt.Fprintln(opts.Out)
	}
	return nil
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
