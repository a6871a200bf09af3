// Package aoc are quick & dirty utilities for helping Maisem
// solve Advent of Code problems. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

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
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples parses the want= doc comments of every .go file at the top
// of src. A sample without input reuses the input of the previous sample in
// the same file.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	samples := make(map[string]sample)
	fset := token.NewFileSet()
	for _, name := range names {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing source to extract samples: %w", err)
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
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample

	path  string // explicit input path; empty means <year>/<day>.input
	input []byte // real input, loaded once per day
}

// SamplePuzzle returns a Puzzle in sample mode for the solver method named
// funcName, whose sample is read from the doc comments in src.
func SamplePuzzle(src fs.FS, funcName string) (*Puzzle, error) {
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	if _, ok := samples[funcName]; !ok {
		return nil, fmt.Errorf("no sample found for %v", funcName)
	}
	return &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: funcName},
		samples:    samples,
	}, nil
}

// InputName returns the name used for the input in error messages.
func (p *Puzzle) InputName() string {
	switch {
	case p.SampleMode:
		return p.solver.Name + " sample"
	case p.path != "":
		return p.path
	}
	return fmt.Sprintf("%d/%d.input", p.year, p.day.day)
}

// Input returns the puzzle input. The returned slice is shared between parts
// and must not be modified.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input != nil {
		return p.input
	}
	var b []byte
	var err error
	if p.path != "" {
		b, err = os.ReadFile(p.path)
	} else {
		b, err = fileOrFetch(p.InputName(), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
	}
	if err != nil {
		panic(&InputError{Name: p.InputName(), Err: err})
	}
	p.input = b
	return p.input
}

// Text returns the whole input as a single string.
func (p *Puzzle) Text() string {
	return string(p.Input())
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
	if err := s.Err(); err != nil {
		panic(&InputError{Name: p.InputName(), Err: err})
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

// Pretty prints v with its Go syntax when debugging a sample.
func (p *Puzzle) Pretty(label string, v any) {
	if flagDebug && p.SampleMode {
		fmt.Printf("%s: %# v\n", label, pretty.Formatter(v))
	}
}

// Logf prints an intermediate result. Logs of sample runs are only shown in
// debug mode.
func (p *Puzzle) Logf(format string, args ...any) {
	if !p.SampleMode || flagDebug {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

// Want returns the expected answer of the current sample.
func (p *Puzzle) Want() string {
	return p.Sample().want
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

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
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
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [input-file]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
}

var initFlags = sync.OnceFunc(flag.Parse)

// solve runs ps, turning an *InputError panic into an error.
func solve(ps partSolver) (got any, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InputError)
			if !ok {
				panic(r)
			}
			err = ie
		}
	}()
	return ps.fn(), nil
}

func runDay(slvr any, year int, day day, samples map[string]sample, path string) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
		path:    path,
	}
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			var before deephash.Sum
			if !sm {
				// Prime the input.
				if _, err := solve(partSolver{fn: func() any { return p.Input() }}); err != nil {
					log.Fatalf("part %s: %v", ps.Part, err)
				}
				before = deephash.Hash(&p.input)
			}
			t0 := time.Now()
			got, err := solve(ps)
			if err != nil {
				log.Fatalf("part %s: %v", ps.Part, err)
			}
			if sm {
				want := p.Want()
				if fmt.Sprint(got) != want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
				continue
			}
			if deephash.Hash(&p.input) != before {
				log.Fatalf("part %s modified its input", ps.Part)
			}
			fmt.Println(resultLine(ps.Part, got, time.Since(t0), p.input))
		}
	}
}

// resultLine formats the answer of a part run on input.
func resultLine(part string, got any, took time.Duration, input []byte) string {
	return fmt.Sprintf("part %s: %v (took %v, %s input)", part, got, took.Round(time.Microsecond), humanize.Bytes(uint64(len(input))))
}

// Run runs the solvers of slvr for the given year. slvr must be a pointer
// to a struct embedding *Puzzle, and src holds the source files whose doc
// comments contain the samples.
//
// An optional positional argument names the input file; it requires -day
// when slvr has more than one day.
func Run(year int, src fs.FS, slvr any) {
	log.SetFlags(0)
	samples, err := extractSamples(src)
	if err != nil {
		log.Fatal(err)
	}
	days := extractMethods(slvr)
	initFlags()

	path := flag.Arg(0)
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples, path)
		return
	}
	if path != "" && len(days) > 1 {
		log.Fatalf("input file %s given without -day", path)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples, path)
		fmt.Println()
	}
}

var loadEnv = sync.OnceFunc(func() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("loading .env: %v", err)
	}
})

// session returns the adventofcode.com session cookie, from $AOC_SESSION
// (optionally set in .env) or ~/keys/aoc.session.
func session() (string, error) {
	loadEnv()
	if v := os.Getenv("AOC_SESSION"); v != "" {
		return v, nil
	}
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func request(method, url string, body io.Reader) (*http.Request, error) {
	sess, err := session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: sess})
	return req, nil
}

// fileOrFetch returns the contents of filename, fetching url into it first
// if the file does not exist.
func fileOrFetch(filename, url string) ([]byte, error) {
	f, err := os.ReadFile(filename)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	body, err := fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func fetch(url string) ([]byte, error) {
	req, err := request("GET", url, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
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
