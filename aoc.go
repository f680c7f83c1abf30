// Package aoc is the shared runner for the Advent of Code 2018 solutions:
// puzzle registration, sample checking, input loading and a few grid
// helpers.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// Year is the event year used to download inputs. AOC_YEAR overrides it.
var Year = 2018

// Log is the process logger. Main writes it to stderr; it is silent until then.
var Log = zerolog.Nop()

var (
	flagDay     *string
	flagInput   *string
	flagVerbose *bool
)

var (
	puzzles      []string
	puzzleByName = map[string]func() any{} // func name -> func
	sampleInput  = map[string]string{}
	sampleWant   = map[string]string{}
)

var (
	curDay   int
	altInput []byte // non-nil to run a sample
)

func Main() {
	flagDay = flag.String("day", "", "func name to run; empty string means latest registered. If it starts with a digit, then \"day\" prefix is assumed.")
	flagInput = flag.String("input", "", "input file; \"-\" reads stdin. Empty means <day>.input, downloading it if missing.")
	flagVerbose = flag.Bool("v", false, "debug logging")
	flag.Parse()

	Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	if *flagVerbose {
		Log = Log.Level(zerolog.DebugLevel)
	} else {
		Log = Log.Level(zerolog.InfoLevel)
	}

	if err := godotenv.Load(); err == nil {
		Log.Debug().Msg("loaded .env")
	}
	if v := os.Getenv("AOC_YEAR"); v != "" {
		Year = Int(v)
	}

	if len(puzzles) == 0 {
		Log.Fatal().Msg("no puzzles registered")
	}
	funcName, err := resolve(*flagDay)
	if err != nil {
		Log.Fatal().Err(err).Msg("bad -day")
	}
	if got, want, ok := CheckSample(funcName); !ok {
		Log.Warn().Str("puzzle", funcName).Msg("⚠️ no sample")
	} else if got != want {
		Log.Fatal().Str("puzzle", funcName).Str("got", got).Str("want", want).Msg("❌ sample mismatch")
	} else {
		Log.Info().Str("puzzle", funcName).Msg("OK sample result")
	}
	curDay = dayOf(funcName)
	v := puzzleByName[funcName]()
	fmt.Println(v)
}

// CheckSample runs the named puzzle on its doc comment sample and
// returns the result alongside the expected answer. ok is false if the
// puzzle has no sample.
func CheckSample(funcName string) (got, want string, ok bool) {
	want, ok = sampleWant[funcName]
	if !ok {
		return "", "", false
	}
	curDay = dayOf(funcName)
	altInput = []byte(sampleInput[funcName])
	defer func() { altInput = nil }()
	return fmt.Sprint(puzzleByName[funcName]()), want, true
}

// Puzzles returns the registered puzzle func names in registration order.
func Puzzles() []string {
	return slices.Clone(puzzles)
}

var getDay = regexp.MustCompile(`\d+`)

// resolve maps a -day flag value to a registered func name.
func resolve(name string) (string, error) {
	if name == "" {
		return puzzles[len(puzzles)-1], nil
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "day" + name
	}
	if _, ok := puzzleByName[name]; !ok {
		return "", fmt.Errorf("puzzle func %v not registered", name)
	}
	if !getDay.MatchString(name) {
		return "", fmt.Errorf("no digits in func name %q from which to extract day number", name)
	}
	return name, nil
}

func dayOf(funcName string) int {
	return Int(getDay.FindString(funcName))
}

var wantRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// ExtractSamples reads the doc comments of every .go file in fsys
// (typically the day package's embedded source) and records the
// "want=" samples found there. A want line with no input below it
// reuses the previous sample's input.
func ExtractSamples(fsys fs.FS) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		panic(err)
	}
	sort.Strings(names)
	var lastInput string
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src := MustGet(fs.ReadFile(fsys, name))
		lastInput = extractFile(name, src, lastInput)
	}
}

func extractFile(name string, src []byte, lastInput string) string {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		panic(fmt.Errorf("parsing %s to extract samples: %w", name, err))
	}
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			if m := wantRx.FindStringSubmatch(text); m != nil {
				sampleWant[funcName] = m[1]
				in := Or(m[2], lastInput)
				sampleInput[funcName] = in
				lastInput = in
			}
		}
	}
	return lastInput
}

func funcName(f func() any) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name() // e.g. "main.day1"
	return name[strings.LastIndex(name, ".")+1:]
}

func Add(puzFuncs ...func() any) {
	for _, f := range puzFuncs {
		name := funcName(f)
		puzzles = append(puzzles, name)
		puzzleByName[name] = f
	}
}

// Sample reports whether the sample input is being run. Puzzles whose
// parameters differ between the example and the real input switch on it.
func Sample() bool {
	return altInput != nil
}

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

func AbsInt[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsInt[T](a.X, b.X) + AbsInt[T](a.Y, b.Y)
}

func (p Pt2[T]) String() string { return fmt.Sprintf("%v,%v", p.X, p.Y) }

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

// ReadingLess orders points top to bottom, then left to right.
func ReadingLess[T constraints.Signed](a, b Pt2[T]) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func sliceOf[T any](v ...T) []T { return v }

// NorthClockwise steps in N, E, S, W order, so index+1 is a right turn.
var NorthClockwise = sliceOf(
	Pt2[int].North,
	Pt2[int].East,
	Pt2[int].South,
	Pt2[int].West,
)

func Input() []byte {
	if altInput != nil {
		return altInput
	}
	if flagInput != nil && *flagInput != "" {
		if *flagInput == "-" {
			return MustGet(io.ReadAll(os.Stdin))
		}
		return MustGet(os.ReadFile(*flagInput))
	}
	filename := fmt.Sprintf("%d.input", curDay)
	f, err := os.ReadFile(filename)
	if err == nil {
		return f
	}
	f, err = download(curDay)
	if err != nil {
		Log.Fatal().Err(err).Int("day", curDay).Msg("fetching input")
	}
	MustDo(os.WriteFile(filename, f, 0644))
	return f
}

func session() (string, error) {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return s, nil
	}
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("no AOC_SESSION and no session file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func download(day int) ([]byte, error) {
	s, err := session()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", Year, day)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: s})
	Log.Debug().Str("url", url).Msg("downloading input")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("bad status: %v", res.Status)
	}
	return io.ReadAll(res.Body)
}

func Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(Input()))
}

func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

var intRx = regexp.MustCompile(`[-+]?\d+`)

// Ints returns every signed integer in s, in order.
func Ints(s string) []int {
	var ret []int
	for _, m := range intRx.FindAllString(s, -1) {
		ret = append(ret, Int(m))
	}
	return ret
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

// MustGet2 is MustGet for two values.
func MustGet2[T, U any](v T, w U, err error) (T, U) {
	if err != nil {
		panic(err)
	}
	return v, w
}

// ForLines calls onLine for each line of input.
func ForLines(onLine func(line string)) {
	ForLinesY(func(_ int, line string) { onLine(line) })
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func ForLinesY(onLine func(y int, line string)) {
	s := Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// Lines returns the non-empty input lines.
func Lines() []string {
	var lines []string
	ForLines(func(line string) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	})
	return lines
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

type Grid map[Pt]rune

func ReadGrid() Grid {
	return GridFromString(string(Input()))
}

func GridFromString(s string) Grid {
	g := Grid{}
	for y, line := range strings.Split(s, "\n") {
		for x, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			g[Pt{x, y}] = r
		}
	}
	return g
}

func (g Grid) Bounds() (minX, minY, maxX, maxY int) {
	n := 0
	for p := range g {
		if n == 0 {
			minX = p.X
			maxX = p.X
			minY = p.Y
			maxY = p.Y
		}
		n++
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return
}

// String renders g over its bounds, using '.' for missing cells.
func (g Grid) String() string {
	if len(g) == 0 {
		return ""
	}
	var sb strings.Builder
	minX, minY, maxX, maxY := g.Bounds()
	for y := minY; y <= maxY; y++ {
		if y > minY {
			sb.WriteByte('\n')
		}
		for x := minX; x <= maxX; x++ {
			r := g[Pt{x, y}]
			if r == 0 {
				r = '.'
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
