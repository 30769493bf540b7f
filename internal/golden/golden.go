// Package golden compares test output with reference files kept under
// testdata.
//
//	func TestRun(t *testing.T) {
//		var out bytes.Buffer
//		run(&out)
//		golden.Fatal(t, "", &out)
//	}
//
// compares out with testdata/TestRun.golden. Reference files are written by
// running the test with RecordEnv set to a regexp matching the test name.
package golden

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

// When this environment variable is set to a regexp and the name of the current
// test matches, calls to Error or Fatal record the subject as new reference
// data instead of comparing it. E.g.
//
//	COLDIFF_GOLDEN_RECORD=TestRun go test ./cmd/coldiff
const RecordEnv = "COLDIFF_GOLDEN_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go help
// test).
const GoTestdataDir = "testdata"

const StdSuffix = ".golden"

func Error(t *testing.T, hint string, subj io.Reader) error {
	return defaultConfig.Error(t, hint, subj)
}

func Fatal(t *testing.T, hint string, subj io.Reader) {
	defaultConfig.Fatal(t, hint, subj)
}

// Repo locates reference files in Dir. Without a hint the file is named after
// the test, otherwise hint names a file in a directory named after the test.
type Repo struct {
	Dir    string
	Suffix string
}

func (r Repo) Filename(t *testing.T, hint string) string {
	suffix := r.Suffix
	if suffix == "" {
		suffix = StdSuffix
	}
	name := filepath.FromSlash(t.Name())
	if hint == "" {
		return filepath.Join(r.Dir, name+suffix)
	}
	if strings.HasSuffix(hint, suffix) {
		return filepath.Join(r.Dir, name, hint)
	}
	return filepath.Join(r.Dir, name, hint+suffix)
}

type Config struct {
	Filename        func(t *testing.T, hint string) string
	MismatchLimit   int
	RecordOverwrite bool
}

var defaultConfig = Config{
	Filename:        Repo{Dir: GoTestdataDir}.Filename,
	MismatchLimit:   3,
	RecordOverwrite: true,
}

func (cfg Config) Error(t *testing.T, hint string, subj io.Reader) error {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, subj)
		return nil
	}
	err := cfg.compare(t, hint, subj)
	if err != nil {
		t.Error(err)
	}
	return err
}

func (cfg Config) Fatal(t *testing.T, hint string, subj io.Reader) {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, subj)
	} else if err := cfg.compare(t, hint, subj); err != nil {
		t.Fatal(err)
	}
}

func recordTest(t *testing.T) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("golden: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

// MismatchCount is returned when subject and reference differ.
type MismatchCount int

func (mc MismatchCount) Error() string {
	return fmt.Sprintf("%d mismatches", mc)
}

func (cfg *Config) compare(t *testing.T, hint string, subj io.Reader) error {
	t.Helper()
	file := cfg.Filename(t, hint)
	ref, err := os.Open(file)
	if os.IsNotExist(err) {
		t.Logf("to record a reference file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		return fmt.Errorf("reference file %s does not exist", file)
	} else if err != nil {
		return err
	}
	defer ref.Close()
	if hint == "" {
		hint = "subject"
	}
	return cfg.lines(t, hint, bufio.NewReader(ref), bufio.NewReader(subj))
}

// lines compares ref and subj line by line. Line terminators are part of the
// comparison.
func (cfg *Config) lines(t *testing.T, hint string, ref, subj *bufio.Reader) error {
	t.Helper()
	misses := 0
	for lno := 1; ; lno++ {
		rl, rerr := ref.ReadString('\n')
		sl, serr := subj.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return rerr
		}
		if serr != nil && serr != io.EOF {
			return serr
		}
		if rl != sl {
			misses++
			mismatch(t, hint, lno, rl, sl)
			if cfg.MismatchLimit > 0 && misses >= cfg.MismatchLimit {
				break
			}
		}
		if rerr == io.EOF && serr == io.EOF {
			break
		}
	}
	if misses > 0 {
		return MismatchCount(misses)
	}
	return nil
}

func mismatch(t *testing.T, hint string, lno int, ref, subj string) {
	t.Helper()
	lnstr := strconv.Itoa(lno)
	t.Errorf("%s:%s %q", hint, lnstr, subj)
	pad := strings.Repeat(" ", utf8.RuneCountInString(hint)+len(lnstr))
	t.Logf("%s  %q expected", pad, ref)
}

// Record writes subj as the reference file of t and fails t to flag that
// the test did not compare anything.
func (cfg Config) Record(t *testing.T, hint string, subj io.Reader) {
	t.Helper()
	file := cfg.Filename(t, hint)
	if err := cfg.record(file, subj); err != nil {
		t.Fatal(err)
	}
	t.Errorf("golden recorder wrote: %s", file)
}

func (cfg Config) record(file string, subj io.Reader) error {
	if _, err := os.Stat(file); !os.IsNotExist(err) && !cfg.RecordOverwrite {
		return fmt.Errorf("golden: reference file '%s' already exists", file)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0777); err != nil {
		return err
	}
	wr, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err = io.Copy(wr, subj); err != nil {
		wr.Close()
		return err
	}
	return wr.Close()
}
