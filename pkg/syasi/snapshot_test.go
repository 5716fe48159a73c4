package syasi_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-syasi/pkg/syasi"
)

// TestProgramOutputSnapshots runs a handful of representative programs
// and snapshot-tests their combined display output and final value,
// mirroring how the teacher's fixture tests snapshot a DWScript
// program's captured output with go-snaps rather than hand-writing an
// expected string per case.
func TestProgramOutputSnapshots(t *testing.T) {
	programs := []struct {
		name   string
		source string
	}{
		{
			name: "factorial",
			source: `
				(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
				(display (fact 10))
				(newline)`,
		},
		{
			name: "fibonacci",
			source: `
				(define (fib n)
				  (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))
				(for-each (lambda (n) (display (fib n)) (display " "))
				          '(0 1 2 3 4 5 6 7 8 9 10))
				(newline)`,
		},
		{
			name: "list-processing",
			source: `
				(define nums '(1 2 3 4 5))
				(display (map (lambda (x) (* x x)) nums))
				(newline)
				(display (apply + nums))
				(newline)`,
		},
	}

	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			interp := syasi.New()
			var buf strings.Builder
			interp.SetOutput(&buf)

			result, err := interp.RunString(p.source)
			if err != nil {
				t.Fatalf("unexpected error running %s: %v", p.name, err)
			}

			snaps.MatchSnapshot(t, p.name+"_output", buf.String())
			snaps.MatchSnapshot(t, p.name+"_result", syasi.Repr(result))
		})
	}
}
