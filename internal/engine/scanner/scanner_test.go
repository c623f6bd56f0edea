package scanner_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/engine/scanner"
)

func TestScanner_FailureShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []domain.UnitID
	}{
		{
			name:  "cannot build unit",
			input: "error: cannot build unit '/nix/store/aaa-foo.drv': dependency failed\n",
			want:  []domain.UnitID{"/nix/store/aaa-foo.drv"},
		},
		{
			name:  "cannot build derivation",
			input: "error: cannot build derivation '/nix/store/aaa-foo.drv': 2 dependencies couldn't be built\n",
			want:  []domain.UnitID{"/nix/store/aaa-foo.drv"},
		},
		{
			name:  "build of list failed",
			input: "error: build of '/nix/store/aaa-foo.drv', '/nix/store/bbb-bar.drv' failed\n",
			want:  []domain.UnitID{"/nix/store/aaa-foo.drv", "/nix/store/bbb-bar.drv"},
		},
		{
			name:  "build of single failed",
			input: "error: build of '/nix/store/aaa-foo.drv' failed\n",
			want:  []domain.UnitID{"/nix/store/aaa-foo.drv"},
		},
		{
			name:  "timed out",
			input: "error: building of '/nix/store/ccc-slow.drv' timed out after 3600 seconds\n",
			want:  []domain.UnitID{"/nix/store/ccc-slow.drv"},
		},
		{
			name:  "builder failed with exit code",
			input: "error: builder for '/nix/store/ddd-broken.drv' failed with exit code 2;\n",
			want:  []domain.UnitID{"/nix/store/ddd-broken.drv"},
		},
		{
			name:  "exit code shape requires semicolon",
			input: "error: builder for '/nix/store/ddd-broken.drv' failed with exit code 2\n",
			want:  nil,
		},
		{
			name:  "unrelated output",
			input: "building '/nix/store/eee-ok.drv'...\ncopying path '/nix/store/fff-src'\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scanner.New()
			got := s.Feed([]byte(tt.input))
			assert.Equal(t, tt.want, got)
			if tt.want == nil {
				assert.Empty(t, s.Failed())
			} else {
				assert.Equal(t, tt.want, s.Failed())
			}
		})
	}
}

func TestScanner_MultiTargetUnion(t *testing.T) {
	s := scanner.New()

	s.Feed([]byte("error: builder for '/nix/store/aaa-one.drv' failed with exit code 1;\n"))
	s.Feed([]byte("some progress\n"))
	s.Feed([]byte("error: building of '/nix/store/bbb-two.drv' timed out after 10 seconds\n"))

	assert.Equal(t, []domain.UnitID{"/nix/store/aaa-one.drv", "/nix/store/bbb-two.drv"}, s.Failed())
}

func TestScanner_DuplicatesReportedOnce(t *testing.T) {
	s := scanner.New()

	first := s.Feed([]byte("error: builder for '/nix/store/aaa-one.drv' failed with exit code 1;\n"))
	second := s.Feed([]byte("error: build of '/nix/store/aaa-one.drv' failed\n"))

	assert.Equal(t, []domain.UnitID{"/nix/store/aaa-one.drv"}, first)
	assert.Empty(t, second)
	assert.Len(t, s.Failed(), 1)
}

func TestScanner_FragmentedChunks(t *testing.T) {
	s := scanner.New()

	assert.Empty(t, s.Feed([]byte("error: builder for '/nix/st")))
	assert.Empty(t, s.Feed([]byte("ore/aaa-one.drv' failed with ex")))
	got := s.Feed([]byte("it code 1;\r\nnext"))

	assert.Equal(t, []domain.UnitID{"/nix/store/aaa-one.drv"}, got)
}

func TestScanner_FlushPartialLine(t *testing.T) {
	s := scanner.New()

	assert.Empty(t, s.Feed([]byte("error: build of '/nix/store/aaa-one.drv' failed")))
	assert.Equal(t, []domain.UnitID{"/nix/store/aaa-one.drv"}, s.Flush())
	assert.Empty(t, s.Flush())
}

func TestScanner_StripsEscapeSequences(t *testing.T) {
	s := scanner.New()

	s.Feed([]byte("\x1b[31;1merror:\x1b[0m builder for '\x1b[35;1m/nix/store/aaa-one.drv\x1b[0m' failed with exit code 1;\n"))

	assert.Equal(t, []domain.UnitID{"/nix/store/aaa-one.drv"}, s.Failed())
}

func TestScanner_Write(t *testing.T) {
	s := scanner.New()

	n, err := s.Write([]byte("error: build of '/nix/store/aaa-one.drv' failed\n"))
	require.NoError(t, err)
	assert.Equal(t, 48, n)
	assert.Equal(t, []domain.UnitID{"/nix/store/aaa-one.drv"}, s.Failed())
}

func TestScanner_CustomPatterns(t *testing.T) {
	s := scanner.New(scanner.Pattern{
		Name: "custom",
		Expr: regexp.MustCompile(`FAILED <([^>]+)>`),
		Extract: func(m [][]byte) []domain.UnitID {
			return []domain.UnitID{domain.UnitID(m[1])}
		},
	})

	s.Feed([]byte("FAILED <x>\nerror: build of '/nix/store/aaa-one.drv' failed\n"))

	assert.Equal(t, []domain.UnitID{"x"}, s.Failed())
}
