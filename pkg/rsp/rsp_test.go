package rsp

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    string
	}{
		{
			name: "every option",
			answers: Answers{
				Output:           "out.txt",
				Language:         "c#",
				Note:             true,
				Sort:             "AB",
				RemoveEmptyLines: true,
				Author:           "Jane Doe",
			},
			want: `bundle --output "out.txt" --language "c#" --note --sort "AB" --remove-empty-lines --author "Jane Doe"`,
		},
		{
			name:    "language only",
			answers: Answers{Language: "python"},
			want:    `bundle --language "python"`,
		},
		{
			name:    "empty language is still written",
			answers: Answers{},
			want:    `bundle --language ""`,
		},
		{
			name:    "quotes and backslashes are escaped",
			answers: Answers{Output: `C:\out\"x".txt`, Language: "all"},
			want:    `bundle --output "C:\\out\\\"x\".txt" --language "all"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.answers))
		})
	}
}

func TestFormatRoundTripsThroughExpand(t *testing.T) {
	answers := Answers{
		Output:           `dir with space/o "1".txt`,
		Language:         "c#",
		Note:             true,
		Sort:             "TP",
		RemoveEmptyLines: true,
		Author:           `Jane \ Doe`,
	}
	fsys := afero.NewMemMapFs()
	require.NoError(t, Write(fsys, DefaultFile, answers, zap.NewNop()))

	args, err := Expand(fsys, []string{"@" + DefaultFile}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"bundle",
		"--output", `dir with space/o "1".txt`,
		"--language", "c#",
		"--note",
		"--sort", "TP",
		"--remove-empty-lines",
		"--author", `Jane \ Doe`,
	}, args)
}

func TestExpand(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "opts.rsp", []byte("# saved options\n--language python\n--sort 'AB'\n"), 0o644))

	args, err := Expand(fsys, []string{"bundle", "@opts.rsp", "--note", "@"}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"bundle", "--language", "python", "--sort", "AB", "--note", "@"}, args)
}

func TestExpandMissingFile(t *testing.T) {
	_, err := Expand(afero.NewMemMapFs(), []string{"@missing.rsp"}, zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.rsp")
}

func TestExpandUnterminatedQuote(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "bad.rsp", []byte(`bundle --author "Jane`), 0o644))

	_, err := Expand(fsys, []string{"@bad.rsp"}, zap.NewNop())

	assert.Error(t, err)
}

func TestWriteReadOnly(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := Write(fsys, DefaultFile, Answers{Language: "all"}, zap.NewNop())

	assert.Error(t, err)
}

func TestPrompt(t *testing.T) {
	in := strings.NewReader("out.txt\nc#\nYes\nTP\nno\nJane\n")
	var out bytes.Buffer

	a, err := Prompt(in, &out)
	require.NoError(t, err)

	assert.Equal(t, Answers{
		Output:   "out.txt",
		Language: "c#",
		Note:     true,
		Sort:     "TP",
		Author:   "Jane",
	}, a)
	assert.Contains(t, out.String(), "Enter output file path:")
	assert.Contains(t, out.String(), "Enter author name:")
}

func TestPromptShortInput(t *testing.T) {
	in := strings.NewReader("\r\npython\r\ny")
	var out bytes.Buffer

	a, err := Prompt(in, &out)
	require.NoError(t, err)

	assert.Equal(t, Answers{Language: "python", Note: true}, a)
	assert.Equal(t, 6, strings.Count(out.String(), "\n"), "every question is still shown")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty closed") }

func TestPromptReadError(t *testing.T) {
	_, err := Prompt(failingReader{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty closed")
}

func TestYes(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", " YES "} {
		assert.True(t, yes(answer), answer)
	}
	for _, answer := range []string{"", "n", "no", "yep"} {
		assert.False(t, yes(answer), answer)
	}
}
