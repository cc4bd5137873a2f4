package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  João Silva  \n"))

	got, err := GetSimpleText(reader, "Nome completo", &out)
	require.NoError(t, err)
	assert.Equal(t, "João Silva", got)
	assert.Equal(t, "Nome completo\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("sem quebra de linha"))

	got, err := GetSimpleText(reader, "Nome", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "sem quebra de linha", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Nome", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetTextWithDefault(t *testing.T) {
	tests := []struct {
		name    string
		typed   string
		current string
		want    string
	}{
		{"enter keeps current", "\n", "João Silva", "João Silva"},
		{"typed value wins", "Maria Silva\n", "João Silva", "Maria Silva"},
		{"no current, typed", "Maria Silva\n", "", "Maria Silva"},
		{"no current, enter", "\n", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reader := bufio.NewReader(strings.NewReader(tt.typed))

			got, err := GetTextWithDefault(reader, "Nome completo", tt.current, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.current != "" {
				assert.Contains(t, out.String(), "["+tt.current+"]")
			}
		})
	}
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("senha123"), nil }

	var out bytes.Buffer
	got, err := GetPassword("Senha: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "senha123", got)
	assert.Equal(t, "Senha: \n", out.String())
}

func TestIsYes(t *testing.T) {
	for _, yes := range []string{"s", "S", "sim", "SIM", "y", "yes", " s "} {
		assert.True(t, isYes(yes), yes)
	}
	for _, no := range []string{"", "n", "não", "nao", "q", "talvez"} {
		assert.False(t, isYes(no), no)
	}
}
