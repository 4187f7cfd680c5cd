package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pevans/pressroom/pressitem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	written map[string]int
	failed  []error
}

func (o *recordingObserver) Written(path string, count int) {
	if o.written == nil {
		o.written = map[string]int{}
	}
	o.written[path] = count
}

func (o *recordingObserver) WriteFailed(path string, err error) {
	o.failed = append(o.failed, err)
}

// TestWrite_HeaderAndDelimiter verifies the header row and semicolon
// delimiter
func TestWrite_HeaderAndDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	observer := &recordingObserver{}
	writer := NewCSVWriter(path, observer)

	err := writer.Write([]pressitem.Record{
		{Title: "SAP Launches New Tool", Link: "https://example.com/a", Date: "2024-01-05", Source: "Acme Corp"},
		{Title: "Second", Link: "/b", Date: "2024-01-04", Source: ""},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Title;Link;Date;Source\n"+
			"SAP Launches New Tool;https://example.com/a;2024-01-05;Acme Corp\n"+
			"Second;/b;2024-01-04;\n",
		string(data))
	assert.Equal(t, map[string]int{path: 2}, observer.written)
	assert.Empty(t, observer.failed)
}

// TestWrite_QuotesDelimiter verifies fields containing the delimiter are
// quoted
func TestWrite_QuotesDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	err := NewCSVWriter(path, nil).Write([]pressitem.Record{
		{Title: "One; Two", Link: "/a", Date: "2024-01-05", Source: "X"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"One; Two\";/a;2024-01-05;X\n")
}

// TestWrite_Overwrites verifies a previous file is replaced
func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than the new file\n"), 0o644))

	err := NewCSVWriter(path, nil).Write([]pressitem.Record{{Title: "T", Link: "L", Date: "D", Source: "S"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Title;Link;Date;Source\nT;L;D;S\n", string(data))
}

// TestWrite_Failure verifies an unwritable path produces a WriteError
func TestWrite_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "output.csv")
	observer := &recordingObserver{}

	err := NewCSVWriter(path, observer).Write([]pressitem.Record{{Title: "T"}})
	require.Error(t, err)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, path, writeErr.Path)
	require.Len(t, observer.failed, 1)
	assert.Empty(t, observer.written)
}
