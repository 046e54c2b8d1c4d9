package json_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/lawcite"
	lawjson "github.com/fwojciec/lawcite/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *lawcite.Report {
	return &lawcite.Report{
		Words: []string{"条例"},
		Laws: []*lawcite.LawResult{
			{
				LawID:       "322AC0000000067",
				Title:       "地方自治法",
				LawNum:      "昭和二十二年法律第六十七号",
				ContentHash: "0011223344556677",
				Matches: []lawcite.Match{
					{
						Chapter:   "1",
						Article:   "14",
						Paragraph: "2",
						Words:     []string{"条例"},
						Excerpt:   "義務を課し、又は権利を制限するには、条例によらなければならない。",
					},
				},
			},
		},
		Failures: []*lawcite.Failure{
			{LawID: "broken", FileName: "broken.xml", Err: "malformed law XML"},
		},
	}
}

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("round trip preserves every field", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.json")
		report := testReport()

		require.NoError(t, lawjson.NewReportWriter(path).WriteReport(context.Background(), report))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got lawcite.Report
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, report.Words, got.Words)
		require.Len(t, got.Laws, 1)
		assert.Equal(t, report.Laws[0], got.Laws[0])
		require.Len(t, got.Failures, 1)
		assert.Equal(t, report.Failures[0], got.Failures[0])
	})

	t.Run("writes are byte-identical across runs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := filepath.Join(dir, "a.json")
		second := filepath.Join(dir, "b.json")

		require.NoError(t, lawjson.NewReportWriter(first).WriteReport(context.Background(), testReport()))
		require.NoError(t, lawjson.NewReportWriter(second).WriteReport(context.Background(), testReport()))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "out", "report.json")

		require.NoError(t, lawjson.NewReportWriter(path).WriteReport(context.Background(), testReport()))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("unwritable destination fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		// A path below a regular file can never be created.
		err := lawjson.NewReportWriter(filepath.Join(blocker, "report.json")).WriteReport(context.Background(), testReport())

		require.Error(t, err)
		assert.Equal(t, lawcite.EINTERNAL, lawcite.ErrorCode(err))
	})

	t.Run("empty report still writes a valid artifact", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.json")
		report := &lawcite.Report{Words: []string{"該当なし"}, Laws: []*lawcite.LawResult{}, UnmatchedWords: []string{"該当なし"}}

		require.NoError(t, lawjson.NewReportWriter(path).WriteReport(context.Background(), report))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got lawcite.Report
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Empty(t, got.Laws)
		assert.Equal(t, []string{"該当なし"}, got.UnmatchedWords)
	})
}
