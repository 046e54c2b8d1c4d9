package search_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/fwojciec/lawcite"
	"github.com/fwojciec/lawcite/etree"
	"github.com/fwojciec/lawcite/mock"
	"github.com/fwojciec/lawcite/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lawXML renders a minimal one-article law whose only sentence is text.
func lawXML(text string) string {
	return fmt.Sprintf(`<Law><LawNum>試験法令番号</LawNum><LawBody><MainProvision><Article Num="1"><Paragraph Num="1"><ParagraphSentence><Sentence>%s</Sentence></ParagraphSentence></Paragraph></Article></MainProvision></LawBody></Law>`, text)
}

// writeCorpus writes one XML file per entry and returns the corpus dir
// plus matching law records.
func writeCorpus(t *testing.T, docs map[string]string) (string, []*lawcite.LawRecord) {
	t.Helper()
	dir := t.TempDir()
	var records []*lawcite.LawRecord
	for _, name := range sortedKeys(docs) {
		file := name + ".xml"
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(docs[name]), 0644))
		records = append(records, &lawcite.LawRecord{LawID: name, Title: "法律" + name, FileName: file})
	}
	return dir, records
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newSearcher() *search.Searcher {
	return &search.Searcher{Parser: etree.NewParser(), Concurrency: 4}
}

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("results follow catalog order regardless of concurrency", func(t *testing.T) {
		t.Parallel()

		dir, records := writeCorpus(t, map[string]string{
			"law1": lawXML("審査請求に関する規定"),
			"law2": lawXML("審査会の設置"),
			"law3": lawXML("無関係の条文"),
		})

		report, err := newSearcher().Search(context.Background(), dir, records, &lawcite.Matcher{Words: []string{"審査"}}, nil)

		require.NoError(t, err)
		require.Len(t, report.Laws, 2)
		assert.Equal(t, "law1", report.Laws[0].LawID)
		assert.Equal(t, "law2", report.Laws[1].LawID)
		assert.Equal(t, "法律law1", report.Laws[0].Title)
		assert.Equal(t, "試験法令番号", report.Laws[0].LawNum)
		assert.NotEmpty(t, report.Laws[0].ContentHash)
	})

	t.Run("a malformed document does not stop the run", func(t *testing.T) {
		t.Parallel()

		dir, records := writeCorpus(t, map[string]string{
			"law1": lawXML("審査請求"),
			"law2": `<Law><Broken`,
			"law3": lawXML("審査会"),
		})

		report, err := newSearcher().Search(context.Background(), dir, records, &lawcite.Matcher{Words: []string{"審査"}}, nil)

		require.NoError(t, err)
		require.Len(t, report.Laws, 2)
		assert.Equal(t, "law1", report.Laws[0].LawID)
		assert.Equal(t, "law3", report.Laws[1].LawID)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, "law2", report.Failures[0].LawID)
		assert.Equal(t, "law2.xml", report.Failures[0].FileName)
		assert.NotEmpty(t, report.Failures[0].Err)
	})

	t.Run("fail fast aborts on the first failure", func(t *testing.T) {
		t.Parallel()

		dir, records := writeCorpus(t, map[string]string{
			"law1": `<Law><Broken`,
		})

		searcher := newSearcher()
		searcher.FailFast = true

		_, err := searcher.Search(context.Background(), dir, records, &lawcite.Matcher{Words: []string{"審査"}}, nil)

		require.Error(t, err)
		assert.Equal(t, lawcite.EINVALID, lawcite.ErrorCode(err))
	})

	t.Run("missing file is a per-document failure", func(t *testing.T) {
		t.Parallel()

		dir, records := writeCorpus(t, map[string]string{
			"law1": lawXML("審査請求"),
		})
		records = append(records, &lawcite.LawRecord{LawID: "ghost", Title: "欠落法", FileName: "ghost.xml"})

		report, err := newSearcher().Search(context.Background(), dir, records, &lawcite.Matcher{Words: []string{"審査"}}, nil)

		require.NoError(t, err)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, "ghost", report.Failures[0].LawID)
	})

	t.Run("no matches yields an empty law list", func(t *testing.T) {
		t.Parallel()

		dir, records := writeCorpus(t, map[string]string{
			"law1": lawXML("無関係の条文"),
		})

		report, err := newSearcher().Search(context.Background(), dir, records, &lawcite.Matcher{Words: []string{"審査"}}, nil)

		require.NoError(t, err)
		assert.Empty(t, report.Laws)
		assert.Equal(t, []string{"審査"}, report.UnmatchedWords)
	})

	t.Run("empty word set is a configuration error", func(t *testing.T) {
		t.Parallel()

		dir, records := writeCorpus(t, map[string]string{"law1": lawXML("条文")})

		_, err := newSearcher().Search(context.Background(), dir, records, &lawcite.Matcher{}, nil)

		require.Error(t, err)
		assert.Equal(t, lawcite.EINVALID, lawcite.ErrorCode(err))
	})

	t.Run("unreadable corpus root is a configuration error", func(t *testing.T) {
		t.Parallel()

		_, err := newSearcher().Search(context.Background(), filepath.Join(t.TempDir(), "absent"), nil, &lawcite.Matcher{Words: []string{"条"}}, nil)

		require.Error(t, err)
		assert.Equal(t, lawcite.EINVALID, lawcite.ErrorCode(err))
	})

	t.Run("reports progress per document", func(t *testing.T) {
		t.Parallel()

		dir, records := writeCorpus(t, map[string]string{
			"law1": lawXML("審査請求"),
			"law2": `<Law><Broken`,
		})

		var started, completed, failed, finished int
		progress := func(event search.ProgressEvent) {
			switch event.Type {
			case search.ProgressStarted:
				started++
			case search.ProgressCompleted:
				completed++
			case search.ProgressFailed:
				failed++
			case search.ProgressFinished:
				finished++
			}
		}

		_, err := newSearcher().Search(context.Background(), dir, records, &lawcite.Matcher{Words: []string{"審査"}}, progress)

		require.NoError(t, err)
		assert.Equal(t, 1, started)
		assert.Equal(t, 1, completed)
		assert.Equal(t, 1, failed)
		assert.Equal(t, 1, finished)
	})

	t.Run("persists the report when a match service is configured", func(t *testing.T) {
		t.Parallel()

		dir, records := writeCorpus(t, map[string]string{
			"law1": lawXML("審査請求"),
		})

		var saved *lawcite.Report
		searcher := newSearcher()
		searcher.Matches = &mock.MatchService{
			SaveReportFn: func(_ context.Context, report *lawcite.Report) error {
				saved = report
				return nil
			},
		}

		report, err := searcher.Search(context.Background(), dir, records, &lawcite.Matcher{Words: []string{"審査"}}, nil)

		require.NoError(t, err)
		assert.Same(t, report, saved)
	})

	t.Run("identical runs produce identical reports", func(t *testing.T) {
		t.Parallel()

		dir, records := writeCorpus(t, map[string]string{
			"law1": lawXML("審査請求"),
			"law2": lawXML("審査会"),
		})

		first, err := newSearcher().Search(context.Background(), dir, records, &lawcite.Matcher{Words: []string{"審査"}}, nil)
		require.NoError(t, err)
		second, err := newSearcher().Search(context.Background(), dir, records, &lawcite.Matcher{Words: []string{"審査"}}, nil)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
