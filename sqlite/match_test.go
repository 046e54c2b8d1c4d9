package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/lawcite"
	"github.com/fwojciec/lawcite/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testReport() *lawcite.Report {
	return &lawcite.Report{
		Words: []string{"審査"},
		Laws: []*lawcite.LawResult{
			{
				LawID:       "325AC0000000131",
				Title:       "行政手続法",
				LawNum:      "平成五年法律第八十八号",
				ContentHash: "a1b2c3d4e5f60708",
				Matches: []lawcite.Match{
					{
						Chapter:   "2",
						Article:   "5",
						Paragraph: "1",
						Words:     []string{"審査"},
						Excerpt:   "審査基準を定めるものとする。",
					},
					{
						Article:             "1",
						SubItemDepth:        2,
						SubItem:             "イ",
						SupplProvision:      true,
						SupplProvisionTitle: "平成六年法律第五十号",
						Words:               []string{"審査"},
						Excerpt:             "審査請求に関する経過措置",
					},
				},
			},
		},
	}
}

func TestMatchService_SaveReport(t *testing.T) {
	t.Parallel()

	t.Run("round trips matches through the store", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewMatchService(mustOpenDB(t))
		report := testReport()

		require.NoError(t, s.SaveReport(context.Background(), report))

		got, err := s.FindMatchesByLaw(context.Background(), "325AC0000000131")
		require.NoError(t, err)
		assert.Equal(t, report.Laws[0].Matches, got)
	})

	t.Run("a failed save leaves stored matches untouched", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewMatchService(mustOpenDB(t))
		require.NoError(t, s.SaveReport(context.Background(), testReport()))

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		require.Error(t, s.SaveReport(cancelled, testReport()))

		got, err := s.FindMatchesByLaw(context.Background(), "325AC0000000131")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("saving again replaces previous matches", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewMatchService(mustOpenDB(t))
		require.NoError(t, s.SaveReport(context.Background(), testReport()))

		updated := testReport()
		updated.Laws[0].Matches = updated.Laws[0].Matches[:1]
		require.NoError(t, s.SaveReport(context.Background(), updated))

		got, err := s.FindMatchesByLaw(context.Background(), "325AC0000000131")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "5", got[0].Article)
	})
}

func TestMatchService_FindMatchesByLaw(t *testing.T) {
	t.Parallel()

	t.Run("unknown law returns not found", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewMatchService(mustOpenDB(t))

		_, err := s.FindMatchesByLaw(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, lawcite.ENOTFOUND, lawcite.ErrorCode(err))
	})

	t.Run("matches come back in document order", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewMatchService(mustOpenDB(t))
		require.NoError(t, s.SaveReport(context.Background(), testReport()))

		got, err := s.FindMatchesByLaw(context.Background(), "325AC0000000131")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "5", got[0].Article)
		assert.Equal(t, "1", got[1].Article)
	})
}
