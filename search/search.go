// Package search orchestrates a word search across a law corpus. It
// coordinates catalog order, per-document parsing and matching, and the
// assembly of the final report.
package search

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lawcite"
	"golang.org/x/sync/errgroup"
)

// Searcher runs searches over a corpus directory.
type Searcher struct {
	Parser  lawcite.Parser
	Matches lawcite.MatchService // optional persistence of results

	// Concurrent document limit; defaults to 4.
	Concurrency int

	// FailFast aborts the run on the first document failure. Off by
	// default: failures are collected into the report instead.
	FailFast bool
}

// ProgressEvent reports progress during a search run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	LawID     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is called as documents are processed.
type ProgressFunc func(ProgressEvent)

// docResult is the outcome of processing one law document.
type docResult struct {
	position int
	lawNum   string
	hash     string
	matches  []lawcite.Match
	err      error
}

// Search processes every law in catalog order and returns the combined
// report. Documents are processed by a bounded worker pool; results are
// collected into a position-indexed slice so the report always lists laws
// in catalog order regardless of scheduling. Unless FailFast is set, a
// single document's failure is recorded in the report and the run
// continues.
func (s *Searcher) Search(ctx context.Context, corpusDir string, laws []*lawcite.LawRecord, matcher *lawcite.Matcher, progress ProgressFunc) (*lawcite.Report, error) {
	if err := matcher.Validate(); err != nil {
		return nil, err
	}
	if info, err := os.Stat(corpusDir); err != nil || !info.IsDir() {
		return nil, lawcite.Errorf(lawcite.EINVALID, "corpus root %q is not a readable directory", corpusDir)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(laws)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan docResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var waitErr error
	done := make(chan struct{})
	go func() {
		for i, rec := range laws {
			i, rec := i, rec
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				result := s.processLaw(corpusDir, i, rec, matcher)
				resultCh <- result
				if s.FailFast && result.err != nil {
					return result.err
				}
				return nil
			})
		}
		waitErr = g.Wait()
		close(resultCh)
		close(done)
	}()

	results := make([]docResult, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			LawID:     laws[result.position].LawID,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}
	<-done
	if waitErr != nil {
		return nil, waitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &lawcite.Report{
		Words:      matcher.Words,
		RequireAll: matcher.RequireAll,
		Laws:       []*lawcite.LawResult{},
	}
	for i, result := range results {
		if result.err != nil {
			report.Failures = append(report.Failures, &lawcite.Failure{
				LawID:    laws[i].LawID,
				FileName: laws[i].FileName,
				Err:      lawcite.ErrorMessage(result.err),
			})
			continue
		}
		if len(result.matches) == 0 {
			continue
		}
		report.Laws = append(report.Laws, &lawcite.LawResult{
			LawID:       laws[i].LawID,
			Title:       laws[i].Title,
			LawNum:      result.lawNum,
			ContentHash: result.hash,
			Matches:     result.matches,
		})
	}
	report.UnmatchedWords = lawcite.Unmatched(matcher.Words, report.Laws)

	if s.Matches != nil {
		if err := s.Matches.SaveReport(ctx, report); err != nil {
			return nil, err
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return report, nil
}

// processLaw reads, parses, and matches a single law document.
func (s *Searcher) processLaw(corpusDir string, position int, rec *lawcite.LawRecord, matcher *lawcite.Matcher) docResult {
	result := docResult{position: position}

	path := filepath.Join(corpusDir, rec.FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.err = lawcite.Errorf(lawcite.ENOTFOUND, "law file %q not found", path)
		} else {
			result.err = lawcite.Errorf(lawcite.EINTERNAL, "reading law file %q: %v", path, err)
		}
		return result
	}
	result.hash = hashContent(data)

	root, err := s.Parser.Parse(bytes.NewReader(data))
	if err != nil {
		result.err = err
		return result
	}
	result.lawNum = root.Number

	matches, err := lawcite.Collect(root, matcher)
	if err != nil {
		result.err = err
		return result
	}
	result.matches = matches

	return result
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content []byte) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(content))
	return hex.EncodeToString(b[:])
}
