package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/lawcite"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lawcite.MatchService = (*MatchService)(nil)

// MatchService implements lawcite.MatchService using SQLite.
type MatchService struct {
	db *DB
}

// NewMatchService creates a new MatchService.
func NewMatchService(db *DB) *MatchService {
	return &MatchService{db: db}
}

// SaveReport stores every law result and match record in the report.
// Saving the same law again replaces its previous matches.
func (s *MatchService) SaveReport(ctx context.Context, report *lawcite.Report) error {
	for position, law := range report.Laws {
		if err := s.saveLaw(ctx, position, law); err != nil {
			return err
		}
	}
	return nil
}

// saveLaw replaces a law's stored matches inside one transaction, so a
// failed save never leaves a law with partial matches.
func (s *MatchService) saveLaw(ctx context.Context, position int, law *lawcite.LawResult) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM laws WHERE id = ?`, law.LawID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO laws (id, title, law_num, content_hash, position)
		VALUES (?, ?, ?, ?, ?)
	`, law.LawID, law.Title, law.LawNum, law.ContentHash, position)
	if err != nil {
		return err
	}

	for i, match := range law.Matches {
		words, err := json.Marshal(match.Words)
		if err != nil {
			return fmt.Errorf("failed to encode match words: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO matches (id, law_id, part, chapter, section, subsection, division,
				article, paragraph, item, sub_item_depth, sub_item,
				suppl_provision, suppl_provision_title, words, excerpt, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), law.LawID, match.Part, match.Chapter, match.Section,
			match.Subsection, match.Division, match.Article, match.Paragraph, match.Item,
			match.SubItemDepth, match.SubItem, boolToInt(match.SupplProvision),
			match.SupplProvisionTitle, string(words), match.Excerpt, i)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// FindMatchesByLaw retrieves stored matches for one law in document order.
func (s *MatchService) FindMatchesByLaw(ctx context.Context, lawID string) ([]lawcite.Match, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT part, chapter, section, subsection, division, article, paragraph, item,
			sub_item_depth, sub_item, suppl_provision, suppl_provision_title, words, excerpt
		FROM matches
		WHERE law_id = ?
		ORDER BY position ASC
	`, lawID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []lawcite.Match
	for rows.Next() {
		var match lawcite.Match
		var supplProvision int
		var words string
		err := rows.Scan(&match.Part, &match.Chapter, &match.Section, &match.Subsection,
			&match.Division, &match.Article, &match.Paragraph, &match.Item,
			&match.SubItemDepth, &match.SubItem, &supplProvision,
			&match.SupplProvisionTitle, &words, &match.Excerpt)
		if err != nil {
			return nil, err
		}
		match.SupplProvision = supplProvision != 0
		if err := json.Unmarshal([]byte(words), &match.Words); err != nil {
			return nil, fmt.Errorf("failed to decode match words: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, lawcite.Errorf(lawcite.ENOTFOUND, "no stored matches for law %q", lawID)
	}
	return matches, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
