package store

import (
	"context"
	"fmt"

	"github.com/chapterly/api/internal/models"
)

func (s *SQLiteStore) ListReports(ctx context.Context) ([]models.BookReport, error) {
	return s.listReports(ctx, "", nil)
}

func (s *SQLiteStore) ListReportsByBook(ctx context.Context, bookId int64) ([]models.BookReport, error) {
	return s.listReports(ctx, "WHERE br.book_id = ?", []any{bookId})
}

// listReports joins reports with their answers and regroups the flat rows,
// one report per distinct id, answers in insertion order.
func (s *SQLiteStore) listReports(ctx context.Context, where string, args []any) ([]models.BookReport, error) {
	query := fmt.Sprintf(`
			SELECT br.id, br.book_id, br.member_id, bra.question, bra.answer
			FROM book_reports br
			LEFT JOIN book_report_answers bra ON bra.report_id = br.id
			%s
			ORDER BY br.id, bra.rowid;
	`, where)

	rows, err := s.DB.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, fmt.Errorf("error querying book_reports table: %v", err)
	}

	defer rows.Close()

	reports := []models.BookReport{}

	for rows.Next() {
		var id, bookId, memberId int64
		var question, answer *string

		if err := rows.Scan(&id, &bookId, &memberId, &question, &answer); err != nil {
			return nil, fmt.Errorf("error scanning book report: %v", err)
		}

		if len(reports) == 0 || reports[len(reports)-1].Id != id {
			reports = append(reports, models.BookReport{
				Id:       id,
				BookId:   bookId,
				MemberId: memberId,
				Answers:  []models.ReportAnswer{},
			})
		}

		if question != nil {
			last := &reports[len(reports)-1]
			last.Answers = append(last.Answers, models.ReportAnswer{
				Question: *question,
				Answer:   deref(answer),
			})
		}
	}

	return reports, rows.Err()
}

// CreateReport inserts the report row and its answers as one unit. Either the
// report and every answer land, or nothing does.
func (s *SQLiteStore) CreateReport(ctx context.Context, bookId int64, memberId int64, answers []models.ReportAnswer) (int64, error) {
	tx, err := s.DB.BeginTx(ctx, nil)

	if err != nil {
		return 0, fmt.Errorf("error starting transaction: %v", err)
	}

	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO book_reports (book_id, member_id) VALUES (?, ?);",
		bookId, memberId,
	)

	if err != nil {
		return 0, fmt.Errorf("error inserting in book_reports table: %v", err)
	}

	reportId, err := result.LastInsertId()

	if err != nil {
		return 0, fmt.Errorf("error retrieving report id: %v", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO book_report_answers (report_id, question, answer) VALUES (?, ?, ?);",
	)

	if err != nil {
		return 0, fmt.Errorf("error preparing answer statement: %v", err)
	}

	defer stmt.Close()

	for _, a := range answers {
		if _, err := stmt.ExecContext(ctx, reportId, a.Question, a.Answer); err != nil {
			return 0, fmt.Errorf("error inserting in book_report_answers table: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing transaction: %v", err)
	}

	return reportId, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
