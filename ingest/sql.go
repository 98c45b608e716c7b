//go:build !solution

package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"gitlab.com/slon/courseplanner/course"
)

// DefaultQuery selects number, title and a comma separated prerequisite list.
const DefaultQuery = "SELECT number, title, COALESCE(prerequisites, '') FROM courses"

func isDSN(source string) bool {
	return strings.HasPrefix(source, "postgres://") || strings.HasPrefix(source, "postgresql://")
}

// ReadSQL reads courses from a PostgreSQL database. query must return three
// text columns: number, title and comma separated prerequisites.
func ReadSQL(ctx context.Context, dsn, query string) ([]*course.Course, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var courses []*course.Course
	for rows.Next() {
		var number, title, prereqs string
		if err := rows.Scan(&number, &title, &prereqs); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		fields := append([]string{number, title}, strings.Split(prereqs, ",")...)
		courses = append(courses, ParseFields(fields))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}
