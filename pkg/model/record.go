// pkg/model/record.go
package model

import "database/sql"

// GameRecord is one row of the video game sales table after type coercion.
// Optional numeric and text fields use database/sql null wrappers so a
// missing value stays distinct from zero and the record maps directly onto
// the relational importer. All fields are comparable, which makes exact
// full-row duplicate detection a map lookup.
type GameRecord struct {
	Name          string          `db:"name"`
	Platform      string          `db:"platform"`
	YearOfRelease sql.NullInt64   `db:"year_of_release"`
	Genre         string          `db:"genre"`
	Publisher     sql.NullString  `db:"publisher"`
	NASales       sql.NullFloat64 `db:"na_sales"`
	EUSales       sql.NullFloat64 `db:"eu_sales"`
	JPSales       sql.NullFloat64 `db:"jp_sales"`
	OtherSales    sql.NullFloat64 `db:"other_sales"`
	GlobalSales   sql.NullFloat64 `db:"global_sales"`
	CriticScore   sql.NullFloat64 `db:"critic_score"`
	CriticCount   sql.NullInt64   `db:"critic_count"`
	UserScore     sql.NullFloat64 `db:"user_score"`
	UserCount     sql.NullInt64   `db:"user_count"`
	Developer     sql.NullString  `db:"developer"`
	Rating        sql.NullString  `db:"esrb_rating"`
}
