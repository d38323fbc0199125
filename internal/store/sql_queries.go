package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	settingsTable       = "settings"
	settingsNameColumn  = "name"
	settingsValueColumn = "value"
)

// sqlite uses "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetSettingQuery(name string) (string, []any, error) {
	return sqlite.
		Select(settingsValueColumn).
		From(settingsTable).
		Where(sq.Eq{settingsNameColumn: name}).
		Limit(1).
		ToSql()
}

func buildUpsertSettingQuery(name, value string) (string, []any, error) {
	return sqlite.
		Insert(settingsTable).
		Columns(settingsNameColumn, settingsValueColumn, "updated_at").
		Values(name, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
