package database

import (
	"database/sql/driver"
	"fmt"

	"golang.org/x/text/cases"
	"modernc.org/sqlite"
)

// foldFunc is the SQL name of the Unicode case fold used by searches.
// SQLite's own lower() and LIKE only fold ASCII.
const foldFunc = "fold"

func init() {
	if err := sqlite.RegisterDeterministicScalarFunction(foldFunc, 1, foldValue); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", foldFunc, err))
	}
}

// foldValue implements fold(x). NULL stays NULL; numbers fold as their text.
func foldValue(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return foldString(v), nil
	case []byte:
		return foldString(string(v)), nil
	default:
		return foldString(fmt.Sprint(v)), nil
	}
}

// foldString case-folds s the same way fold() does in SQL
func foldString(s string) string {
	return cases.Fold().String(s)
}
