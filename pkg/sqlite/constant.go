package sqlite

const (
	DriverName = "sqlite"

	// TimeLayout is fixed width so stored timestamps sort lexically.
	TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA foreign_keys = ON",
}
