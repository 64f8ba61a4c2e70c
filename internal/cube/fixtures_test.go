package cube

import "sync"

// sharedTables amortizes the one-time table build (a BFS over the full
// phase-1 and phase-2 coordinate spaces) across every test in this package
// instead of repeating it per test.
var (
	sharedTablesOnce sync.Once
	sharedTablesVal  *Tables
)

func sharedTables() *Tables {
	sharedTablesOnce.Do(func() {
		sharedTablesVal = BuildTables()
	})
	return sharedTablesVal
}
