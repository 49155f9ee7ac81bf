// Package dataset models the tabular data that Graphly charts: raw imported
// rows, the (x,y) points projected from them, dataset metadata, and
// descriptive statistics.
//
// Rows are loosely typed maps as delivered by the import layer. Projection to
// points coerces cell values to float64 and silently excludes rows that do
// not parse; a missing or malformed cell is an expected condition, never an
// error.
//
// # Basic Usage
//
//	rows := []dataset.Row{
//	    {"time": 1.0, "temp": 20.5},
//	    {"time": 2.0, "temp": "21.3"}, // numeric strings are accepted
//	    {"time": 3.0, "temp": "n/a"},  // excluded from points and stats
//	}
//
//	points := dataset.Points(rows, "time", "temp")
//	stats := dataset.Describe(rows, "time", "temp")
package dataset
