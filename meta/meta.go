// meta/meta.go
package meta

import "time"

// BUDGET defines the search time per AI move.
const BUDGET = 200 * time.Millisecond

// GAMES defines the number of self-play games per matchup.
const GAMES = 10

// WORKERS defines the number of self-play games run at once.
const WORKERS = 4

// TEMPERATURE defines the visit-count temperature of training agents.
const TEMPERATURE = 1.0

// RECORDS_DIR defines where self-play records are stored.
const RECORDS_DIR = "experiments"
