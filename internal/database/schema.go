package database

// Dates and timestamps are stored as TEXT so the driver returns the
// strings we wrote; a DATE/TIMESTAMP decltype would make it convert rows
// to time.Time on read behind our back.
const schema = `
CREATE TABLE venues (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	base_url TEXT NOT NULL,
	calendar_path TEXT DEFAULT '/calendar/',
	starred BOOLEAN NOT NULL DEFAULT 0,
	last_scraped TEXT,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	venue_id INTEGER NOT NULL,
	date TEXT NOT NULL,
	time TEXT,
	artists TEXT NOT NULL,
	url TEXT NOT NULL,
	cost TEXT,
	pinned BOOLEAN NOT NULL DEFAULT 0,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (venue_id) REFERENCES venues (id),
	UNIQUE (venue_id, date, artists, url)
);

CREATE INDEX idx_events_date ON events (date);
CREATE INDEX idx_events_venue ON events (venue_id);
`

// migrations contains incremental schema changes applied in order based on
// the current user_version. migrations[0] is empty because version 0
// creates the full base schema above. Databases persisted by earlier
// releases are missing the later columns and pick them up here
// automatically, without data loss.
var migrations = []string{
	"",
	`ALTER TABLE events ADD COLUMN cost TEXT;`,
	`ALTER TABLE events ADD COLUMN pinned BOOLEAN NOT NULL DEFAULT 0;
ALTER TABLE venues ADD COLUMN starred BOOLEAN NOT NULL DEFAULT 0;`,
}
