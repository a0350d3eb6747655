package database

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS organisations (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		producer TEXT,
		model TEXT,
		registration_number TEXT,
		production_year INTEGER,
		description TEXT,
		organisation_id BIGINT REFERENCES organisations(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS distances (
		id BIGSERIAL PRIMARY KEY,
		kilometres INTEGER,
		vehicle_id BIGINT REFERENCES vehicles(id),
		description TEXT,
		timestamp TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS refuels (
		id BIGSERIAL PRIMARY KEY,
		location TEXT,
		fuel_name TEXT,
		refuel_amount DOUBLE PRECISION,
		price DOUBLE PRECISION,
		vehicle_id BIGINT REFERENCES vehicles(id),
		description TEXT,
		timestamp TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS event_history_logs (
		id BIGSERIAL PRIMARY KEY,
		timestamp TIMESTAMP NOT NULL,
		who_did TEXT,
		action TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		organisation_id BIGINT REFERENCES organisations(id),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		last_login TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS organisations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		producer TEXT,
		model TEXT,
		registration_number TEXT,
		production_year INTEGER,
		description TEXT,
		organisation_id INTEGER REFERENCES organisations(id),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS distances (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kilometres INTEGER,
		vehicle_id INTEGER REFERENCES vehicles(id),
		description TEXT,
		timestamp DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS refuels (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		location TEXT,
		fuel_name TEXT,
		refuel_amount REAL,
		price REAL,
		vehicle_id INTEGER REFERENCES vehicles(id),
		description TEXT,
		timestamp DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS event_history_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		who_did TEXT,
		action TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		organisation_id INTEGER REFERENCES organisations(id),
		active BOOLEAN NOT NULL DEFAULT 1,
		last_login DATETIME,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}
