package store

// sqliteSchema is the DDL for the embedded database.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS solve_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL,
		vertices INTEGER NOT NULL,
		edges INTEGER NOT NULL,
		created_unix INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS solve_labels (
		run_id INTEGER NOT NULL REFERENCES solve_runs(id) ON DELETE CASCADE,
		vertex_index INTEGER NOT NULL,
		vertex TEXT NOT NULL,
		distance REAL,
		predecessor TEXT,
		PRIMARY KEY (run_id, vertex_index)
	)`,
}

// mysqlSchema is the DDL for MySQL (InnoDB, utf8mb4).
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS solve_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		label VARCHAR(255) NOT NULL DEFAULT '',
		source VARCHAR(255) NOT NULL,
		vertices INT NOT NULL,
		edges INT NOT NULL,
		created_unix BIGINT NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	`CREATE TABLE IF NOT EXISTS solve_labels (
		run_id BIGINT NOT NULL,
		vertex_index INT NOT NULL,
		vertex VARCHAR(255) NOT NULL,
		distance DOUBLE NULL,
		predecessor VARCHAR(255) NULL,
		PRIMARY KEY (run_id, vertex_index),
		CONSTRAINT fk_labels_run FOREIGN KEY (run_id) REFERENCES solve_runs(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}
