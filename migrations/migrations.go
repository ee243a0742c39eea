package migrations

import "database/sql"

// AutoMigrateProducts creates the products table if it does not exist.
func AutoMigrateProducts(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT
		);
	`
	_, err := db.Exec(query)
	return err
}

// AutoMigrateUsers creates the users table and its username index if they
// do not exist. The UNIQUE constraint on username is the backstop against
// concurrent creations of the same user.
func AutoMigrateUsers(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username VARCHAR(20) NOT NULL UNIQUE,
			password VARCHAR(32) NOT NULL
		);
	`
	if _, err := db.Exec(query); err != nil {
		return err
	}

	indexQuery := `CREATE INDEX IF NOT EXISTS idx_users_username ON users (username);`
	_, err := db.Exec(indexQuery)
	return err
}
