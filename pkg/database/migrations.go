package database

import "embed"

// Migration files are embedded into the binary so production deployments do
// not depend on external files.
//
// Workflow:
//  1. Edit ent/schema/*.go
//  2. Add a numbered pair of .up.sql/.down.sql files under migrations/
//  3. Review SQL, commit
//  4. The app applies pending migrations on startup
//
//go:embed migrations
var migrationsFS embed.FS
