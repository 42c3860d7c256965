package database

// User represents a registered account. The role is an opaque string; "admin"
// unlocks the administrative endpoints.
type User struct {
	ID             int64  `db:"id" json:"id"`
	Username       string `db:"username" json:"username"`
	Email          string `db:"email" json:"email"`
	HashedPassword string `db:"hashed_password" json:"-"`
	Role           string `db:"role" json:"role"`
	IsActive       bool   `db:"is_active" json:"is_active"`
}

// Book represents a catalogued book owned by a user. Summary and category are
// filled in by the enrichment webhook and may be empty.
type Book struct {
	ID       int64  `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Author   string `db:"author" json:"author"`
	Summary  string `db:"summary" json:"summary"`
	Category string `db:"category" json:"category"`
	OwnerID  int64  `db:"owner_id" json:"owner_id"`
}
