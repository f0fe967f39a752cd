package game

// Persistence is the narrow storage contract the engine consumes. The
// SQLite implementation lives in internal/storage; tests substitute an
// in-memory fake. A nil Persistence disables persistence entirely (the game
// still plays).
type Persistence interface {
	// HighScore returns the best recorded score for a mode (0 when none).
	HighScore(mode string) (int, error)
	// SaveHighScore records a finished session's score for a mode.
	SaveHighScore(mode string, score int) error
	// IsNewHighScore reports whether score beats everything recorded for
	// mode.
	IsNewHighScore(score int, mode string) (bool, error)

	// LifetimeScore returns the cumulative score across all non-zen
	// sessions; it gates harmony unlocks.
	LifetimeScore() (int, error)
	// AddToLifetimeScore adds a finished session's points to the lifetime
	// total.
	AddToLifetimeScore(points int) error

	// HasSeen and MarkSeen track one-shot tutorial flags per mechanic.
	HasSeen(flag string) (bool, error)
	MarkSeen(flag string) error

	// RecordDiscoveredColor stores a correctly answered color (cosmetic
	// collection).
	RecordDiscoveredColor(hex string) error
}
