// Package kv provides the durable key-value backends that hold portalauth
// state: the user list and the single logged-in session record.
//
// A host supplies two Backend instances, a persistent tier that survives
// restarts and a volatile tier scoped to the current process or session.
//
// Implementations
//
//   - MemoryStore: in-process map, the default volatile tier.
//   - SQLiteStore: local file database, the default persistent tier.
//   - PostgresStore: server database reached through pgx.
//   - RedisStore: shared cache; usable for either tier, with optional TTL.
//
// Contract
//
//   - Get returns (nil, nil) when the key is absent.
//   - Set is an atomic single-key replacement.
//   - Remove of an absent key is a no-op.
//
// Backends that can do an isolated read-modify-write of one key also
// implement Updater.
package kv
