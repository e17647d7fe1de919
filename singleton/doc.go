// Package singleton demonstrates the Singleton pattern: one instance per
// process, reachable through a single accessor.
//
// Overview:
//
//   - Instance() is the only way to obtain a *Singleton; the type has no
//     exported constructor and its zero value is never handed out.
//   - The accessor uses double-checked locking. The fast path is a lock-free
//     atomic load; only the first callers contend for the mutex, and the
//     second check under the lock guarantees a single construction.
//   - Every instance carries a uuid so callers can tell instances apart in
//     logs and tests.
//
// Thread safety:
//
//   - Instance() is safe for concurrent use from any number of goroutines.
//   - DoSomething narrates through the caller's Narrator and holds no state.
//
// Example:
//
//	s1 := singleton.Instance()
//	s2 := singleton.Instance()
//	fmt.Println(s1 == s2) // true
package singleton
