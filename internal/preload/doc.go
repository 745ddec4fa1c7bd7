// Package preload keeps slide media warm ahead of navigation.
//
// Tracker is the pure half: it derives the warm set (current slide plus
// immediate neighbors) from each index it observes and reports only the
// indices newly entering the set. The set grows monotonically and is
// bounded by the slide count; nothing is ever evicted within a session.
//
// Warmer is the runtime half: it follows engine updates, feeds fresh
// indices through a bounded worker pool, and hands each one to a Loader.
// Pool size comes from the host CPU count, and the warmer stays off
// entirely under memory pressure. Fetch failures are logged, never
// surfaced; a cold image degrades rendering, not navigation.
package preload
