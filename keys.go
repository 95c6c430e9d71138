package pcapgen

// KeySource produces control selectors one at a time, blocking the calling
// goroutine until one is available. Returning io.EOF ends the dispatch loop
// like an explicit quit; any other error aborts it. The session depends only
// on this abstraction, not on terminal APIs, so a scripted source can drive
// it in tests.
type KeySource interface {
	Next() (rune, error)
}
