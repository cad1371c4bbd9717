// Package wordscan searches a directory tree of text files concurrently.
//
// An [Engine] lists the eligible files under a root (recursively, ".txt"
// by default), reads them line by line and splits lines into words. It
// answers four queries, each with its own concurrency shape:
//
//   - [Engine.UniqueWords]: full fan-out over files on a bounded worker
//     set, then concatenation. Optionally the lines of one file are
//     indexed in parallel too ([WithLineParallelism]).
//   - [Engine.LineWithMostA] and [Engine.LineWithMost]: fan-out, then a
//     two-level reduce. Within a file the earliest best line wins. Across
//     files the highest count wins and ties go to the smallest absolute
//     path. The result does not depend on completion order.
//   - [Engine.WordWithConsonants]: a race. The first match halts the
//     search and nothing new starts afterwards.
//   - [Engine.WordsWithSubstring]: a completion-ordered task pool with a
//     shared match counter. The search stops once the quota is met and
//     the result is truncated to it.
//
// # Stopping
//
// Stopping is cooperative. Every task checks the stop condition before
// it starts a file, a line and a word. A task that is already scanning
// finishes at most the word in hand. Every query waits for its tasks
// before returning, so no goroutine outlives the call.
//
// # Errors
//
// A file that cannot be listed or read fails the whole query with a
// [*FileError]. Results are never silently incomplete. An empty tree or
// a search without matches is not an error. Panics in file tasks are
// returned as [*PanicError].
//
// # Collaborators
//
// Listing, reading and tokenizing are pluggable through [WithLister],
// [WithLineReader] and [WithTokenizer]. The defaults live in the
// [github.com/baxromumarov/wordscan/source] and
// [github.com/baxromumarov/wordscan/token] packages.
package wordscan
