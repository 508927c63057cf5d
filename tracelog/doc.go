// Package tracelog provides a leveled logger that writes every record to
// the console and an append-mode log file, and keeps a stack of named
// scopes that is dumped as diagnostic context when something at
// ErrorLevel or worse is logged.
//
// # Features
//
//   - Ordered severities FATAL > ERROR > WARN > INFO > DEBUG with a single
//     threshold (default InfoLevel)
//   - Dual sinks: every line is mirrored to stdout and the log file
//   - Scope stack: Push/Pop named spans, dumped newest-first on errors
//   - Shared process-wide logger plus explicit *Logger values for
//     dependency injection
//   - Optional colored console output via fatih/color (files stay plain)
//   - Config loading from YAML or JSON, threshold override via the
//     TRACELOG_THRESHOLD environment variable
//
// # Usage
//
// Initialize the shared logger once at startup and close it on the way out:
//
//	tracelog.Init("./app.log")
//	defer tracelog.Close()
//
//	tracelog.Push("main")
//	tracelog.Infof("listening on port %d", 8080)
//	tracelog.Error("connection refused") // dumps the scope stack
//	tracelog.Pop()
//
// Or construct an explicit logger and pass it around:
//
//	log := tracelog.New()
//	log.SetThreshold(tracelog.DebugLevel)
//	log.Init("./debug.log")
//	defer log.Close()
//
// Each leveled record is one line of the form
//
//	[ 2006/01/02 15:04:05 ] message
//
// and records at ErrorLevel or worse are followed by the active scopes,
// innermost first, between delimiter lines.
//
// # Concurrency
//
// A Logger performs no internal locking and assumes a single thread of
// control. Callers that share one logger across goroutines must guard
// every operation with their own mutex.
package tracelog
