package main

import (
	"os"
	"strings"

	"github.com/mgsanchez/tracelog/tracelog"
)

// Example demonstrating tracelog usage.
//
// Usage: ./tracelog [logfile | config.yaml]
// Example: ./tracelog ./app.log
func main() {
	log := tracelog.Default()

	if len(os.Args) > 1 {
		arg := os.Args[1]
		if hasConfigExt(arg) {
			cfg, err := tracelog.LoadConfig(arg)
			if err != nil {
				os.Stderr.WriteString(err.Error() + "\n")
				os.Exit(1)
			}
			log, err = cfg.Build()
			if err != nil {
				os.Stderr.WriteString(err.Error() + "\n")
				os.Exit(1)
			}
		} else {
			log.Init(arg)
		}
	}
	defer log.Close() // Don't forget to close the log file!

	log.Push("main")
	log.Infof("hello %s", "world")
	log.Debug("debug is filtered at the default threshold")
	log.Warn("be careful")

	log.Push("worker")
	// An error dumps the scope stack: worker, then main.
	log.Errorf("oops: %v", "something happened")
	log.Pop()

	log.Pop()
}

func hasConfigExt(path string) bool {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return true
		}
	}
	return false
}
