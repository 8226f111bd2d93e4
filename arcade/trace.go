package arcade

import (
	"fmt"
	"log"
	"os"
	"time"
)

// NewTraceLogger opens (creating its parent directory if needed) a
// timestamped log file under dir and returns a *log.Logger writing one line
// per instruction, in the same "create file, *log.Logger, log.Fatalf on
// failure" shape the reference CPU package uses for its own per-instruction
// trace.
func NewTraceLogger(dir string) *log.Logger {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("arcade: unable to create trace directory %s: %v", dir, err)
	}

	name := fmt.Sprintf("%s/invaders-%s.log", dir, time.Now().Format("20060102-150405"))
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
	if err != nil {
		log.Fatalf("arcade: unable to create trace file %s: %v", name, err)
	}

	return log.New(f, "", 0)
}
