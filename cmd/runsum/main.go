package main

import (
	"log"
	"os"

	"github.com/initify/runsum/internal/report"
)

func main() {
	if err := report.Write(os.Stdout); err != nil {
		log.Fatalf("runsum: %v", err)
	}
}
