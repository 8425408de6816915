// cmd/seeder/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/unclebandit/autoshop-backend/internal/app"
	"github.com/unclebandit/autoshop-backend/internal/config"
	"github.com/unclebandit/autoshop-backend/internal/store"
)

// Seeds every collection that has a seed/<name>.json file, replacing its contents.
func main() {
	dir := flag.String("dir", "seed", "directory holding <collection>.json seed files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	backend, conn, err := app.OpenBackend(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if conn != nil {
		defer conn.Close()
	}

	seeded := 0
	for _, name := range store.Names {
		file := filepath.Join(*dir, name+".json")
		content, err := os.ReadFile(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			log.Fatalf("failed to read %s: %v", file, err)
		}

		var records []json.RawMessage
		if err := json.Unmarshal(content, &records); err != nil {
			log.Fatalf("%s is not a JSON array: %v", file, err)
		}

		if err := store.NewCollection[json.RawMessage](backend, name).Save(ctx, records); err != nil {
			log.Fatalf("failed to seed %s: %v", name, err)
		}
		fmt.Printf("Seeded: %s (%d records)\n", name, len(records))
		seeded++
	}

	fmt.Printf("Store seeding completed successfully! (%d collections, driver=%s)\n", seeded, cfg.StoreDriver)
}
