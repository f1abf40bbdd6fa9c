package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"librarycatalog/internal/book"
	"librarycatalog/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var (
		count    int
		outPath  string
		randSeed int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a YAML seed file with synthetic books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}
			if randSeed == 0 {
				randSeed = time.Now().UnixNano()
			}

			books := seed.Generate(count, rand.New(rand.NewSource(randSeed)))
			if err := writeSeed(cmd.OutOrStdout(), outPath, books); err != nil {
				return err
			}

			logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			logger.Printf("Generated %d books (rand seed %d)", len(books), randSeed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 100, "number of books to generate")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().Int64Var(&randSeed, "rand-seed", 0, "random seed (0 picks one from the clock)")
	return cmd
}

func writeSeed(stdout io.Writer, path string, books []book.Book) error {
	if path == "" || path == "-" {
		return seed.Encode(stdout, books)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := seed.Encode(f, books); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
