package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/persongen/internal/generator"
	"pkg.jsn.cam/persongen/internal/output"
	"pkg.jsn.cam/persongen/internal/prompt"
)

/*generates {name, age, salary} people and writes them to a JSON file*/

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("[GEN] %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("persongen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	countFlag := fs.String("n", "", "Number of records to generate (prompted for when empty)")
	outputFlag := fs.String("o", "", "Output JSON file path (prompted for when empty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	count, path, err := readInputs(*countFlag, *outputFlag, prompt.New(stdin, stdout))
	if err != nil {
		return err
	}

	gen := &generator.PersonGenerator{}
	gen.Init(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	bar := progressbar.NewOptions(count,
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(count > 0),
	)

	records, err := generator.Generate(gen, count, bar)
	if err != nil {
		return err
	}
	if err := bar.Finish(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	n, err := output.WriteFile(path, records)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "", log.LstdFlags)
	logger.Printf("[GEN] wrote %s records (%s) to %s",
		humanize.Comma(int64(len(records))), humanize.Bytes(uint64(n)), path)

	return nil
}

// readInputs takes the count and path from flags, prompting for whichever is
// missing. The count is always asked first.
func readInputs(countFlag, outputFlag string, p *prompt.Prompter) (int, string, error) {
	var (
		count int
		err   error
	)

	if countFlag != "" {
		count, err = prompt.ParseCount(countFlag)
	} else {
		count, err = p.Count()
	}
	if err != nil {
		return 0, "", err
	}

	var path string
	if outputFlag != "" {
		path, err = prompt.ParsePath(outputFlag)
	} else {
		path, err = p.Path()
	}
	if err != nil {
		return 0, "", err
	}

	return count, path, nil
}
