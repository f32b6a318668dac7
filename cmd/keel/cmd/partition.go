package cmd

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-drift/keel/cmd/keel/internal/config"
	"github.com/go-drift/keel/cmd/keel/internal/term"
	"github.com/go-drift/keel/pkg/parallel"
)

func init() {
	RegisterCommand(&Command{
		Name:  "partition",
		Short: "Split work across goroutines and verify the result",
		Long: `Sum the integers 1..100 by partitioning them across goroutines,
then verify the total against the closed form. A second pass
partitions a word list and shows which words each chunk received.

The chunk count comes from --chunks, then partition.chunks in
keel.yaml, then the number of CPUs.`,
		Usage: "keel partition [--chunks N]",
		Run:   runPartition,
	})
}

func runPartition(args []string) error {
	chunks := 0
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--chunks":
			if i+1 >= len(args) {
				return fmt.Errorf("--chunks requires a number")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("invalid chunk count %q", args[i+1])
			}
			chunks = n
			i++
		default:
			if strings.HasPrefix(arg, "--chunks=") {
				rest := strings.TrimPrefix(arg, "--chunks=")
				n, err := strconv.Atoi(rest)
				if err != nil {
					return fmt.Errorf("invalid chunk count %q", rest)
				}
				chunks = n
				continue
			}
			return fmt.Errorf("unknown flag %q (see keel partition --help)", arg)
		}
	}

	cfg, err := config.Resolve(configPath, Version)
	if err != nil {
		return err
	}
	if chunks == 0 {
		chunks = cfg.Chunks
	}
	if chunks == 0 {
		chunks = runtime.GOMAXPROCS(0)
	}
	if chunks < 1 {
		return fmt.Errorf("chunk count must be positive, got %d", chunks)
	}

	items := make([]int, 100)
	for i := range items {
		items[i] = i + 1
	}

	var total atomic.Int64
	err = parallel.Partition(context.Background(), items,
		func(ctx context.Context, chunk []int) error {
			sum := 0
			for _, v := range chunk {
				sum += v
			}
			total.Add(int64(sum))
			term.Debugf("chunk of %d summed to %d", len(chunk), sum)
			return nil
		}, parallel.WithChunks(chunks))
	if err != nil {
		return err
	}
	if total.Load() != 5050 {
		return fmt.Errorf("parallel sum produced %d, want 5050", total.Load())
	}
	term.Infof("sum of 1..100 across %d chunks = %d", chunks, total.Load())

	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	var mu sync.Mutex
	var parts []string
	err = parallel.Partition(context.Background(), words,
		func(ctx context.Context, chunk []string) error {
			joined := strings.Join(chunk, " ")
			mu.Lock()
			parts = append(parts, joined)
			mu.Unlock()
			return nil
		}, parallel.WithChunks(chunks))
	if err != nil {
		return err
	}
	term.Infof("%d words in %d chunks:", len(words), len(parts))
	for _, p := range parts {
		term.Infof("  %q", p)
	}
	return nil
}
