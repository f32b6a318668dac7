// Package cmd implements the keel CLI commands.
//
// The command structure follows standard Go CLI patterns with a root
// command that dispatches to subcommands (serialize, colors, partition,
// registry).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/keel/cmd/keel/internal/config"
	"github.com/go-drift/keel/cmd/keel/internal/term"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// configPath is where subcommands look for keel.yaml. Overridden by the
// global --config flag.
var configPath = config.DefaultFile

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "keel",
	Short: "Keel - typed value boxes, binary streams and palettes",
	Long: `Keel demonstrates the keel library from the terminal: boxing values,
serializing records to binary streams, parsing color swatches and
partitioning work across goroutines.

Use "keel <command> --help" for more information about a command.`,
	Usage: "keel <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --config
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("keel version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			term.Verbose = true
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--config=") {
				configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		printHelp(rootCmd)
		fmt.Println()
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-12s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help       Show help for a command")
	fmt.Println("  -v, --version    Show version information")
	fmt.Println("  --config FILE    Configuration file (default: keel.yaml)")
	fmt.Println("  --verbose        Show debug output and structure dumps")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  NO_COLOR         Disable colorized output")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  keel serialize --compress       Round-trip a record through a zstd file")
	fmt.Println("  keel colors \"Orange (#FFA500)\"  Parse a swatch and show its color")
	fmt.Println("  keel partition --chunks 4       Sum 1..100 across 4 goroutines")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
