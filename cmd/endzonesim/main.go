// Command endzonesim runs an interactive or scripted Endzone 250
// simulator session: it constructs a Simulator at a fixed address,
// reads frames one line at a time (from stdin or a script file), and
// prints each response.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	endzone250 "github.com/jmchacon/endzone250"
)

func main() {
	var (
		address    string
		scriptPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "endzonesim",
		Short: "Endzone 250 command-protocol simulator",
		Long: `endzonesim simulates the Endzone 250 driver board's RS-485 command
protocol: it terminates framed ASCII/binary command input and emits the
same response strings the physical board would.

Examples:
  endzonesim --address 1F
  endzonesim --address 1F --script session.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(address, scriptPath, verbose)
		},
	}

	root.Flags().StringVarP(&address, "address", "a", "1F", "RS-485 address (2 hex digits)")
	root.Flags().StringVarP(&scriptPath, "script", "s", "", "read frames from a file instead of stdin")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each frame's debug-log lines")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(addressHex, scriptPath string, verbose bool) error {
	addr, err := strconv.ParseUint(addressHex, 16, 8)
	if err != nil {
		return fmt.Errorf("invalid --address %q: %w", addressHex, err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sim := endzone250.New(uint8(addr))

	input := os.Stdin
	interactive := scriptPath == ""
	if !interactive {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		input = f
	}

	fmt.Printf("Endzone 250 Simulator\n")
	fmt.Printf("Address: 0x%02X\n", addr)
	if interactive {
		fmt.Println("Enter commands, or type 'exit' to quit.")
	}

	scanner := bufio.NewScanner(input)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if interactive && line == "exit" {
			break
		}
		if line == "" {
			continue
		}

		result, err := sim.ProcessCommand([]byte(line))
		if err != nil {
			var cmdErr *endzone250.CommandError
			if errors.As(err, &cmdErr) {
				fmt.Fprintf(os.Stderr, "[ERROR] %s\n", cmdErr.Error())
			} else {
				fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			}
			continue
		}

		if result.Response != nil {
			fmt.Printf("< %s\n", result.Response)
		}
		if verbose {
			for _, logLine := range result.Logs {
				logger.Debug(logLine)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
