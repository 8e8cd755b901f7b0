package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "levelgen",
	Short: "Daily word-placement puzzle level generator",
	Long: `levelgen procedurally generates word-placement puzzle levels: a walled
grid, a start and goal cell, and a letter bag backed by a solvable word
chain running between them.`,
	Version: version,
}

// Execute runs the root command; child commands register themselves in
// their own init functions. Called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initEnv)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
}

// initEnv loads a .env file if present, the same optional-dotenv pattern
// the teacher's own CLI entrypoints use at startup.
func initEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}
}
