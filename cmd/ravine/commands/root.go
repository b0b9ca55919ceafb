package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config carries the run parameters shared by every subcommand.
type Config struct {
	Vertices   int
	Target     int
	Workers    int
	Degree     int
	WorkRounds int
	Verbose    bool
}

var (
	cfgFile string
	config  Config
)

var rootCmd = &cobra.Command{
	Use:   "ravine",
	Short: "Partitioned distributed depth-first search benchmark",
	Long: `ravine - depth-first search over a statically partitioned graph

Each worker owns a contiguous block of the vertex range, traverses only
what it owns, and ships boundary references to their owners through a
two-phase non-blocking exchange.`,
	// Run: nil (forces help output).
	Run: nil,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.ravine.yaml)")
	rootCmd.PersistentFlags().IntVar(&config.Vertices, "vertices", 50000, "total vertex count N")
	rootCmd.PersistentFlags().IntVar(&config.Target, "target", 42000, "target vertex to search for")
	rootCmd.PersistentFlags().IntVarP(&config.Workers, "workers", "w", 4, "worker (rank) count")
	rootCmd.PersistentFlags().IntVar(&config.Degree, "degree", 3, "out-degree of the synthetic graph")
	rootCmd.PersistentFlags().IntVar(&config.WorkRounds, "work-rounds", 1000, "synthetic per-vertex workload rounds")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "enable per-rank debug logging")

	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// viper folds in env (RAVINE_*) and config-file values, with
		// explicit flags taking precedence.
		config.Vertices = viper.GetInt("vertices")
		config.Target = viper.GetInt("target")
		config.Workers = viper.GetInt("workers")
		config.Degree = viper.GetInt("degree")
		config.WorkRounds = viper.GetInt("work-rounds")
		config.Verbose = viper.GetBool("verbose")

		if config.Verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.AddCommand(RunCmd)
	rootCmd.AddCommand(ProfileCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".ravine.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("RAVINE")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
