package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/market-sim/market-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed           int64  // Seed for random browsing draws
	duration       int    // Total simulated minutes (ticks)
	logLevel       string // Log verbosity level
	configPath     string // Path to the store configuration YAML (empty = built-in default)
	browseAttempts int    // Browse attempts per customer per tick
	realTime       bool   // Pace one tick per wall-clock second
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "market-sim",
	Short: "Discrete-time supermarket simulator",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the supermarket simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		storeCfg, supplierCfg, customerCfg, simCfg, err := LoadStoreConfig(configPath)
		if err != nil {
			logrus.Fatalf("unable to read store config: %v", err)
		}
		simCfg.Duration = duration
		simCfg.Seed = seed
		if browseAttempts > 0 {
			customerCfg.BrowseAttempts = browseAttempts
		}

		logrus.Infof("Starting simulation: %d minutes, %d items stocked, %d employees, seed=%d",
			duration, len(storeCfg.InitialStock), len(storeCfg.Employees), seed)

		inv := sim.NewStockedInventory(storeCfg.InitialStock, time.Now(), storeCfg.ShelfLifeDays)
		employees := make([]*sim.Employee, 0, len(storeCfg.Employees))
		for _, e := range storeCfg.Employees {
			employees = append(employees, sim.NewEmployee(e.Name, e.Role))
		}
		supplier := sim.NewSupplier(supplierCfg.Name, supplierCfg.Catalog, supplierCfg.LeadTimeDays)
		store := sim.NewLedgerStore(inv, storeCfg.Promotions, employees, supplier, storeCfg.SalaryPerEmployee)

		var ticker sim.TickSource = sim.ImmediateTicker{}
		if realTime {
			ticker = sim.RealTimeTicker{Interval: time.Second}
		}

		s := sim.NewSimulator(simCfg, store, storeCfg.Pricing, customerCfg, ticker)
		s.Run()

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random browsing draws")
	runCmd.Flags().IntVar(&duration, "duration", 60, "Simulated minutes to run")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Store configuration YAML (empty = built-in sample store)")
	runCmd.Flags().IntVar(&browseAttempts, "browse-attempts", 0, "Browse attempts per customer per tick (0 = config value)")
	runCmd.Flags().BoolVar(&realTime, "real-time", false, "Pace one tick per wall-clock second")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
