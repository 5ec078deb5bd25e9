package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gigcal",
	Short: "Multi-venue music event scraper",
	Long: `Gigcal scrapes event listings from venue websites, normalizes their
inconsistent date/time/artist text into structured records, and keeps a
deduplicated local database of upcoming shows.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gigcal.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", ".", "directory for the event database")
	rootCmd.PersistentFlags().String("cache-dir", "./page_cache", "directory for caching venue pages")
	rootCmd.PersistentFlags().String("venues", "venues.yaml", "venue configuration file")
	rootCmd.PersistentFlags().Int("cache-expiry-hours", 6, "hours before a cached page expires")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Bind flags to viper
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
	viper.BindPFlag("venues_file", rootCmd.PersistentFlags().Lookup("venues"))
	viper.BindPFlag("cache_expiry_hours", rootCmd.PersistentFlags().Lookup("cache-expiry-hours"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory and current directory
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gigcal")
		viper.SetConfigName("config")
	}

	// Environment variables
	viper.SetEnvPrefix("GIGCAL")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
