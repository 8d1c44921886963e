package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	log "github.com/visionmedia/go-cli-log"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var globalCfg config

var configFileName = ".arabicrackr"
var cfgFile string
var defaultCfgPath string

var outputPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arabicrackr",
	Short: "Generate Arabic-focused password wordlists for cracking pipelines",
	Long: `arabicrackr generates candidate password wordlists targeting Arabic
and transliterated-Arabic naming conventions: root-and-pattern word
formation, region-specific personal and city names, and the usual
date/separator suffix habits.

Each subcommand is one generator. Candidates are written one per line
to stdout (or --output) for piping straight into hashcat:

    arabicrackr roots --digits 0-4 | hashcat -m 22100 hash.txt -a 0
    arabicrackr pairs 3 4 --estimate
    maskprocessor '?1?2?2?2' | arabicrackr filter > filtered.txt`,
	PersistentPreRunE: preRun,
}

func preRun(cmd *cobra.Command, args []string) error {
	return unmarshalConfig()
}

func unmarshalConfig() error {
	return viper.Unmarshal(&globalCfg)
}

// outputWriter returns the candidate sink: stdout by default, or the
// file given by --output.
func outputWriter() (io.WriteCloser, error) {
	if outputPath == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(outputPath)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err == nil {
		os.Exit(0)
	} else {
		log.Error(err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is $HOME/.arabicrackr.yaml)",
	)

	rootCmd.PersistentFlags().StringVarP(
		&outputPath,
		"output", "o",
		"",
		"write candidates to file instead of stdout",
	)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	changesMade := false

	cfgPath := ""

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		cfgPath = cfgFile
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".arabicrackr" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(configFileName)

		cfgPath = fmt.Sprintf("%s/%s.yaml", home, configFileName)
		defaultCfgPath = cfgPath
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; need to create one
			fmt.Println("Config was not found. " +
				"If you do not want to create it, rerun the program with --config " +
				"to use a config file in a custom location")
			err = generateConfig()

			if err != nil {
				log.Error(err)
				os.Exit(-1)
			} else {
				changesMade = true
			}
		} else {
			fmt.Println("Cannot handle error", err.Error())
			os.Exit(-1)
		}
	}

	// Config was found or created
	// Verify that we have the necessary information

	// Missing information
	if getMissingConf() {
		changesMade = true
	}

	// Write changes made
	if changesMade {
		_, err := os.Stat(cfgPath)
		if !os.IsExist(err) {
			if _, err := os.Create(cfgPath); err != nil { // perm 0666
				log.Error(err)
			}
		}
		if err := viper.WriteConfig(); err != nil {
			log.Error(err)
		}
	}
}
