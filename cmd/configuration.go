package cmd

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"arabicrackr/utility"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/visionmedia/go-cli-log"
)

const (
	UserCreateConfigurationDeniedError = "user did not want to create config"
	FixedConfigCommandError            = "command doesn't work with custom config path"
)

// Config declared this way to force the presence of these values at runtime
type config struct {
	// Could extend this with "optional" fields
	RootsFile    string `instr:"Path to the default roots file, or 'builtin' for the embedded root list"`
	StrictFilter string `instr:"Apply strict positional rules on generation paths (true/false)"`
	MinLength    string `instr:"Minimum candidate length for targeted generators (0 to disable)"`
	MaxLength    string `instr:"Maximum candidate length for targeted generators (0 to disable)"`
}

var cfgFormat = config{}

// configureCmd represents the configure command
var configurationCmd = &cobra.Command{
	Use:     "configuration",
	Aliases: []string{"config", "cfg", "conf", "c"},
	Short:   "Handle the configuration of the program",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration settings",
	Args:  cobra.ExactArgs(0),
	Run:   showConfig,
}

var configCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Removes the current configuration file",
	Args:  cobra.ExactArgs(0),
	RunE:  configClean,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Shows the default configuration location",
	Args:  cobra.ExactArgs(0),
	RunE:  configWhere,
}

func init() {
	configurationCmd.AddCommand(configShowCmd)
	configurationCmd.AddCommand(configCleanCmd)
	configurationCmd.AddCommand(configWhereCmd)

	rootCmd.AddCommand(configurationCmd)
}

func showConfig(_ *cobra.Command, _ []string) {
	for _, key := range viper.AllKeys() {
		log.Info(key, "%s", viper.Get(key))
	}
}

func generateConfig() error {
	confirm := utility.GetBoolean("Do you want to create a config now?")

	if !confirm {
		return errors.New(UserCreateConfigurationDeniedError)
	}

	// Necessary evil of reflect to make the config logic more elegant
	v := reflect.TypeOf(cfgFormat)

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fmt.Println("> " + field.Tag.Get("instr"))
		input := utility.GetInput(fmt.Sprintf("%s", field.Name))
		viper.Set(field.Name, input)
	}

	return nil
}

func getMissingConf() bool {
	cfg := config{}

	fixedMissingConf := false
	v := reflect.TypeOf(cfg)

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		if viper.Get(field.Name) == nil {
			if !fixedMissingConf {
				log.Info("Configuration", "%s", "Found missing configuration, please set these values")
			}

			fixedMissingConf = true

			fmt.Println("> " + field.Tag.Get("instr"))
			input := utility.GetInput(fmt.Sprintf("%s", field.Name))
			viper.Set(field.Name, input)
		}
	}

	return fixedMissingConf
}

func configWhere(c *cobra.Command, _ []string) error {
	if c.Flag("config").Value.String() != "" {
		return errors.New(FixedConfigCommandError)
	}

	fmt.Println(defaultCfgPath)
	return nil
}

func configClean(c *cobra.Command, _ []string) error {
	if c.Flag("config").Value.String() != "" {
		return errors.New(FixedConfigCommandError)
	}

	err := os.Remove(defaultCfgPath)
	return err
}
