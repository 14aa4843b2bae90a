/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every setting read from the environment,
// e.g. GBOOKMARKS2JSON_INPUT or GBOOKMARKS2JSON_DIRECT_ONLY.
const envPrefix = "GBOOKMARKS2JSON"

// initConfig layers settings: flags override environment variables (a .env
// file in the working directory included), which override the config file.
func initConfig() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gbookmarks2json")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gbookmarks2json"))
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags makes the named flags available through viper under their own name.
func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			log.Fatalf("Failed to bind flag %s: %v", name, err)
		}
	}
}
