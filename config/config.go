package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

var once sync.Once

func InitConfig() {
	once.Do(func() {
		viper.AutomaticEnv()

		viper.BindEnv("data_dir", "LINKNOT_DIR")
		viper.BindEnv("debug", "LINKNOT_DEBUG")

		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		viper.SetDefault("data_dir", filepath.Join(home, ".linknot"))
		viper.SetDefault("debug", false)
	})
}

func GetString(key string) string {
	InitConfig()
	return viper.GetString(key)
}

func GetBool(key string) bool {
	InitConfig()
	return viper.GetBool(key)
}
