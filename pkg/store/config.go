package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the per-invocation configuration. There is no ambient
// global: load it once and hand it to the components that need it.
type Config interface {
	BasePath() string
	ClientID() string
	ClientSecret() string
	TokenURL() string
	BaseURL() string
}

// LoadConfig reads .redline.yaml from the working directory (or
// REDLINE_CONFIG_PATH) and the REDLINE_* environment.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.redline.db")
	v.SetDefault("token_url", "https://oauth2.googleapis.com/token")
	v.SetConfigName(".redline") // .yaml is implicit
	v.SetEnvPrefix("REDLINE")
	v.AutomaticEnv()

	if override := os.Getenv("REDLINE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:   path,
		ID:     v.GetString("client_id"),
		Secret: v.GetString("client_secret"),
		Token:  v.GetString("token_url"),
		Base:   v.GetString("base_url"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	ID     string `json:"client_id"`
	Secret string `json:"client_secret"`
	Token  string `json:"token_url"`
	Base   string `json:"base_url"`
}

func (f *fileConfig) BasePath() string     { return f.Path }
func (f *fileConfig) ClientID() string     { return f.ID }
func (f *fileConfig) ClientSecret() string { return f.Secret }
func (f *fileConfig) TokenURL() string     { return f.Token }
func (f *fileConfig) BaseURL() string      { return f.Base }
