package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Type     string `yaml:"type"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Passwd   string `yaml:"passwd"`
	MaxConn  int    `yaml:"max_conn"`
	IdleConn int    `yaml:"idle_conn"`
	Debug    bool   `yaml:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetDataDir() string {
	return filepath.Join(c.System.Workdir, "data")
}

func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

// BoltFile is the path of the embedded key-value store when
// database.type is "bolt".
func (c *AppConfig) BoltFile() string {
	return filepath.Join(c.GetDataDir(), "cleancycle.db")
}

func (c *AppConfig) initDirs() {
	_ = os.MkdirAll(c.System.Workdir, 0o755)
	_ = os.MkdirAll(c.GetDataDir(), 0o755)
	_ = os.MkdirAll(c.GetLogDir(), 0o755)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "CleanCycle",
		Location: "America/Phoenix",
		Workdir:  "/var/cleancycle",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 8086,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "cleancycle",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/cleancycle/cleancycle.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	if v, ok := os.LookupEnv(name); ok {
		f(cast.ToBool(v))
	}
}

func setEnvIntValue(name string, f func(v int)) {
	if v, ok := os.LookupEnv(name); ok {
		f(cast.ToInt(v))
	}
}

// LoadConfig reads the YAML configuration file and applies CLEANCYCLE_*
// environment overrides. A missing file yields the built-in defaults.
func LoadConfig(cfile string) *AppConfig {
	appcfg := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			cfg := new(AppConfig)
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "config: parse %s: %v, using defaults\n", cfile, err)
			} else {
				appcfg = cfg
			}
		}
	}

	setEnvValue("CLEANCYCLE_SYSTEM_WORKDIR", func(v string) { appcfg.System.Workdir = v })
	setEnvValue("CLEANCYCLE_SYSTEM_LOCATION", func(v string) { appcfg.System.Location = v })
	setEnvBoolValue("CLEANCYCLE_SYSTEM_DEBUG", func(v bool) { appcfg.System.Debug = v })

	setEnvValue("CLEANCYCLE_WEB_HOST", func(v string) { appcfg.Web.Host = v })
	setEnvIntValue("CLEANCYCLE_WEB_PORT", func(v int) { appcfg.Web.Port = v })

	setEnvValue("CLEANCYCLE_DB_TYPE", func(v string) { appcfg.Database.Type = v })
	setEnvValue("CLEANCYCLE_DB_HOST", func(v string) { appcfg.Database.Host = v })
	setEnvIntValue("CLEANCYCLE_DB_PORT", func(v int) { appcfg.Database.Port = v })
	setEnvValue("CLEANCYCLE_DB_NAME", func(v string) { appcfg.Database.Name = v })
	setEnvValue("CLEANCYCLE_DB_USER", func(v string) { appcfg.Database.User = v })
	setEnvValue("CLEANCYCLE_DB_PWD", func(v string) { appcfg.Database.Passwd = v })
	setEnvBoolValue("CLEANCYCLE_DB_DEBUG", func(v bool) { appcfg.Database.Debug = v })

	setEnvValue("CLEANCYCLE_LOGGER_MODE", func(v string) { appcfg.Logger.Mode = v })
	setEnvBoolValue("CLEANCYCLE_LOGGER_FILE_ENABLE", func(v bool) { appcfg.Logger.FileEnable = v })
	setEnvValue("CLEANCYCLE_LOGGER_FILENAME", func(v string) { appcfg.Logger.Filename = v })

	appcfg.initDirs()
	return appcfg
}
