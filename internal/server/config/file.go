package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/carregistry/internal/flagx"
	"github.com/dmitrijs2005/carregistry/internal/timex"
)

// FileConfig is the on-disk shape of the server configuration. It is decoded
// from JSON or TOML and copied into Config. Empty fields keep the value
// already present in Config.
type FileConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc" toml:"endpoint_addr_grpc"`
	StorageDriver               string         `json:"storage_driver" toml:"storage_driver"`
	DatabaseDSN                 string         `json:"database_dsn" toml:"database_dsn"`
	SecretKey                   string         `json:"secret_key" toml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" toml:"access_token_validity_duration"`
	AdminAccount                string         `json:"admin_account" toml:"admin_account"`
	LogFormat                   string         `json:"log_format" toml:"log_format"`
	S3RootUser                  string         `json:"s3_root_user" toml:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password" toml:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket" toml:"s3_bucket"`
	S3Region                    string         `json:"s3_region" toml:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint" toml:"s3_base_endpoint"`
}

// parseFile loads the file named by -c/-config into config. Files ending in
// .toml are decoded as TOML, anything else as JSON. A missing flag means no
// file; an unreadable or malformed file panics.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	c := &FileConfig{}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, c); err != nil {
			panic(err)
		}
	} else {
		file, err := os.ReadFile(path)
		if err != nil {
			panic(err)
		}
		if err := json.Unmarshal(file, c); err != nil {
			panic(err)
		}
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.StorageDriver, c.StorageDriver)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.SecretKey, c.SecretKey)
	set(&config.AdminAccount, c.AdminAccount)
	set(&config.LogFormat, c.LogFormat)
	set(&config.S3RootUser, c.S3RootUser)
	set(&config.S3RootPassword, c.S3RootPassword)
	set(&config.S3Bucket, c.S3Bucket)
	set(&config.S3Region, c.S3Region)
	set(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
}
