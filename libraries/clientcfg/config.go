// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package clientcfg reads the YAML client configuration: how to attach to
// the database and how queries size their areas.
package clientcfg

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/dolthub/fbsqlda/libraries/fbclient"
)

const (
	DefaultUser    = "sysdba"
	DefaultPass    = "masterkey"
	DefaultDialect = 3
	DefaultLevel   = "info"
)

// ConnectionYAMLConfig describes the database to attach to.
type ConnectionYAMLConfig struct {
	Path           *string `yaml:"path,omitempty"`
	User           *string `yaml:"user,omitempty"`
	Password       *string `yaml:"password,omitempty"`
	Role           *string `yaml:"role,omitempty"`
	Charset        *string `yaml:"charset,omitempty"`
	Dialect        *int    `yaml:"dialect,omitempty"`
	ConnectTimeout *int    `yaml:"connect_timeout,omitempty"`
}

// ClientYAMLConfig sizes the areas of a query.
type ClientYAMLConfig struct {
	InitialFields   *int `yaml:"initial_fields,omitempty"`
	ParamHint       *int `yaml:"param_hint,omitempty"`
	BlobSegmentSize *int `yaml:"blob_segment_size,omitempty"`
}

type LogYAMLConfig struct {
	Level *string `yaml:"level,omitempty"`
}

// YAMLConfig is the whole configuration file.
type YAMLConfig struct {
	Connection ConnectionYAMLConfig `yaml:"connection,omitempty"`
	Client     ClientYAMLConfig     `yaml:"client,omitempty"`
	Log        LogYAMLConfig        `yaml:"log,omitempty"`
}

// Load reads the config file at |path|. An empty |path| gives the defaults.
func Load(path string) (*YAMLConfig, error) {
	if path == "" {
		return &YAMLConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Parse expands environment placeholders in |data| and decodes it.
func Parse(data []byte) (*YAMLConfig, error) {
	data, err := expandEnv(data)
	if err != nil {
		return nil, err
	}
	var cfg YAMLConfig
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.LogLevel(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func strOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func intOr(n *int, def int) int {
	if n == nil {
		return def
	}
	return *n
}

func (cfg *YAMLConfig) Path() string {
	return strOr(cfg.Connection.Path, "")
}

func (cfg *YAMLConfig) User() string {
	return strOr(cfg.Connection.User, DefaultUser)
}

func (cfg *YAMLConfig) Password() string {
	return strOr(cfg.Connection.Password, DefaultPass)
}

func (cfg *YAMLConfig) Dialect() int {
	return intOr(cfg.Connection.Dialect, DefaultDialect)
}

func (cfg *YAMLConfig) BlobSegmentSize() int {
	return intOr(cfg.Client.BlobSegmentSize, fbclient.DefaultSegmentSize)
}

// LogLevel parses log.level, "info" when unset.
func (cfg *YAMLConfig) LogLevel() (logrus.Level, error) {
	return logrus.ParseLevel(strOr(cfg.Log.Level, DefaultLevel))
}

// DPB packs the connection parameters. Unset optional parameters are left
// out.
func (cfg *YAMLConfig) DPB() ([]byte, error) {
	params := []fbclient.DPBParam{
		fbclient.StringParam(fbclient.DPBUserName, cfg.User()),
		fbclient.StringParam(fbclient.DPBPassword, cfg.Password()),
	}
	if c := cfg.Connection; c.Role != nil {
		params = append(params, fbclient.StringParam(fbclient.DPBRoleName, *c.Role))
	}
	if c := cfg.Connection; c.Charset != nil {
		params = append(params, fbclient.StringParam(fbclient.DPBCharset, *c.Charset))
	}
	params = append(params, fbclient.IntParam(fbclient.DPBDialect, cfg.Dialect()))
	if c := cfg.Connection; c.ConnectTimeout != nil {
		params = append(params, fbclient.IntParam(fbclient.DPBConnectTimeout, *c.ConnectTimeout))
	}
	return fbclient.PackDPB(params...)
}

// QueryOptions returns the query sizing with |log| as the logger.
func (cfg *YAMLConfig) QueryOptions(log *logrus.Entry) fbclient.Options {
	return fbclient.Options{
		InitialFields: intOr(cfg.Client.InitialFields, fbclient.DefaultInitialFields),
		ParamHint:     intOr(cfg.Client.ParamHint, fbclient.DefaultParamHint),
		Logger:        log,
	}
}
