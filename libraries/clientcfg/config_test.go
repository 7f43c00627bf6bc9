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

package clientcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/fbsqlda/libraries/fbclient"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("FB_HOST", "db.local")
	t.Setenv("FB_EMPTY", "")

	tests := []struct {
		in  string
		out string
	}{
		{"path: ${FB_HOST}:/data/emp.fdb", "path: db.local:/data/emp.fdb"},
		{"${FB_MISSING:-localhost}", "localhost"},
		{"${FB_EMPTY:-fallback}", "fallback"},
		{"${FB_MISSING:-${FB_HOST}}", "db.local"},
		{"${FB_MISSING:-}", ""},
		{"cost: $$5", "cost: $5"},
		{"a $ b $x", "a $ b $x"},
		{"trailing $", "trailing $"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, err := expandEnv([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(out))
		})
	}
}

func TestExpandEnvErrors(t *testing.T) {
	t.Setenv("FB_EMPTY", "")

	_, err := expandEnv([]byte("${FB_MISSING}"))
	assert.True(t, ErrEnvUnset.Is(err))
	_, err = expandEnv([]byte("${FB_EMPTY}"))
	assert.True(t, ErrEnvUnset.Is(err))

	for _, in := range []string{"${FB_HOST", "${}", "${1ABC}", "${A-B}", "${:-x}"} {
		_, err := expandEnv([]byte(in))
		assert.True(t, ErrEnvSyntax.Is(err), in)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Path())
	assert.Equal(t, DefaultUser, cfg.User())
	assert.Equal(t, DefaultPass, cfg.Password())
	assert.Equal(t, DefaultDialect, cfg.Dialect())
	assert.Equal(t, fbclient.DefaultSegmentSize, cfg.BlobSegmentSize())

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lvl)

	opts := cfg.QueryOptions(nil)
	assert.Equal(t, fbclient.DefaultInitialFields, opts.InitialFields)
	assert.Equal(t, fbclient.DefaultParamHint, opts.ParamHint)

	dpb, err := cfg.DPB()
	require.NoError(t, err)
	params, err := fbclient.ParseDPB(dpb)
	require.NoError(t, err)
	assert.Equal(t, []fbclient.DPBParam{
		fbclient.StringParam(fbclient.DPBUserName, "sysdba"),
		fbclient.StringParam(fbclient.DPBPassword, "masterkey"),
		fbclient.IntParam(fbclient.DPBDialect, 3),
	}, params)
}

func TestLoad(t *testing.T) {
	t.Setenv("FB_PASSWORD", "s3cret")
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
connection:
  path: localhost:/data/emp.fdb
  user: alice
  password: ${FB_PASSWORD}
  role: ${FB_ROLE:-reader}
  charset: UTF8
  dialect: 1
  connect_timeout: 30
client:
  initial_fields: 12
  param_hint: 4
  blob_segment_size: 4096
log:
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:/data/emp.fdb", cfg.Path())
	assert.Equal(t, "alice", cfg.User())
	assert.Equal(t, "s3cret", cfg.Password())
	assert.Equal(t, 4096, cfg.BlobSegmentSize())

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)

	log := logrus.NewEntry(logrus.New())
	opts := cfg.QueryOptions(log)
	assert.Equal(t, fbclient.Options{InitialFields: 12, ParamHint: 4, Logger: log}, opts)

	dpb, err := cfg.DPB()
	require.NoError(t, err)
	params, err := fbclient.ParseDPB(dpb)
	require.NoError(t, err)
	assert.Equal(t, []fbclient.DPBParam{
		fbclient.StringParam(fbclient.DPBUserName, "alice"),
		fbclient.StringParam(fbclient.DPBPassword, "s3cret"),
		fbclient.StringParam(fbclient.DPBRoleName, "reader"),
		fbclient.StringParam(fbclient.DPBCharset, "UTF8"),
		fbclient.IntParam(fbclient.DPBDialect, 1),
		fbclient.IntParam(fbclient.DPBConnectTimeout, 30),
	}, params)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("log:\n  level: loud\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("connection:\n  host: x\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("connection:\n  password: ${FB_NOT_SET_ANYWHERE}\n"))
	assert.True(t, ErrEnvUnset.Is(err))
}
