/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestBuildConfig(t *testing.T) {
	defer viper.Set("lim.max-depth", nil)

	viper.Set("lim.max-depth", 7)
	config := buildConfig()

	assert.Equal(t, 7, config.MaxDepth)
	assert.Equal(t, 8001, config.Port)
	assert.Equal(t, 2112, config.MetricsPort)
	assert.Equal(t, int64(64*1024), config.MaxSourceBytes)
}
