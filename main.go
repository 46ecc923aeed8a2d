/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/cmd/lim"
)

func main() {
	lim.Execute()
}
