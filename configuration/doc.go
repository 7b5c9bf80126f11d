// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// end by returning a table, e.g.
//
//   local M = {}
//   M.order = "ascending"
//   M.insert = { 2, 3, 8, 1, 9 }
//   return M
//
// fields are matched to struct fields by their gluamapper tag.
package configuration
