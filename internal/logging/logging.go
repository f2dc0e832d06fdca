// Copyright © 2024 The Tabiya Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides the shared logger of the application. All
// packages which log obtain their logger through GetLog so that output
// format and level are configured in one place.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

const module = "tabiya"

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10s} %{level:-8s} %{message}`,
)

var leveled logging.LeveledBackend

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

// GetLog returns the shared application logger.
func GetLog() *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel changes the log level of the shared logger.
func SetLevel(level logging.Level) {
	leveled.SetLevel(level, "")
}
