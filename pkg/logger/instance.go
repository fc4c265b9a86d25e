/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"github.com/rs/zerolog"
)

// instance implements the Logger interface without using global state.
type instance struct {
	logger zerolog.Logger
}

// New creates a logger that can be injected into components without
// touching the package-level logger. A nil config uses DefaultConfig.
func New(config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	zlog, err := build(config)
	if err != nil {
		return nil, err
	}

	return &instance{logger: zlog}, nil
}

// NewComponent creates an injectable logger pre-tagged with a component
// field.
func NewComponent(component string, config *Config) (Logger, error) {
	l, err := New(config)
	if err != nil {
		return nil, err
	}

	impl, ok := l.(*instance)
	if !ok {
		return l, nil
	}

	return &instance{logger: impl.logger.With().Str("component", component).Logger()}, nil
}

func (l *instance) Trace() *zerolog.Event {
	return l.logger.Trace()
}

func (l *instance) Debug() *zerolog.Event {
	return l.logger.Debug()
}

func (l *instance) Info() *zerolog.Event {
	return l.logger.Info()
}

func (l *instance) Warn() *zerolog.Event {
	return l.logger.Warn()
}

func (l *instance) Error() *zerolog.Event {
	return l.logger.Error()
}

func (l *instance) Fatal() *zerolog.Event {
	return l.logger.Fatal()
}

func (l *instance) Panic() *zerolog.Event {
	return l.logger.Panic()
}

func (l *instance) With() zerolog.Context {
	return l.logger.With()
}

func (l *instance) WithComponent(component string) zerolog.Logger {
	return l.logger.With().Str("component", component).Logger()
}

func (l *instance) WithFields(fields map[string]interface{}) zerolog.Logger {
	ctx := l.logger.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}

	return ctx.Logger()
}

func (l *instance) SetLevel(level zerolog.Level) {
	l.logger = l.logger.Level(level)
}

func (l *instance) SetDebug(debug bool) {
	if debug {
		l.SetLevel(zerolog.DebugLevel)
	} else {
		l.SetLevel(zerolog.InfoLevel)
	}
}
