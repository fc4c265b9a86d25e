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

package decode

import (
	"maps"
	"reflect"
	"sync"
	"sync/atomic"
)

// Compiled schemas are published read-copy-update style: readers load an
// immutable map with no locking, writers copy it under a mutex. Schemas for
// the same type therefore compile once and are shared by every decode.
var (
	schemaCachePtr atomic.Pointer[map[reflect.Type]*schema]
	schemaCacheMu  sync.Mutex
)

func init() {
	m := make(map[reflect.Type]*schema)
	schemaCachePtr.Store(&m)
}

// schemaFor returns the compiled schema for t, compiling and caching it on
// first use. Compilation failures are not cached; a defective record type
// fails the same way on every call.
func schemaFor(t reflect.Type) (*schema, error) {
	m := schemaCachePtr.Load()
	if s, ok := (*m)[t]; ok {
		return s, nil
	}

	schemaCacheMu.Lock()
	defer schemaCacheMu.Unlock()

	m = schemaCachePtr.Load()
	if s, ok := (*m)[t]; ok {
		return s, nil
	}

	s, err := compileSchema(t)
	if err != nil {
		return nil, err
	}

	next := make(map[reflect.Type]*schema, len(*m)+1)
	maps.Copy(next, *m)
	next[t] = s
	schemaCachePtr.Store(&next)

	return s, nil
}
