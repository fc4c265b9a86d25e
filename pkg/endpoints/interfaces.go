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

// Package endpoints catalogs the documents served by SwOS and SwOS Lite
// switch firmware: one record type per endpoint, carrying the source keys,
// field kinds, and option tables the firmware uses, plus a registry that
// dispatches a raw payload to the right record type by its path.
//
// The catalog is data, not logic. Decoding lives in pkg/decode; this
// package only declares what each document contains and where it is served.
package endpoints

// Endpoint is implemented by every record type in the catalog. Paths
// returns the firmware paths serving the document, primary path first;
// alternates cover firmware variants that renamed the resource (the Lite
// firmware prefixes some paths with "!").
type Endpoint interface {
	Paths() []string
}
