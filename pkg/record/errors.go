/*
Copyright 2023.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package record

import "errors"

// Error kinds surfaced by the pivot engine. All of them abort the
// current aggregation call; callers can classify with errors.Is.
var (
	ErrMissingField      = errors.New("missing field")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrSinkUnavailable   = errors.New("sink unavailable")
)
