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

package pivot

import (
	"fmt"
	"strings"

	"github.com/pivotscan/pivotscan/pkg/record"
)

// GroupKeySeparator joins the group field values into one key. It is
// also the separator used for the group-column label in CSV output.
const GroupKeySeparator = "|"

// BuildGroupKey renders the composite group key for a row: the values
// of the group fields, in caller order, joined by the separator. Group
// fields must be text-typed; two rows share a key iff their selected
// values match in content and order.
func BuildGroupKey(row record.Row, groupFields []string) (string, error) {
	if len(groupFields) == 0 {
		return "", fmt.Errorf("BuildGroupKey: no group fields configured")
	}

	var sb strings.Builder
	for i, field := range groupFields {
		sval, err := row.GetString(field)
		if err != nil {
			return "", fmt.Errorf("BuildGroupKey: %w", err)
		}
		if i > 0 {
			sb.WriteString(GroupKeySeparator)
		}
		sb.WriteString(sval)
	}
	return sb.String(), nil
}

// GroupLabel renders the header label for the group column.
func GroupLabel(groupFields []string) string {
	return strings.Join(groupFields, GroupKeySeparator)
}
