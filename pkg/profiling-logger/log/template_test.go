//go:build unit

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_renderTemplate(t *testing.T) {
	tests := []struct {
		name       string
		tpl        string
		values     []interface{}
		wantMsg    string
		wantFields map[string]interface{}
	}{
		{
			name:       "no hole",
			tpl:        "Completed.",
			wantMsg:    "Completed.",
			wantFields: map[string]interface{}{},
		},
		{
			name:    "named holes bind in order",
			tpl:     "{EndMessage} ({Duration}ms) [Timing {TimingId}]",
			values:  []interface{}{"Done", int64(12), "abc1234"},
			wantMsg: "Done (12ms) [Timing abc1234]",
			wantFields: map[string]interface{}{
				"EndMessage": "Done",
				"Duration":   int64(12),
				"TimingId":   "abc1234",
			},
		},
		{
			name:       "repeated name binds once",
			tpl:        "{A} and {A} then {B}",
			values:     []interface{}{1, 2},
			wantMsg:    "1 and 1 then 2",
			wantFields: map[string]interface{}{"A": 1, "B": 2},
		},
		{
			name:       "numeric holes bind by index",
			tpl:        "{1} before {0}",
			values:     []interface{}{"a", "b"},
			wantMsg:    "b before a",
			wantFields: map[string]interface{}{"0": "a", "1": "b"},
		},
		{
			name:       "mixed numeric and named holes bind in order of appearance",
			tpl:        "{0} {Name}",
			values:     []interface{}{"a", "b"},
			wantMsg:    "a b",
			wantFields: map[string]interface{}{"0": "a", "Name": "b"},
		},
		{
			name:       "mixed holes with a numeric hole after a named one",
			tpl:        "{Name} {1} {Name}",
			values:     []interface{}{"a", "b", "c"},
			wantMsg:    "a b a",
			wantFields: map[string]interface{}{"Name": "a", "1": "b", "__0": "c"},
		},
		{
			name:       "missing value keeps hole",
			tpl:        "Hello {Name} from {Place}",
			values:     []interface{}{"bob"},
			wantMsg:    "Hello bob from {Place}",
			wantFields: map[string]interface{}{"Name": "bob"},
		},
		{
			name:       "surplus values",
			tpl:        "Hello {Name}",
			values:     []interface{}{"bob", 1, true},
			wantMsg:    "Hello bob",
			wantFields: map[string]interface{}{"Name": "bob", "__0": 1, "__1": true},
		},
		{
			name:       "escaped braces",
			tpl:        "{{literal}} {Name}",
			values:     []interface{}{"x"},
			wantMsg:    "{literal} x",
			wantFields: map[string]interface{}{"Name": "x"},
		},
		{
			name:       "destructure and format hints",
			tpl:        "{@User} took {Elapsed:0.00} {$Kind,-10}",
			values:     []interface{}{"u", 1.5, "k"},
			wantMsg:    "u took 1.5 k",
			wantFields: map[string]interface{}{"User": "u", "Elapsed": 1.5, "Kind": "k"},
		},
		{
			name:       "malformed holes are text",
			tpl:        "{} {not valid} {unterminated",
			values:     []interface{}{"x"},
			wantMsg:    "{} {not valid} {unterminated",
			wantFields: map[string]interface{}{"__0": "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, fields := renderTemplate(tt.tpl, tt.values)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}
