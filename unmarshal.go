// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"reflect"

	"github.com/strataconf/strata/parse"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes every entry of the given section into v. Struct
// fields are matched by name or by the "config" tag, and string
// values are weakly coerced to the field type. Boolean fields accept
// exactly the [parse.Bool] literal set, so Unmarshal and
// [Pool.GetBool] always agree.
//
// Unmarshal never resolves path values; use [Pool.GetFile] where
// origin based resolution is needed.
func (p *Pool) Unmarshal(section string, v any) error {
	m := make(map[string]any)
	for _, e := range p.entries {
		if e.Section == section {
			m[e.Key] = e.Value
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook:       boolLiteralHookFunc(),
		Result:           v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}

// boolLiteralHookFunc decodes string values into bool fields with the
// engine's own boolean coercion instead of strconv.ParseBool, which
// rejects the yes/no/on/off literals.
func boolLiteralHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return parse.Bool(parse.Entry{Value: data.(string)})
	}
}
