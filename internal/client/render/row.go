// Package render turns backend records into display grids. Rows keep their
// fields in wire order, so a table's columns follow the first record exactly
// as the server serialized it.
package render

import "github.com/tidwall/gjson"

// Row is one uniform record: an ordered list of field name/value pairs with
// display-string values.
type Row struct {
	keys   []string
	values map[string]string
}

// RowFromObject builds a Row from a decoded JSON object, preserving the
// object's key order. JSON null becomes the empty string, never "null".
// Non-object results yield an empty Row.
func RowFromObject(obj gjson.Result) Row {
	r := Row{values: make(map[string]string)}
	if !obj.IsObject() {
		return r
	}
	obj.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		r.keys = append(r.keys, k)
		if value.Type == gjson.Null {
			r.values[k] = ""
		} else {
			r.values[k] = value.String()
		}
		return true
	})
	return r
}

// RowsFromResult converts a decoded response into rows: an array yields one
// row per element, a bare object yields a single row, anything else yields
// nothing.
func RowsFromResult(res gjson.Result) []Row {
	if res.IsArray() {
		var rows []Row
		res.ForEach(func(_, value gjson.Result) bool {
			rows = append(rows, RowFromObject(value))
			return true
		})
		return rows
	}
	if res.IsObject() {
		return []Row{RowFromObject(res)}
	}
	return nil
}

// Keys returns the field names in wire order.
func (r Row) Keys() []string { return r.keys }

// Get returns the display string for a field; missing fields read as "".
func (r Row) Get(key string) string { return r.values[key] }

// Has reports whether the row carries the field at all.
func (r Row) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}
