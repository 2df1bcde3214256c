package rabbitmgmt

// Record is one broker entity as returned by the management API, decoded
// from a JSON object. The server owns the schema; the client imposes none,
// so values may be strings, numbers (float64), booleans, nested Records, or
// lists at arbitrary depth.
type Record map[string]interface{}

// RecordList is an ordered sequence of Records, in the order the server
// returned them. That order is not guaranteed to be meaningful.
type RecordList []Record

// StringField returns the value at key when it is a string, else "".
func (r Record) StringField(key string) string {
	s, _ := r[key].(string)
	return s
}

// BoolField returns the value at key when it is a boolean, else false.
func (r Record) BoolField(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// IntField returns the value at key truncated to an int. JSON numbers
// decode as float64; anything non-numeric returns 0.
func (r Record) IntField(key string) int {
	f, _ := r[key].(float64)
	return int(f)
}

// ListField returns the objects nested in the list at key as a RecordList.
// Non-object list elements are skipped.
func (r Record) ListField(key string) RecordList {
	items, _ := r[key].([]interface{})
	records := RecordList{}
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			records = append(records, Record(m))
		}
	}
	return records
}
