package types

// IsNull reports whether v is nil or a NULL value.
func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}

// AsString returns the string form of v. NULL values return an empty string.
func AsString(v Value) string {
	if IsNull(v) {
		return ""
	}

	return v.String()
}

// AsObject returns the object held by an entity value, or nil.
func AsObject(v Value) Object {
	ev, ok := v.(*EntityValue)
	if !ok {
		return nil
	}

	return ev.o
}

// AsList returns the list held by v, or nil.
func AsList(v Value) *ListValue {
	lv, _ := v.(*ListValue)
	return lv
}

// AsRaw returns the fragment held by a raw value, or nil.
func AsRaw(v Value) *RawValue {
	rv, _ := v.(*RawValue)
	return rv
}
