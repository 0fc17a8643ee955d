package ir

// ToMap projects an object onto a map, keeping the first of duplicate keys.
// Nested objects become maps too; tags are dropped.  It is meant for
// environments, such as expression evaluation, that index by key.
func ToMap(o Object) map[string]any {
	res := make(map[string]any, o.Len())
	for k, v := range o.All() {
		key := k.text()
		if _, dup := res[key]; dup {
			continue
		}
		res[key] = ToPlain(v)
	}
	return res
}

// ToPlain projects v onto plain Go data: scalars become strings,
// sequences []any and objects maps as with ToMap.  Tags are dropped;
// unit and absent values are nil.
func ToPlain(v Value) any {
	switch v.Kind() {
	case ScalarPayload:
		return v.text()
	case SequencePayload:
		s, _ := v.Sequence()
		res := make([]any, 0, s.Len())
		for _, item := range s.All() {
			res = append(res, ToPlain(item))
		}
		return res
	case ObjectPayload:
		o, _ := v.Object()
		return ToMap(o)
	default:
		return nil
	}
}
