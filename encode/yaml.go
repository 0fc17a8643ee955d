package encode

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/styx-format/go-styx/ir"
)

func encodeYAML(v ir.Value, w io.Writer, es *EncState) error {
	var opts []yaml.EncodeOption
	if es.indent > 0 {
		opts = append(opts, yaml.Indent(es.indent))
	}
	if es.wire {
		opts = append(opts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(toYAML(v), opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// toYAML maps v to values goccy/go-yaml encodes in order: objects become
// MapSlices so that entry order and duplicate keys survive.
func toYAML(v ir.Value) any {
	if tag, ok := v.Tag(); ok {
		return yaml.MapSlice{
			{Key: TagKey, Value: tag},
			{Key: PayloadKey, Value: yamlPayload(v)},
		}
	}
	return yamlPayload(v)
}

func yamlPayload(v ir.Value) any {
	switch v.Kind() {
	case ir.ScalarPayload:
		s, _ := v.Scalar()
		return s
	case ir.SequencePayload:
		seq, _ := v.Sequence()
		res := make([]any, 0, seq.Len())
		for _, item := range seq.All() {
			res = append(res, toYAML(item))
		}
		return res
	case ir.ObjectPayload:
		o, _ := v.Object()
		res := make(yaml.MapSlice, 0, o.Len())
		for k, val := range o.All() {
			ks, _ := k.Scalar()
			res = append(res, yaml.MapItem{Key: ks, Value: toYAML(val)})
		}
		return res
	default:
		return nil
	}
}
