package template

import (
	"bytes"
	"encoding/json"

	"github.com/giantswarm/microerror"
)

// ParameterValue is a single entry of an ARM parameter file.
type ParameterValue struct {
	Value interface{} `json:"value"`
}

// Parameters is an ARM deployment parameter file.
type Parameters struct {
	Schema         string                    `json:"$schema,omitempty"`
	ContentVersion string                    `json:"contentVersion,omitempty"`
	Parameters     map[string]ParameterValue `json:"parameters"`
}

// ParseParameters decodes an ARM parameter file. Documents without a
// parameters object are rejected.
func ParseParameters(b []byte) (*Parameters, error) {
	var p Parameters

	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	err := d.Decode(&p)
	if err != nil {
		return nil, microerror.Maskf(invalidDocumentError, "%s", err.Error())
	}
	if p.Parameters == nil {
		return nil, microerror.Maskf(invalidDocumentError, "parameters object missing")
	}

	return &p, nil
}

// Set replaces the value of the named parameter. Only parameters declared in
// the document can be set.
func (p *Parameters) Set(name string, value interface{}) error {
	if _, ok := p.Parameters[name]; !ok {
		return microerror.Maskf(parameterNotFoundError, "parameter %#q is not declared", name)
	}

	p.Parameters[name] = ParameterValue{Value: value}

	return nil
}

// Get returns the value of the named parameter.
func (p *Parameters) Get(name string) (interface{}, error) {
	v, ok := p.Parameters[name]
	if !ok {
		return nil, microerror.Maskf(parameterNotFoundError, "parameter %#q is not declared", name)
	}

	return v.Value, nil
}

// DeepCopy returns a copy of p sharing no maps or slices with it.
func (p *Parameters) DeepCopy() *Parameters {
	c := &Parameters{
		Schema:         p.Schema,
		ContentVersion: p.ContentVersion,
		Parameters:     make(map[string]ParameterValue, len(p.Parameters)),
	}

	for k, v := range p.Parameters {
		c.Parameters[k] = ParameterValue{Value: deepCopyValue(v.Value)}
	}

	return c
}

// deepCopyValue copies the value kinds produced by encoding/json.
func deepCopyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = deepCopyValue(e)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, e := range t {
			s[i] = deepCopyValue(e)
		}
		return s
	default:
		return v
	}
}
