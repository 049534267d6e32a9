package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form or enumerated parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single configurable value exposed by an automaton.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the effective configuration of an automaton.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam describes an integer parameter.
func IntParam(key, label string, value int, desc string) Parameter {
	return Parameter{
		Key:         key,
		Label:       label,
		Type:        ParamTypeInt,
		Value:       strconv.Itoa(value),
		Description: desc,
	}
}

// StringParam describes a string parameter.
func StringParam(key, label, value, desc string) Parameter {
	return Parameter{
		Key:         key,
		Label:       label,
		Type:        ParamTypeString,
		Value:       value,
		Description: desc,
	}
}
