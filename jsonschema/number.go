package jsonschema

import "encoding/json"

// Int creates a new integer schema builder.
func Int() *IntBuilder {
	return &IntBuilder{node: &node{Type: "integer"}}
}

// IntBuilder constructs integer-type schema nodes.
type IntBuilder struct {
	node *node
}

func (b *IntBuilder) Desc(description string) *IntBuilder {
	b.node.Description = description
	return b
}

func (b *IntBuilder) Min(n int) *IntBuilder {
	b.node.Minimum = ptr(float64(n))
	return b
}

func (b *IntBuilder) Max(n int) *IntBuilder {
	b.node.Maximum = ptr(float64(n))
	return b
}

func (b *IntBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

func (b *IntBuilder) Build() (json.RawMessage, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(b.node)
}

func (b *IntBuilder) MustBuild() json.RawMessage {
	data, err := b.Build()
	if err != nil {
		panic(err)
	}
	return data
}

func (b *IntBuilder) schema() *node { return b.node }

// Bool creates a new boolean schema builder.
func Bool() *BoolBuilder {
	return &BoolBuilder{node: &node{Type: "boolean"}}
}

// BoolBuilder constructs boolean-type schema nodes.
type BoolBuilder struct {
	node *node
}

func (b *BoolBuilder) Desc(description string) *BoolBuilder {
	b.node.Description = description
	return b
}

func (b *BoolBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

func (b *BoolBuilder) Build() (json.RawMessage, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(b.node)
}

func (b *BoolBuilder) MustBuild() json.RawMessage {
	data, err := b.Build()
	if err != nil {
		panic(err)
	}
	return data
}

func (b *BoolBuilder) schema() *node { return b.node }
