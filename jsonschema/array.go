package jsonschema

import "encoding/json"

// Array creates a new array schema builder whose elements match items.
func Array(items Builder) *ArrayBuilder {
	return &ArrayBuilder{node: &node{Type: "array", Items: items.schema()}}
}

// ArrayBuilder constructs array-type schema nodes.
type ArrayBuilder struct {
	node *node
}

func (b *ArrayBuilder) Desc(description string) *ArrayBuilder {
	b.node.Description = description
	return b
}

func (b *ArrayBuilder) MinItems(n int) *ArrayBuilder {
	b.node.MinItems = ptr(n)
	return b
}

func (b *ArrayBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

func (b *ArrayBuilder) Build() (json.RawMessage, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(b.node)
}

func (b *ArrayBuilder) MustBuild() json.RawMessage {
	data, err := b.Build()
	if err != nil {
		panic(err)
	}
	return data
}

func (b *ArrayBuilder) schema() *node { return b.node }
