package codegen

// DefaultChunkLimit bounds literal chunk size, counted in code points.
const DefaultChunkLimit = 1024

type Option func(*genState)

// Primitives names the output primitives that generated code calls into.
// Empty fields fall back to the defaults.
type Primitives struct {
	WriteLiteral        string `yaml:"writeLiteral" json:"writeLiteral,omitempty"`
	WriteExpression     string `yaml:"writeExpression" json:"writeExpression,omitempty"`
	BeginAttribute      string `yaml:"beginAttribute" json:"beginAttribute,omitempty"`
	EndAttribute        string `yaml:"endAttribute" json:"endAttribute,omitempty"`
	WriteAttributeValue string `yaml:"writeAttributeValue" json:"writeAttributeValue,omitempty"`
	PushWriter          string `yaml:"pushWriter" json:"pushWriter,omitempty"`
	PopWriter           string `yaml:"popWriter" json:"popWriter,omitempty"`
	TemplateType        string `yaml:"templateType" json:"templateType,omitempty"`
}

func DefaultPrimitives() Primitives {
	return Primitives{
		WriteLiteral:        "WriteLiteral",
		WriteExpression:     "Write",
		BeginAttribute:      "BeginWriteAttribute",
		EndAttribute:        "EndWriteAttribute",
		WriteAttributeValue: "WriteAttributeValue",
		PushWriter:          "PushWriter",
		PopWriter:           "PopWriter",
		TemplateType:        "Template",
	}
}

func (p Primitives) withDefaults() Primitives {
	def := DefaultPrimitives()
	if p.WriteLiteral == "" {
		p.WriteLiteral = def.WriteLiteral
	}
	if p.WriteExpression == "" {
		p.WriteExpression = def.WriteExpression
	}
	if p.BeginAttribute == "" {
		p.BeginAttribute = def.BeginAttribute
	}
	if p.EndAttribute == "" {
		p.EndAttribute = def.EndAttribute
	}
	if p.WriteAttributeValue == "" {
		p.WriteAttributeValue = def.WriteAttributeValue
	}
	if p.PushWriter == "" {
		p.PushWriter = def.PushWriter
	}
	if p.PopWriter == "" {
		p.PopWriter = def.PopWriter
	}
	if p.TemplateType == "" {
		p.TemplateType = def.TemplateType
	}
	return p
}

func WithPrimitives(p Primitives) Option {
	return func(gs *genState) { gs.prims = p.withDefaults() }
}

func WithChunkLimit(n int) Option {
	return func(gs *genState) { gs.chunkLimit = n }
}

// WithExtensionRenderer installs the handler that Extension nodes are
// delegated to.
func WithExtensionRenderer(f ExtensionFunc) Option {
	return func(gs *genState) { gs.ext = f }
}
